package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-collection-service/internal/usecase/sweep"
)

type SweepHandler struct{ uc *sweep.Usecase }

func NewSweepHandler(uc *sweep.Usecase) *SweepHandler { return &SweepHandler{uc: uc} }

// RunSweep triggers the daily status sweep on demand. The underlying
// statements are idempotent, so overlapping with the cron run is harmless.
func (h *SweepHandler) RunSweep(c echo.Context) error {
	res, err := h.uc.Run(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "sweep failed"})
	}
	return c.JSON(http.StatusOK, res)
}
