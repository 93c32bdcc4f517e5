package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	loanDomain "loan-collection-service/internal/domain/loan"
	"loan-collection-service/internal/domain/party"
	scheduleDomain "loan-collection-service/internal/domain/schedule"
	loanUC "loan-collection-service/internal/usecase/loan"
	paymentUC "loan-collection-service/internal/usecase/payment"
	settlementUC "loan-collection-service/internal/usecase/settlement"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// operatorID pulls the acting staff member from the attribution header.
func operatorID(c echo.Context) (string, bool) {
	v := strings.TrimSpace(c.Request().Header.Get("Ax-Operator-Id"))
	return v, reHex32.MatchString(v)
}

// writeDomainError maps domain/usecase errors onto HTTP codes.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound), errors.Is(err, scheduleDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, loanDomain.ErrHasDependents):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrInvalidStatus):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanUC.ErrInvalidInput),
		errors.Is(err, paymentUC.ErrInvalidInput),
		errors.Is(err, settlementUC.ErrInvalidInput),
		errors.Is(err, party.ErrUnknownRole):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
