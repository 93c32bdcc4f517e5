package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-collection-service/internal/domain/party"
	"loan-collection-service/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type applyPaymentReq struct {
	PayCapital   float64 `json:"pay_capital"   validate:"gte=0,dec2"`
	PayInterest  float64 `json:"pay_interest"  validate:"gte=0,dec2"`
	Fines        float64 `json:"fines"         validate:"gte=0,dec2"`
	OperatorRole string  `json:"operator_role" validate:"required,oneof=collector risk_controller lender"`
}

func (h *PaymentHandler) ApplyPayment(c echo.Context) error {
	scheduleID := c.Param("schedule_id")
	if scheduleID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing schedule_id path param"})
	}
	op, ok := operatorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Operator-Id"})
	}
	var req applyPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	role, err := party.Parse(req.OperatorRole)
	if err != nil {
		return writeDomainError(c, err)
	}
	dto, err := h.uc.Apply(c.Request().Context(), payment.ApplyInput{
		ScheduleID:   scheduleID,
		PayCapital:   req.PayCapital,
		PayInterest:  req.PayInterest,
		Fines:        req.Fines,
		OperatorID:   op,
		OperatorRole: role,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
