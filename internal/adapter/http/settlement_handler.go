package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "loan-collection-service/internal/domain/loan"
	"loan-collection-service/internal/domain/party"
	"loan-collection-service/internal/usecase/settlement"
)

type SettlementHandler struct{ uc *settlement.Usecase }

func NewSettlementHandler(uc *settlement.Usecase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

type settleLoanReq struct {
	Status            string   `json:"status"             validate:"required,oneof=settled blacklist"`
	SettlementDate    string   `json:"settlement_date"    validate:"omitempty,datetime=2006-01-02"`
	SettlementCapital *float64 `json:"settlement_capital" validate:"omitempty,gte=0,dec2"`
	OperatorRole      string   `json:"operator_role"      validate:"required,oneof=collector risk_controller lender"`
}

func (h *SettlementHandler) SettleLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	op, ok := operatorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Operator-Id"})
	}
	var req settleLoanReq
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
	dto, err := h.uc.Settle(c.Request().Context(), settlement.SettleInput{
		LoanID:            loanID,
		Status:            loanDomain.Status(req.Status),
		SettlementDate:    req.SettlementDate,
		SettlementCapital: req.SettlementCapital,
		OperatorID:        op,
		OperatorRole:      role,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
