package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-collection-service/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID       string  `json:"borrower_id"        validate:"required,hex32"`
	LoanAmount       float64 `json:"loan_amount"        validate:"required,gt=0,dec2"`
	PeriodCapital    float64 `json:"period_capital"     validate:"required,gt=0,dec2"`
	PeriodInterest   float64 `json:"period_interest"    validate:"gte=0,dec2"`
	TotalPeriods     int     `json:"total_periods"      validate:"gte=0"`
	DueStartDate     string  `json:"due_start_date"     validate:"required,datetime=2006-01-02"`
	CollectorID      string  `json:"collector_id"       validate:"omitempty,hex32"`
	RiskControllerID string  `json:"risk_controller_id" validate:"omitempty,hex32"`
	LenderID         string  `json:"lender_id"          validate:"omitempty,hex32"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	op, ok := operatorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Operator-Id"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:       req.BorrowerID,
		LoanAmount:       req.LoanAmount,
		PeriodCapital:    req.PeriodCapital,
		PeriodInterest:   req.PeriodInterest,
		TotalPeriods:     req.TotalPeriods,
		DueStartDate:     req.DueStartDate,
		CollectorID:      req.CollectorID,
		RiskControllerID: req.RiskControllerID,
		LenderID:         req.LenderID,
		OperatorID:       op,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListSchedules(c echo.Context) error {
	out, err := h.uc.ListSchedules(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	op, ok := operatorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid Ax-Operator-Id"})
	}
	err := h.uc.Delete(c.Request().Context(), loan.DeleteLoanInput{
		LoanID:     c.Param("loan_id"),
		Force:      c.QueryParam("force") == "true",
		OperatorID: op,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
