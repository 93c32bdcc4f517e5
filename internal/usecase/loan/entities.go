package loan

import "time"

type CreateLoanInput struct {
	BorrowerID       string  `json:"borrower_id"`
	LoanAmount       float64 `json:"loan_amount"`
	PeriodCapital    float64 `json:"period_capital"`
	PeriodInterest   float64 `json:"period_interest"`
	TotalPeriods     int     `json:"total_periods"`
	DueStartDate     string  `json:"due_start_date"` // YYYY-MM-DD
	CollectorID      string  `json:"collector_id"`
	RiskControllerID string  `json:"risk_controller_id"`
	LenderID         string  `json:"lender_id"`
	OperatorID       string  `json:"-"`
}

type DeleteLoanInput struct {
	LoanID     string
	Force      bool
	OperatorID string
}

type LoanDTO struct {
	LoanID                 string    `json:"loan_id"`
	BorrowerID             string    `json:"borrower_id"`
	LoanAmount             float64   `json:"loan_amount"`
	PeriodCapital          float64   `json:"period_capital"`
	PeriodInterest         float64   `json:"period_interest"`
	TotalPeriods           int       `json:"total_periods"`
	RepaidPeriods          int       `json:"repaid_periods"`
	Status                 string    `json:"status"`
	PaidCapital            float64   `json:"paid_capital"`
	PaidInterest           float64   `json:"paid_interest"`
	TotalFines             float64   `json:"total_fines"`
	ReceivingAmount        float64   `json:"receiving_amount"`
	EarlySettlementCapital float64   `json:"early_settlement_capital"`
	OverdueCount           int       `json:"overdue_count"`
	DueStartDate           time.Time `json:"due_start_date"`
	DueEndDate             time.Time `json:"due_end_date"`
	CreatedAt              time.Time `json:"created_at"`
}

type PeriodDTO struct {
	ScheduleID   string     `json:"schedule_id"`
	Period       int        `json:"period"`
	DueStartDate time.Time  `json:"due_start_date"`
	Capital      float64    `json:"capital"`
	Interest     float64    `json:"interest"`
	DueAmount    float64    `json:"due_amount"`
	PaidCapital  float64    `json:"paid_capital"`
	PaidInterest float64    `json:"paid_interest"`
	Fines        float64    `json:"fines"`
	PaidAmount   float64    `json:"paid_amount"`
	Status       string     `json:"status"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}
