package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrHasDependents = errors.New("loan has payment history; repeat with force=true to cascade")
	ErrInvalidStatus = errors.New("invalid loan status for this operation")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusNegotiated Status = "negotiated"
	StatusSettled    Status = "settled"
	StatusBlacklist  Status = "blacklist"
)

// Loan is the aggregate root: terms plus running totals. Every money total on
// it is derived from the owned schedule collection (see Reconcile), never
// maintained as an independent source of truth.
type Loan struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	LoanID     string `gorm:"column:loan_id;type:char(32);uniqueIndex:ux_loans_loan_id_active"`
	BorrowerID string `gorm:"column:borrower_id;type:char(32);index"`

	LoanAmount     float64 `gorm:"column:loan_amount;type:decimal(18,2)"`
	PeriodCapital  float64 `gorm:"column:period_capital;type:decimal(18,2)"`
	PeriodInterest float64 `gorm:"column:period_interest;type:decimal(18,2)"`
	TotalPeriods   int     `gorm:"column:total_periods"`

	Status          Status    `gorm:"column:status;type:varchar(16);default:'pending'"`
	StatusChangedAt time.Time `gorm:"column:status_changed_at"`

	// Derived totals; Reconcile owns these.
	RepaidPeriods          int     `gorm:"column:repaid_periods"`
	PaidCapital            float64 `gorm:"column:paid_capital;type:decimal(18,2)"`
	PaidInterest           float64 `gorm:"column:paid_interest;type:decimal(18,2)"`
	TotalFines             float64 `gorm:"column:total_fines;type:decimal(18,2)"`
	ReceivingAmount        float64 `gorm:"column:receiving_amount;type:decimal(18,2)"`
	EarlySettlementCapital float64 `gorm:"column:early_settlement_capital;type:decimal(18,2)"`
	OverdueCount           int     `gorm:"column:overdue_count"`

	DueStartDate time.Time `gorm:"column:due_start_date"`
	DueEndDate   time.Time `gorm:"column:due_end_date"`

	CollectorID      string `gorm:"column:collector_id;type:char(32)"`
	RiskControllerID string `gorm:"column:risk_controller_id;type:char(32)"`
	LenderID         string `gorm:"column:lender_id;type:char(32)"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
	DeletedBy string         `gorm:"column:deleted_by;type:char(32)"`
}

func (Loan) TableName() string { return "loans" }

// Closed reports whether the loan went through the settlement engine.
func (l *Loan) Closed() bool {
	return l.Status == StatusSettled || l.Status == StatusBlacklist
}
