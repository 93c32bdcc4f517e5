package schedule

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("schedule period not found")

type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusOverdue    Status = "overdue"
	StatusPaid       Status = "paid"
	StatusTerminated Status = "terminated"
)

// Period is one daily repayment obligation owned by a loan. Rows are created
// in the same transaction as their loan and never outlive it.
type Period struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ScheduleID string `gorm:"column:schedule_id;type:char(32);not null;uniqueIndex:ux_schedules_schedule_id"`
	// FK to loans.id (numeric)
	LoanID       uint64    `gorm:"column:loan_id;not null;index;uniqueIndex:ux_schedules_loan_period,priority:1"`
	Period       int       `gorm:"column:period;not null;uniqueIndex:ux_schedules_loan_period,priority:2"`
	DueStartDate time.Time `gorm:"column:due_start_date;index"`
	Capital      float64   `gorm:"column:capital;type:decimal(18,2)"`
	Interest     float64   `gorm:"column:interest;type:decimal(18,2)"`
	DueAmount    float64   `gorm:"column:due_amount;type:decimal(18,2)"`
	PaidCapital  float64   `gorm:"column:paid_capital;type:decimal(18,2)"`
	PaidInterest float64   `gorm:"column:paid_interest;type:decimal(18,2)"`
	Fines        float64   `gorm:"column:fines;type:decimal(18,2)"`
	PaidAmount   float64   `gorm:"column:paid_amount;type:decimal(18,2)"`
	Status       Status    `gorm:"column:status;type:varchar(16);default:'pending';index"`
	PaidAt       *time.Time `gorm:"column:paid_at"`
	OperatorID   string     `gorm:"column:operator_id;type:char(32)"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Period) TableName() string { return "repayment_schedules" }

// FullyPaid reports whether both the capital and interest ceilings are
// covered. Fines play no part in completion.
func (p *Period) FullyPaid() bool {
	return p.PaidCapital >= p.Capital && p.PaidInterest >= p.Interest
}

// RecordKind tags a payment-ledger row.
type RecordKind string

const (
	KindPeriod          RecordKind = "period"
	KindEarlySettlement RecordKind = "early_settlement"
)

// PaymentRecord is the live payment-ledger row: at most one per period
// (upserted in place on edits, deleted when the payment is zeroed out) and
// at most one early-settlement row per loan.
type PaymentRecord struct {
	ID         uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	LoanID     uint64     `gorm:"column:loan_id;not null;index"`
	ScheduleID *uint64    `gorm:"column:schedule_id;uniqueIndex:ux_payment_records_schedule"`
	Kind       RecordKind `gorm:"column:kind;type:varchar(24);not null;default:'period'"`
	Capital    float64    `gorm:"column:capital;type:decimal(18,2)"`
	Interest   float64    `gorm:"column:interest;type:decimal(18,2)"`
	Fines      float64    `gorm:"column:fines;type:decimal(18,2)"`
	Amount     float64    `gorm:"column:amount;type:decimal(18,2)"`
	OperatorID string     `gorm:"column:operator_id;type:char(32)"`
	PaidAt     time.Time  `gorm:"column:paid_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (PaymentRecord) TableName() string { return "payment_records" }
