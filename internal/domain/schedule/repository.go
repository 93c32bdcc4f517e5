package schedule

import (
	"context"
	"time"
)

type Repository interface {
	CreateBatch(ctx context.Context, ps []*Period) error
	GetByScheduleID(ctx context.Context, scheduleID string) (*Period, error)
	GetByScheduleIDForUpdate(ctx context.Context, scheduleID string) (*Period, error)
	ListByLoanID(ctx context.Context, loanID uint64) ([]Period, error)
	Save(ctx context.Context, p *Period) error
	DeleteByLoanID(ctx context.Context, loanID uint64) error

	// Set-based daily sweep transitions; both return rows affected and are
	// idempotent within a calendar day.
	MarkActive(ctx context.Context, day time.Time) (int64, error)
	MarkOverdue(ctx context.Context, day time.Time) (int64, error)

	// TerminateFrom voids every not-yet-active, not-paid period of the loan
	// whose due day is on or after cutoff.
	TerminateFrom(ctx context.Context, loanID uint64, cutoff time.Time) (int64, error)
}

type LedgerRepository interface {
	// UpsertForPeriod keeps at most one live row per schedule period.
	UpsertForPeriod(ctx context.Context, rec *PaymentRecord) error
	DeleteForPeriod(ctx context.Context, scheduleID uint64) error

	// UpsertEarlySettlement keeps at most one tagged row per loan.
	UpsertEarlySettlement(ctx context.Context, rec *PaymentRecord) error

	CountByLoanID(ctx context.Context, loanID uint64) (int64, error)
	DeleteByLoanID(ctx context.Context, loanID uint64) error
}
