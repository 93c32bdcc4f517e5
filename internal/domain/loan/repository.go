package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	SoftDelete(ctx context.Context, l *Loan, deletedBy string) error

	// SyncOverdueCounts refreshes loans.overdue_count from the schedule table
	// in one set-based statement (used after the daily sweep).
	SyncOverdueCounts(ctx context.Context) (int64, error)
}
