package uow

import (
	"context"

	"loan-collection-service/internal/domain/loan"
	"loan-collection-service/internal/domain/schedule"
)

type Repos struct {
	Loans     loan.Repository
	Schedules schedule.Repository
	Ledger    schedule.LedgerRepository
}

// UnitOfWork scopes one mutating operation to a single transaction spanning
// the loan row and its schedule rows. The loan is the concurrency unit:
// WithinLoanTx locks it up-front so manual edits, settlement, and the sweep
// cannot interleave mid-loan.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
