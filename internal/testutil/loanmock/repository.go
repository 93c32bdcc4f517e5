package loanmock

import (
	"context"

	domain "loan-collection-service/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	SoftDeleteFn           func(ctx context.Context, l *domain.Loan, deletedBy string) error
	SyncOverdueCountsFn    func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) SoftDelete(ctx context.Context, l *domain.Loan, deletedBy string) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, l, deletedBy)
	}
	return nil
}

func (m *Repo) SyncOverdueCounts(ctx context.Context) (int64, error) {
	if m.SyncOverdueCountsFn != nil {
		return m.SyncOverdueCountsFn(ctx)
	}
	return 0, nil
}
