package schedmock

import (
	"context"
	"time"

	domain "loan-collection-service/internal/domain/schedule"
)

var (
	_ domain.Repository       = (*Repo)(nil)
	_ domain.LedgerRepository = (*Ledger)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn              func(ctx context.Context, ps []*domain.Period) error
	GetByScheduleIDFn          func(ctx context.Context, scheduleID string) (*domain.Period, error)
	GetByScheduleIDForUpdateFn func(ctx context.Context, scheduleID string) (*domain.Period, error)
	ListByLoanIDFn             func(ctx context.Context, loanID uint64) ([]domain.Period, error)
	SaveFn                     func(ctx context.Context, p *domain.Period) error
	DeleteByLoanIDFn           func(ctx context.Context, loanID uint64) error
	MarkActiveFn               func(ctx context.Context, day time.Time) (int64, error)
	MarkOverdueFn              func(ctx context.Context, day time.Time) (int64, error)
	TerminateFromFn            func(ctx context.Context, loanID uint64, cutoff time.Time) (int64, error)
}

func (m *Repo) CreateBatch(ctx context.Context, ps []*domain.Period) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, ps)
	}
	return nil
}

func (m *Repo) GetByScheduleID(ctx context.Context, scheduleID string) (*domain.Period, error) {
	if m.GetByScheduleIDFn != nil {
		return m.GetByScheduleIDFn(ctx, scheduleID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByScheduleIDForUpdate(ctx context.Context, scheduleID string) (*domain.Period, error) {
	if m.GetByScheduleIDForUpdateFn != nil {
		return m.GetByScheduleIDForUpdateFn(ctx, scheduleID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Period, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Period) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}

func (m *Repo) MarkActive(ctx context.Context, day time.Time) (int64, error) {
	if m.MarkActiveFn != nil {
		return m.MarkActiveFn(ctx, day)
	}
	return 0, nil
}

func (m *Repo) MarkOverdue(ctx context.Context, day time.Time) (int64, error) {
	if m.MarkOverdueFn != nil {
		return m.MarkOverdueFn(ctx, day)
	}
	return 0, nil
}

func (m *Repo) TerminateFrom(ctx context.Context, loanID uint64, cutoff time.Time) (int64, error) {
	if m.TerminateFromFn != nil {
		return m.TerminateFromFn(ctx, loanID, cutoff)
	}
	return 0, nil
}

// Ledger is a function-backed mock that satisfies domain.LedgerRepository.
type Ledger struct {
	UpsertForPeriodFn       func(ctx context.Context, rec *domain.PaymentRecord) error
	DeleteForPeriodFn       func(ctx context.Context, scheduleID uint64) error
	UpsertEarlySettlementFn func(ctx context.Context, rec *domain.PaymentRecord) error
	CountByLoanIDFn         func(ctx context.Context, loanID uint64) (int64, error)
	DeleteByLoanIDFn        func(ctx context.Context, loanID uint64) error
}

func (m *Ledger) UpsertForPeriod(ctx context.Context, rec *domain.PaymentRecord) error {
	if m.UpsertForPeriodFn != nil {
		return m.UpsertForPeriodFn(ctx, rec)
	}
	return nil
}

func (m *Ledger) DeleteForPeriod(ctx context.Context, scheduleID uint64) error {
	if m.DeleteForPeriodFn != nil {
		return m.DeleteForPeriodFn(ctx, scheduleID)
	}
	return nil
}

func (m *Ledger) UpsertEarlySettlement(ctx context.Context, rec *domain.PaymentRecord) error {
	if m.UpsertEarlySettlementFn != nil {
		return m.UpsertEarlySettlementFn(ctx, rec)
	}
	return nil
}

func (m *Ledger) CountByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountByLoanIDFn != nil {
		return m.CountByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *Ledger) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}
