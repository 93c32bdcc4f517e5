package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loan-collection-service/internal/audit"
	domain "loan-collection-service/internal/domain/loan"
	"loan-collection-service/internal/domain/schedule"
	"loan-collection-service/internal/domain/uow"
	"loan-collection-service/pkg/clock"
	"loan-collection-service/pkg/id"
	"loan-collection-service/pkg/money"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	uow      uow.UnitOfWork
	recorder audit.Recorder
	clk      clock.Clock
}

func NewUsecase(tx uow.UnitOfWork, rec audit.Recorder, clk clock.Clock) *Usecase {
	return &Usecase{uow: tx, recorder: rec, clk: clk}
}

// Create opens the loan and generates its full schedule in one transaction;
// either both land or neither does.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if len(in.BorrowerID) != 32 {
		return nil, fmt.Errorf("%w: borrower_id must be 32-char hex", ErrInvalidInput)
	}
	if in.LoanAmount <= 0 || in.PeriodCapital <= 0 || in.PeriodInterest < 0 {
		return nil, fmt.Errorf("%w: amounts must be positive", ErrInvalidInput)
	}
	if in.TotalPeriods < 0 {
		return nil, fmt.Errorf("%w: total_periods must not be negative", ErrInvalidInput)
	}
	dueStart, err := time.Parse("2006-01-02", in.DueStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: due_start_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	now := u.clk.Now()
	l := &domain.Loan{
		LoanID:           id.NewID32(),
		BorrowerID:       in.BorrowerID,
		LoanAmount:       money.Round2(in.LoanAmount),
		PeriodCapital:    money.Round2(in.PeriodCapital),
		PeriodInterest:   money.Round2(in.PeriodInterest),
		TotalPeriods:     in.TotalPeriods,
		Status:           domain.StatusPending,
		StatusChangedAt:  now,
		DueStartDate:     clock.Day(dueStart),
		DueEndDate:       clock.EndOfDay(dueStart.AddDate(0, 0, maxInt(in.TotalPeriods-1, 0))),
		CollectorID:      in.CollectorID,
		RiskControllerID: in.RiskControllerID,
		LenderID:         in.LenderID,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		periods := buildSchedule(l, now)
		if err := r.Schedules.CreateBatch(ctx, periods); err != nil {
			return err
		}
		l.Reconcile(deref(periods))
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, audit.Entry{
		Entity: "loan", EntityID: l.LoanID, Op: "create", Actor: in.OperatorID, After: l,
	})
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListSchedules(ctx context.Context, loanID string) ([]PeriodDTO, error) {
	var out []PeriodDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		ps, err := r.Schedules.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		out = make([]PeriodDTO, 0, len(ps))
		for i := range ps {
			out = append(out, toPeriodDTO(&ps[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a loan. A loan with live payment history is refused with
// ErrHasDependents unless the caller forces the cascade, in which case the
// ledger rows, schedule rows, and loan go together in one transaction.
func (u *Usecase) Delete(ctx context.Context, in DeleteLoanInput) error {
	var snapshot *domain.Loan
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		n, err := r.Ledger.CountByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if n > 0 && !in.Force {
			return domain.ErrHasDependents
		}
		if err := r.Ledger.DeleteByLoanID(ctx, l.ID); err != nil {
			return err
		}
		if err := r.Schedules.DeleteByLoanID(ctx, l.ID); err != nil {
			return err
		}
		snapshot = l
		return r.Loans.SoftDelete(ctx, l, in.OperatorID)
	})
	if err != nil {
		return err
	}
	u.recorder.Record(ctx, audit.Entry{
		Entity: "loan", EntityID: in.LoanID, Op: "delete", Actor: in.OperatorID, Before: snapshot,
	})
	return nil
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:                 l.LoanID,
		BorrowerID:             l.BorrowerID,
		LoanAmount:             l.LoanAmount,
		PeriodCapital:          l.PeriodCapital,
		PeriodInterest:         l.PeriodInterest,
		TotalPeriods:           l.TotalPeriods,
		RepaidPeriods:          l.RepaidPeriods,
		Status:                 string(l.Status),
		PaidCapital:            l.PaidCapital,
		PaidInterest:           l.PaidInterest,
		TotalFines:             l.TotalFines,
		ReceivingAmount:        l.ReceivingAmount,
		EarlySettlementCapital: l.EarlySettlementCapital,
		OverdueCount:           l.OverdueCount,
		DueStartDate:           l.DueStartDate,
		DueEndDate:             l.DueEndDate,
		CreatedAt:              l.CreatedAt,
	}
}

func toPeriodDTO(p *schedule.Period) PeriodDTO {
	return PeriodDTO{
		ScheduleID:   p.ScheduleID,
		Period:       p.Period,
		DueStartDate: p.DueStartDate,
		Capital:      p.Capital,
		Interest:     p.Interest,
		DueAmount:    p.DueAmount,
		PaidCapital:  p.PaidCapital,
		PaidInterest: p.PaidInterest,
		Fines:        p.Fines,
		PaidAmount:   p.PaidAmount,
		Status:       string(p.Status),
		PaidAt:       p.PaidAt,
	}
}

func deref(ps []*schedule.Period) []schedule.Period {
	out := make([]schedule.Period, 0, len(ps))
	for _, p := range ps {
		out = append(out, *p)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
