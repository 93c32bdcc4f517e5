package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loan-collection-service/internal/audit"
	"loan-collection-service/internal/domain/party"
	"loan-collection-service/internal/domain/schedule"
	"loan-collection-service/internal/domain/uow"
	"loan-collection-service/pkg/clock"
	"loan-collection-service/pkg/money"
)

var ErrInvalidInput = errors.New("invalid input")

type ApplyInput struct {
	ScheduleID   string
	PayCapital   float64
	PayInterest  float64
	Fines        float64
	OperatorID   string
	OperatorRole party.Role
}

type ResultDTO struct {
	ScheduleID      string  `json:"schedule_id"`
	Period          int     `json:"period"`
	PaidCapital     float64 `json:"paid_capital"`
	PaidInterest    float64 `json:"paid_interest"`
	Fines           float64 `json:"fines"`
	PaidAmount      float64 `json:"paid_amount"`
	Status          string  `json:"status"`
	LoanID          string  `json:"loan_id"`
	LoanPaidCapital float64 `json:"loan_paid_capital"`
	LoanRepaid      int     `json:"loan_repaid_periods"`
	LoanReceiving   float64 `json:"loan_receiving_amount"`
}

type Usecase struct {
	uow      uow.UnitOfWork
	recorder audit.Recorder
	assets   audit.AssetLedger
	clk      clock.Clock
}

func NewUsecase(tx uow.UnitOfWork, rec audit.Recorder, assets audit.AssetLedger, clk clock.Clock) *Usecase {
	return &Usecase{uow: tx, recorder: rec, assets: assets, clk: clk}
}

// Apply records a staff-entered payment against one period. Incoming values
// replace the period's recorded payment (edits, not increments), clamped to
// the period's capital/interest ceilings. The loan's aggregates are then
// recomputed from the full schedule collection; no incremental delta path
// exists here on purpose.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ResultDTO, error) {
	if in.PayCapital < 0 || in.PayInterest < 0 || in.Fines < 0 {
		return nil, fmt.Errorf("%w: amounts must not be negative", ErrInvalidInput)
	}
	if len(in.OperatorID) != 32 {
		return nil, fmt.Errorf("%w: operator id must be 32-char hex", ErrInvalidInput)
	}

	now := u.clk.Now()
	var (
		dto          *ResultDTO
		before       schedule.Period
		oldReceiving float64
		newReceiving float64
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Resolve the parent loan, lock it (the loan row is the concurrency
		// unit), then re-read the period under that lock.
		probe, err := r.Schedules.GetByScheduleID(ctx, in.ScheduleID)
		if err != nil {
			return err
		}
		l, err := r.Loans.GetByIDForUpdate(ctx, probe.LoanID)
		if err != nil {
			return err
		}
		p, err := r.Schedules.GetByScheduleIDForUpdate(ctx, in.ScheduleID)
		if err != nil {
			return err
		}
		before = *p
		oldReceiving = l.ReceivingAmount

		p.PaidCapital = money.Clamp2(in.PayCapital, p.Capital)
		p.PaidInterest = money.Clamp2(in.PayInterest, p.Interest)
		p.Fines = money.Round2(in.Fines)
		p.PaidAmount = money.Add2(p.PaidCapital, p.PaidInterest, p.Fines)
		p.OperatorID = in.OperatorID

		u.deriveStatus(p, now)

		if p.PaidAmount == 0 {
			// Payment fully zeroed out: the period's live ledger entry goes.
			if err := r.Ledger.DeleteForPeriod(ctx, p.ID); err != nil {
				return err
			}
		} else {
			sid := p.ID
			if err := r.Ledger.UpsertForPeriod(ctx, &schedule.PaymentRecord{
				LoanID:     p.LoanID,
				ScheduleID: &sid,
				Kind:       schedule.KindPeriod,
				Capital:    p.PaidCapital,
				Interest:   p.PaidInterest,
				Fines:      p.Fines,
				Amount:     p.PaidAmount,
				OperatorID: in.OperatorID,
				PaidAt:     now,
			}); err != nil {
				return err
			}
		}

		if err := r.Schedules.Save(ctx, p); err != nil {
			return err
		}

		all, err := r.Schedules.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		l.Reconcile(all)
		newReceiving = l.ReceivingAmount
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &ResultDTO{
			ScheduleID:      p.ScheduleID,
			Period:          p.Period,
			PaidCapital:     p.PaidCapital,
			PaidInterest:    p.PaidInterest,
			Fines:           p.Fines,
			PaidAmount:      p.PaidAmount,
			Status:          string(p.Status),
			LoanID:          l.LoanID,
			LoanPaidCapital: l.PaidCapital,
			LoanRepaid:      l.RepaidPeriods,
			LoanReceiving:   l.ReceivingAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, audit.Entry{
		Entity: "schedule", EntityID: in.ScheduleID, Op: "payment",
		Actor: in.OperatorID, Before: before, After: dto,
	})
	u.assets.Adjust(ctx, in.OperatorID, in.OperatorRole, oldReceiving, newReceiving)

	return dto, nil
}

// deriveStatus recomputes the period status from the new payment values.
// Completion wins; a full zero-out is the explicit reset back to the
// date-derived state; a paid period with merely lowered (nonzero) amounts
// stays paid — status only moves toward paid outside the reset path.
func (u *Usecase) deriveStatus(p *schedule.Period, now time.Time) {
	switch {
	case p.FullyPaid():
		if p.Status != schedule.StatusPaid {
			t := now
			p.PaidAt = &t
		}
		p.Status = schedule.StatusPaid
	case p.PaidAmount == 0:
		p.PaidAt = nil
		if p.Status != schedule.StatusTerminated {
			p.Status = dateDerived(p.DueStartDate, now)
		}
	case p.Status == schedule.StatusPaid:
		// monotonic: partial lowering never reverts a paid period
	default:
		p.Status = schedule.StatusActive
	}
}

// dateDerived is the single overdue rule: a period is overdue when its due
// day (UTC calendar) is strictly before today; it is active on the due day
// itself; otherwise pending. Terminated periods stay terminated.
func dateDerived(due, now time.Time) schedule.Status {
	today := clock.Day(now)
	day := clock.Day(due)
	switch {
	case day.Before(today):
		return schedule.StatusOverdue
	case day.Equal(today):
		return schedule.StatusActive
	default:
		return schedule.StatusPending
	}
}
