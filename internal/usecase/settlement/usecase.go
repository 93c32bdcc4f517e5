package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loan-collection-service/internal/audit"
	loanDomain "loan-collection-service/internal/domain/loan"
	"loan-collection-service/internal/domain/party"
	"loan-collection-service/internal/domain/schedule"
	"loan-collection-service/internal/domain/uow"
	"loan-collection-service/pkg/clock"
	"loan-collection-service/pkg/money"
)

var ErrInvalidInput = errors.New("invalid input")

type SettleInput struct {
	LoanID            string
	Status            loanDomain.Status // settled or blacklist
	SettlementDate    string            // YYYY-MM-DD, empty means today
	SettlementCapital *float64          // optional manual early-settlement capital
	OperatorID        string
	OperatorRole      party.Role
}

type SettleDTO struct {
	LoanID                 string    `json:"loan_id"`
	Status                 string    `json:"status"`
	SettlementDate         time.Time `json:"settlement_date"`
	EarlySettlementCapital float64   `json:"early_settlement_capital"`
	PaidCapital            float64   `json:"paid_capital"`
	ReceivingAmount        float64   `json:"receiving_amount"`
	RepaidPeriods          int       `json:"repaid_periods"`
	TerminatedPeriods      int64     `json:"terminated_periods"`
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

// Settle early-closes a loan as settled or blacklisted. Periods due on or
// after the settlement day that are neither active nor paid are voided;
// earlier periods keep whatever state they earned. Re-invoking with the same
// date updates the one tagged ledger entry in place; there is no unsettle.
func (u *Usecase) Settle(ctx context.Context, in SettleInput) (*SettleDTO, error) {
	if in.Status != loanDomain.StatusSettled && in.Status != loanDomain.StatusBlacklist {
		return nil, fmt.Errorf("%w: status must be settled or blacklist", ErrInvalidInput)
	}
	if in.SettlementCapital != nil && *in.SettlementCapital < 0 {
		return nil, fmt.Errorf("%w: settlement_capital must not be negative", ErrInvalidInput)
	}
	if len(in.OperatorID) != 32 {
		return nil, fmt.Errorf("%w: operator id must be 32-char hex", ErrInvalidInput)
	}
	now := u.clk.Now()
	cutoff := clock.Day(now)
	if in.SettlementDate != "" {
		d, err := time.Parse("2006-01-02", in.SettlementDate)
		if err != nil {
			return nil, fmt.Errorf("%w: settlement_date must be YYYY-MM-DD", ErrInvalidInput)
		}
		cutoff = clock.Day(d)
	}

	var (
		dto          *SettleDTO
		before       loanDomain.Loan
		oldReceiving float64
	)

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		before = *l
		oldReceiving = l.ReceivingAmount

		terminated, err := r.Schedules.TerminateFrom(ctx, l.ID, cutoff)
		if err != nil {
			return err
		}

		if in.SettlementCapital != nil {
			l.EarlySettlementCapital = money.Round2(*in.SettlementCapital)
			if err := r.Ledger.UpsertEarlySettlement(ctx, &schedule.PaymentRecord{
				LoanID:     l.ID,
				Kind:       schedule.KindEarlySettlement,
				Capital:    l.EarlySettlementCapital,
				Amount:     l.EarlySettlementCapital,
				OperatorID: in.OperatorID,
				PaidAt:     cutoff,
			}); err != nil {
				return err
			}
		}

		l.Status = in.Status
		l.StatusChangedAt = now
		l.DueEndDate = clock.EndOfDay(cutoff)

		all, err := r.Schedules.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		// repaid_periods stays a count of genuinely paid periods; settlement
		// never completes periods on the loan's behalf.
		l.Reconcile(all)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &SettleDTO{
			LoanID:                 l.LoanID,
			Status:                 string(l.Status),
			SettlementDate:         cutoff,
			EarlySettlementCapital: l.EarlySettlementCapital,
			PaidCapital:            l.PaidCapital,
			ReceivingAmount:        l.ReceivingAmount,
			RepaidPeriods:          l.RepaidPeriods,
			TerminatedPeriods:      terminated,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.recorder.Record(ctx, audit.Entry{
		Entity: "loan", EntityID: in.LoanID, Op: "settle",
		Actor: in.OperatorID, Before: before, After: dto,
	})
	u.assets.Adjust(ctx, in.OperatorID, in.OperatorRole, oldReceiving, dto.ReceivingAmount)

	return dto, nil
}
