package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	scheduleDomain "loan-collection-service/internal/domain/schedule"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

// UpsertForPeriod creates the period's ledger row on first payment and
// updates the same row in place on later edits, so a period never carries
// more than one live entry.
func (r *LedgerRepository) UpsertForPeriod(ctx context.Context, rec *scheduleDomain.PaymentRecord) error {
	if rec.ScheduleID == nil {
		return errors.New("payment record for a period requires a schedule id")
	}
	var cur scheduleDomain.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND kind = ?", *rec.ScheduleID, scheduleDomain.KindPeriod).
		First(&cur).Error
	switch {
	case err == nil:
		rec.ID = cur.ID
		rec.CreatedAt = cur.CreatedAt
		return r.db.WithContext(ctx).Save(rec).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec.Kind = scheduleDomain.KindPeriod
		return r.db.WithContext(ctx).Create(rec).Error
	default:
		return err
	}
}

func (r *LedgerRepository) DeleteForPeriod(ctx context.Context, scheduleID uint64) error {
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Delete(&scheduleDomain.PaymentRecord{}).Error
}

// UpsertEarlySettlement keeps exactly one tagged row per loan, updated in
// place when settlement is re-invoked.
func (r *LedgerRepository) UpsertEarlySettlement(ctx context.Context, rec *scheduleDomain.PaymentRecord) error {
	var cur scheduleDomain.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("loan_id = ? AND kind = ?", rec.LoanID, scheduleDomain.KindEarlySettlement).
		First(&cur).Error
	switch {
	case err == nil:
		rec.ID = cur.ID
		rec.CreatedAt = cur.CreatedAt
		return r.db.WithContext(ctx).Save(rec).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec.Kind = scheduleDomain.KindEarlySettlement
		return r.db.WithContext(ctx).Create(rec).Error
	default:
		return err
	}
}

func (r *LedgerRepository) CountByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&scheduleDomain.PaymentRecord{}).
		Where("loan_id = ?", loanID).
		Count(&n)
	return n, res.Error
}

func (r *LedgerRepository) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&scheduleDomain.PaymentRecord{}).Error
}
