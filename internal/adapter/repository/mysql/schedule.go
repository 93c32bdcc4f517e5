package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	scheduleDomain "loan-collection-service/internal/domain/schedule"
)

type ScheduleRepository struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository { return &ScheduleRepository{db: db} }

func (r *ScheduleRepository) CreateBatch(ctx context.Context, ps []*scheduleDomain.Period) error {
	if len(ps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(ps).Error
}

func (r *ScheduleRepository) GetByScheduleID(ctx context.Context, scheduleID string) (*scheduleDomain.Period, error) {
	var out scheduleDomain.Period
	res := r.db.WithContext(ctx).Where("schedule_id = ?", scheduleID).First(&out)
	return &out, translateSchedule(res.Error)
}

func (r *ScheduleRepository) GetByScheduleIDForUpdate(ctx context.Context, scheduleID string) (*scheduleDomain.Period, error) {
	var out scheduleDomain.Period
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("schedule_id = ?", scheduleID).
		First(&out)
	return &out, translateSchedule(res.Error)
}

func (r *ScheduleRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]scheduleDomain.Period, error) {
	var out []scheduleDomain.Period
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("period ASC").
		Find(&out)
	return out, res.Error
}

func (r *ScheduleRepository) Save(ctx context.Context, p *scheduleDomain.Period) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ScheduleRepository) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&scheduleDomain.Period{}).Error
}

// MarkActive moves pending periods whose due day is exactly `day` to active.
// One conditional UPDATE across all loans; already-active rows no longer
// match, so reruns within the day are no-ops.
func (r *ScheduleRepository) MarkActive(ctx context.Context, day time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&scheduleDomain.Period{}).
		Where("status = ? AND due_start_date >= ? AND due_start_date < ?",
			scheduleDomain.StatusPending, day, day.AddDate(0, 0, 1)).
		Update("status", scheduleDomain.StatusActive)
	return res.RowsAffected, res.Error
}

// MarkOverdue moves pending/active periods whose due day lies strictly
// before `day` and that are not fully covered to overdue. Paid and
// terminated rows never match.
func (r *ScheduleRepository) MarkOverdue(ctx context.Context, day time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&scheduleDomain.Period{}).
		Where("status IN ? AND due_start_date < ? AND (paid_capital < capital OR paid_interest < interest)",
			[]scheduleDomain.Status{scheduleDomain.StatusPending, scheduleDomain.StatusActive}, day).
		Update("status", scheduleDomain.StatusOverdue)
	return res.RowsAffected, res.Error
}

func (r *ScheduleRepository) TerminateFrom(ctx context.Context, loanID uint64, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&scheduleDomain.Period{}).
		Where("loan_id = ? AND due_start_date >= ? AND status NOT IN ?",
			loanID, cutoff,
			[]scheduleDomain.Status{scheduleDomain.StatusActive, scheduleDomain.StatusPaid, scheduleDomain.StatusTerminated}).
		Update("status", scheduleDomain.StatusTerminated)
	return res.RowsAffected, res.Error
}

func translateSchedule(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduleDomain.ErrNotFound
	}
	return err
}
