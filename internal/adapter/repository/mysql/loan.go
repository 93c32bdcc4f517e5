package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "loan-collection-service/internal/domain/loan"
	scheduleDomain "loan-collection-service/internal/domain/schedule"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, translate(res.Error)
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, translate(res.Error)
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, translate(res.Error)
}

func (r *LoanRepository) SoftDelete(ctx context.Context, l *loanDomain.Loan, deletedBy string) error {
	if err := r.db.WithContext(ctx).Model(l).Update("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(l).Error
}

func (r *LoanRepository) SyncOverdueCounts(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE loans SET overdue_count = (
			SELECT COUNT(*) FROM repayment_schedules s
			WHERE s.loan_id = loans.id AND s.status = ?
		) WHERE deleted_at IS NULL`,
		scheduleDomain.StatusOverdue,
	)
	return res.RowsAffected, res.Error
}

// translate maps gorm's not-found onto the domain sentinel so callers never
// depend on gorm at the usecase layer.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loanDomain.ErrNotFound
	}
	return err
}
