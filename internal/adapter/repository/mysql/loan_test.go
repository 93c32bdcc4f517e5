package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	loanDomain "loan-collection-service/internal/domain/loan"
	scheduleDomain "loan-collection-service/internal/domain/schedule"
	"loan-collection-service/pkg/id"
)

// openTestDB creates an in-memory sqlite DB with all three tables; shared by
// every test file in this package.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanDomain.Loan{}, &scheduleDomain.Period{}, &scheduleDomain.PaymentRecord{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, borrowerID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:          loanID,
		BorrowerID:      borrowerID,
		LoanAmount:      300.00,
		PeriodCapital:   100.00,
		PeriodInterest:  10.00,
		TotalPeriods:    3,
		Status:          loanDomain.StatusPending,
		StatusChangedAt: time.Now().UTC(),
	}
}

func TestLoanCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	borrower := id.NewID32()

	l := makeLoan(loanID, borrower)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.LoanID != loanID || got.BorrowerID != borrower {
		t.Errorf("unexpected loan: %+v", got)
	}
}

func TestLoanGetByLoanID_TranslatesNotFound(t *testing.T) {
	repo := NewLoanRepository(openTestDB(t))
	_, err := repo.GetByLoanID(context.Background(), id.NewID32())
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("err = %v, want loan.ErrNotFound", err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("gorm error leaked through the repository boundary")
	}
}

func TestLoanSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.PaidCapital = 100
	l.RepaidPeriods = 1
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.PaidCapital != 100 || got.RepaidPeriods != 1 {
		t.Errorf("update lost: %+v", got)
	}
}

func TestLoanSoftDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), id.NewID32())
	deletedBy := id.NewID32()
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SoftDelete(ctx, l, deletedBy); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	if _, err := repo.GetByLoanID(ctx, l.LoanID); !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("soft-deleted loan still visible: %v", err)
	}

	// Row remains with attribution for the audit trail.
	var raw loanDomain.Loan
	if err := db.Unscoped().Where("loan_id = ?", l.LoanID).First(&raw).Error; err != nil {
		t.Fatalf("unscoped fetch: %v", err)
	}
	if raw.DeletedBy != deletedBy || !raw.DeletedAt.Valid {
		t.Errorf("soft delete attribution missing: %+v", raw)
	}
}

func TestLoanSyncOverdueCounts(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i, st := range []scheduleDomain.Status{scheduleDomain.StatusOverdue, scheduleDomain.StatusOverdue, scheduleDomain.StatusPaid} {
		p := &scheduleDomain.Period{
			ScheduleID: id.NewID32(), LoanID: l.ID, Period: i + 1,
			DueStartDate: time.Date(2025, 6, 10+i, 0, 0, 0, 0, time.UTC),
			Capital:      100, Interest: 10, Status: st,
		}
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed period: %v", err)
		}
	}

	if _, err := repo.SyncOverdueCounts(ctx); err != nil {
		t.Fatalf("SyncOverdueCounts: %v", err)
	}
	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.OverdueCount != 2 {
		t.Errorf("overdue_count = %d, want 2", got.OverdueCount)
	}
}
