package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	scheduleDomain "loan-collection-service/internal/domain/schedule"
	"loan-collection-service/pkg/id"
)

func seedPeriods(t *testing.T, repo *ScheduleRepository, loanID uint64, statuses ...scheduleDomain.Status) []*scheduleDomain.Period {
	t.Helper()
	ps := make([]*scheduleDomain.Period, 0, len(statuses))
	for i, st := range statuses {
		ps = append(ps, &scheduleDomain.Period{
			ScheduleID:   id.NewID32(),
			LoanID:       loanID,
			Period:       i + 1,
			DueStartDate: time.Date(2025, 6, 10+i, 0, 0, 0, 0, time.UTC),
			Capital:      100,
			Interest:     10,
			DueAmount:    110,
			Status:       st,
		})
	}
	if err := repo.CreateBatch(context.Background(), ps); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	return ps
}

func TestScheduleCreateBatchAndListOrder(t *testing.T) {
	repo := NewScheduleRepository(openTestDB(t))
	ctx := context.Background()

	seedPeriods(t, repo, 1,
		scheduleDomain.StatusPending, scheduleDomain.StatusPending, scheduleDomain.StatusPending)

	got, err := repo.ListByLoanID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, p := range got {
		if p.Period != i+1 {
			t.Errorf("position %d holds period %d; want ascending order", i, p.Period)
		}
	}
}

func TestScheduleCreateBatch_EmptyIsNoop(t *testing.T) {
	repo := NewScheduleRepository(openTestDB(t))
	if err := repo.CreateBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty CreateBatch: %v", err)
	}
}

func TestScheduleGetByScheduleID_TranslatesNotFound(t *testing.T) {
	repo := NewScheduleRepository(openTestDB(t))
	_, err := repo.GetByScheduleID(context.Background(), id.NewID32())
	if !errors.Is(err, scheduleDomain.ErrNotFound) {
		t.Fatalf("err = %v, want schedule.ErrNotFound", err)
	}
}

func TestScheduleMarkActiveAndOverdue_SetBased(t *testing.T) {
	repo := NewScheduleRepository(openTestDB(t))
	ctx := context.Background()
	today := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	// periods due 06-10 (pending), 06-11 (pending), 06-12 (pending)
	ps := seedPeriods(t, repo, 1,
		scheduleDomain.StatusPending, scheduleDomain.StatusPending, scheduleDomain.StatusPending)

	overdue, err := repo.MarkOverdue(ctx, today)
	if err != nil {
		t.Fatalf("MarkOverdue: %v", err)
	}
	if overdue != 2 {
		t.Errorf("overdue rows = %d, want 2", overdue)
	}
	active, err := repo.MarkActive(ctx, today)
	if err != nil {
		t.Fatalf("MarkActive: %v", err)
	}
	if active != 1 {
		t.Errorf("active rows = %d, want 1", active)
	}

	// rerun: everything already matched moves nothing
	overdue, _ = repo.MarkOverdue(ctx, today)
	active, _ = repo.MarkActive(ctx, today)
	if overdue != 0 || active != 0 {
		t.Errorf("rerun moved rows: overdue=%d active=%d", overdue, active)
	}

	got, err := repo.GetByScheduleID(ctx, ps[2].ScheduleID)
	if err != nil {
		t.Fatalf("GetByScheduleID: %v", err)
	}
	if got.Status != scheduleDomain.StatusActive {
		t.Errorf("today's period = %s, want active", got.Status)
	}
}

func TestScheduleMarkOverdue_SkipsCoveredPeriods(t *testing.T) {
	repo := NewScheduleRepository(openTestDB(t))
	ctx := context.Background()

	ps := seedPeriods(t, repo, 1, scheduleDomain.StatusActive)
	ps[0].PaidCapital = 100
	ps[0].PaidInterest = 10
	if err := repo.Save(ctx, ps[0]); err != nil {
		t.Fatalf("Save: %v", err)
	}

	n, err := repo.MarkOverdue(ctx, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MarkOverdue: %v", err)
	}
	if n != 0 {
		t.Errorf("fully covered period went overdue (%d rows)", n)
	}
}

func TestScheduleTerminateFrom(t *testing.T) {
	repo := NewScheduleRepository(openTestDB(t))
	ctx := context.Background()
	cutoff := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	// due 06-10 overdue, 06-11 pending, 06-12 active, 06-13 paid
	ps := seedPeriods(t, repo, 1,
		scheduleDomain.StatusOverdue, scheduleDomain.StatusPending,
		scheduleDomain.StatusActive, scheduleDomain.StatusPaid)

	n, err := repo.TerminateFrom(ctx, 1, cutoff)
	if err != nil {
		t.Fatalf("TerminateFrom: %v", err)
	}
	if n != 1 {
		t.Errorf("terminated = %d, want 1 (only the pending row on/after cutoff)", n)
	}

	want := []scheduleDomain.Status{
		scheduleDomain.StatusOverdue,    // before cutoff: untouched
		scheduleDomain.StatusTerminated, // pending on cutoff day: voided
		scheduleDomain.StatusActive,     // active survives settlement
		scheduleDomain.StatusPaid,       // paid survives settlement
	}
	for i, p := range ps {
		got, err := repo.GetByScheduleID(ctx, p.ScheduleID)
		if err != nil {
			t.Fatalf("reload period %d: %v", i+1, err)
		}
		if got.Status != want[i] {
			t.Errorf("period %d = %s, want %s", i+1, got.Status, want[i])
		}
	}

	// re-invocation with the same cutoff moves nothing further
	n, err = repo.TerminateFrom(ctx, 1, cutoff)
	if err != nil {
		t.Fatalf("second TerminateFrom: %v", err)
	}
	if n != 0 {
		t.Errorf("second terminate moved %d rows, want 0", n)
	}
}

func TestScheduleDeleteByLoanID(t *testing.T) {
	repo := NewScheduleRepository(openTestDB(t))
	ctx := context.Background()

	seedPeriods(t, repo, 1, scheduleDomain.StatusPending, scheduleDomain.StatusPending)
	if err := repo.DeleteByLoanID(ctx, 1); err != nil {
		t.Fatalf("DeleteByLoanID: %v", err)
	}
	got, err := repo.ListByLoanID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("periods remain after delete: %d", len(got))
	}
}
