package sweep

import (
	"context"
	"log"

	loanDomain "loan-collection-service/internal/domain/loan"
	"loan-collection-service/internal/domain/schedule"
	"loan-collection-service/pkg/clock"
)

type Result struct {
	Overdue   int64 `json:"overdue"`
	Activated int64 `json:"activated"`
	Synced    int64 `json:"loans_synced"`
}

// Usecase is the daily status sweep. It runs set-based conditional updates
// across all loans instead of per-loan read-modify-write, so reruns within a
// day are no-ops and a restart mid-sweep is safe.
type Usecase struct {
	schedules schedule.Repository
	loans     loanDomain.Repository
	clk       clock.Clock
}

func NewUsecase(schedules schedule.Repository, loans loanDomain.Repository, clk clock.Clock) *Usecase {
	return &Usecase{schedules: schedules, loans: loans, clk: clk}
}

// Run advances every matching period: pending -> active on the due day,
// pending/active -> overdue once the due day lies strictly before today and
// the period is not fully covered. Paid and terminated rows are never
// touched; loan-level settled/blacklist transitions are the settlement
// engine's job, not the sweep's.
func (u *Usecase) Run(ctx context.Context) (Result, error) {
	today := clock.Day(u.clk.Now())

	overdue, err := u.schedules.MarkOverdue(ctx, today)
	if err != nil {
		return Result{}, err
	}
	activated, err := u.schedules.MarkActive(ctx, today)
	if err != nil {
		return Result{Overdue: overdue}, err
	}
	synced, err := u.loans.SyncOverdueCounts(ctx)
	if err != nil {
		return Result{Overdue: overdue, Activated: activated}, err
	}

	log.Printf("sweep: %d overdue, %d activated, %d loans synced", overdue, activated, synced)
	return Result{Overdue: overdue, Activated: activated, Synced: synced}, nil
}
