package loan

import (
	"time"

	domain "loan-collection-service/internal/domain/loan"
	"loan-collection-service/internal/domain/schedule"
	"loan-collection-service/pkg/clock"
	"loan-collection-service/pkg/id"
	"loan-collection-service/pkg/money"
)

// buildSchedule produces the loan's full period set: one obligation per day
// starting at dueStart. Periods 1..N-1 carry min(periodCapital, remaining
// principal); the last period takes whatever principal remains, so the
// capital column sums to loan_amount exactly regardless of rounding.
// Interest is a fixed per-period amount, never pro-rated.
func buildSchedule(l *domain.Loan, now time.Time) []*schedule.Period {
	if l.TotalPeriods <= 0 {
		return nil
	}
	today := clock.Day(now)
	start := clock.Day(l.DueStartDate)
	remaining := money.Round2(l.LoanAmount)

	out := make([]*schedule.Period, 0, l.TotalPeriods)
	for i := 1; i <= l.TotalPeriods; i++ {
		capital := money.Min2(l.PeriodCapital, remaining)
		if i == l.TotalPeriods {
			capital = remaining
		}
		remaining = money.Sub2(remaining, capital)

		due := start.AddDate(0, 0, i-1)
		status := schedule.StatusPending
		if due.Before(today) {
			status = schedule.StatusOverdue
		}

		out = append(out, &schedule.Period{
			ScheduleID:   id.NewID32(),
			LoanID:       l.ID,
			Period:       i,
			DueStartDate: due,
			Capital:      capital,
			Interest:     money.Round2(l.PeriodInterest),
			DueAmount:    money.Add2(capital, l.PeriodInterest),
			Status:       status,
		})
	}
	return out
}
