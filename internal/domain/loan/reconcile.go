package loan

import (
	"loan-collection-service/internal/domain/schedule"
	"loan-collection-service/pkg/money"
)

// Reconcile re-derives every aggregate field from the full schedule
// collection. It must run after generation, any payment edit, and
// settlement, always inside the same transaction as the mutation.
//
// Full recomputation is deliberate: summing deltas into the aggregate drifts
// under repeated edits of the same period, so no caller may shortcut this
// with incremental accumulation. Running it twice with no intervening
// mutation is a no-op.
func (l *Loan) Reconcile(periods []schedule.Period) {
	repaid, overdue := 0, 0
	caps := make([]float64, 0, len(periods))
	ints := make([]float64, 0, len(periods))
	fines := make([]float64, 0, len(periods))

	for i := range periods {
		p := &periods[i]
		switch p.Status {
		case schedule.StatusPaid:
			repaid++
		case schedule.StatusOverdue:
			overdue++
		}
		caps = append(caps, p.PaidCapital)
		ints = append(ints, p.PaidInterest)
		fines = append(fines, p.Fines)
	}

	l.RepaidPeriods = repaid
	l.OverdueCount = overdue
	l.PaidCapital = money.Add2(caps...)
	l.PaidInterest = money.Add2(ints...)
	l.TotalFines = money.Add2(fines...)

	// Early-settlement capital joins the realized totals only once the loan
	// is closed; it never counts toward repaid_periods.
	if l.Closed() {
		l.PaidCapital = money.Add2(l.PaidCapital, l.EarlySettlementCapital)
	}
	l.ReceivingAmount = money.Add2(l.PaidCapital, l.PaidInterest, l.TotalFines)
}
