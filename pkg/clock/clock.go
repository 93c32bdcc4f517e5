package clock

import "time"

// Clock abstracts wall-clock "now" so date-driven transitions (overdue
// checks, settlement defaults) are deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func System() Clock { return systemClock{} }

// Fixed returns a Clock pinned to t (UTC).
func Fixed(t time.Time) Clock { return fixedClock{t: t.UTC()} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// Day truncates t to its UTC calendar day (midnight).
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last second of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	return Day(t).Add(24*time.Hour - time.Second)
}
