package clock

import (
	"testing"
	"time"
)

func TestDayTruncatesToUTCMidnight(t *testing.T) {
	in := time.Date(2025, 3, 14, 17, 45, 12, 999, time.FixedZone("X", 7*3600))
	got := Day(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Fatalf("Day not midnight: %v", got)
	}
	if got.Location() != time.UTC {
		t.Fatalf("Day not UTC: %v", got.Location())
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2025, 3, 14, 1, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC)
	if got := EndOfDay(in); !got.Equal(want) {
		t.Fatalf("EndOfDay = %v, want %v", got, want)
	}
}

func TestFixed(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := Fixed(at)
	if !c.Now().Equal(at) {
		t.Fatalf("Fixed clock drifted: %v", c.Now())
	}
}
