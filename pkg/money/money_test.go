package money

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.005, 1.01},
		{1.004, 1.0},
		{99.999, 100.0},
		{-1.005, -1.01},
		{0.1 + 0.2, 0.3}, // binary-float noise must not leak through
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAdd2_NoDrift(t *testing.T) {
	// Summing 0.1 ten times in float64 is 0.9999999999999999.
	vs := make([]float64, 10)
	for i := range vs {
		vs[i] = 0.1
	}
	if got := Add2(vs...); got != 1.0 {
		t.Fatalf("Add2 = %v, want 1.0", got)
	}
}

func TestClamp2(t *testing.T) {
	if got := Clamp2(150, 100); got != 100 {
		t.Errorf("Clamp2(150,100) = %v", got)
	}
	if got := Clamp2(99.99, 100); got != 99.99 {
		t.Errorf("Clamp2(99.99,100) = %v", got)
	}
	if got := Clamp2(10, -5); got != 0 {
		t.Errorf("Clamp2 with negative ceiling = %v, want 0", got)
	}
}

func TestMin2AndSub2(t *testing.T) {
	if got := Min2(100, 50); got != 50 {
		t.Errorf("Min2 = %v", got)
	}
	if got := Sub2(250, 200); got != 50 {
		t.Errorf("Sub2 = %v", got)
	}
}
