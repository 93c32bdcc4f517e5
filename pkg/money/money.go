package money

import "github.com/shopspring/decimal"

// All ledger amounts are kept to 2 decimal places at every step; the helpers
// here route float64 math through shopspring/decimal so repeated edits never
// accumulate binary-float drift.

func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func Add2(vs ...float64) float64 {
	sum := decimal.Zero
	for _, v := range vs {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.Round(2).InexactFloat64()
}

func Sub2(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

// Clamp2 rounds v to 2dp and caps it at ceiling. Negative ceilings clamp to 0.
func Clamp2(v, ceiling float64) float64 {
	d := decimal.NewFromFloat(v).Round(2)
	c := decimal.NewFromFloat(ceiling).Round(2)
	if c.IsNegative() {
		c = decimal.Zero
	}
	if d.GreaterThan(c) {
		d = c
	}
	return d.InexactFloat64()
}

func Min2(a, b float64) float64 {
	da := decimal.NewFromFloat(a).Round(2)
	db := decimal.NewFromFloat(b).Round(2)
	if da.LessThan(db) {
		return da.InexactFloat64()
	}
	return db.InexactFloat64()
}
