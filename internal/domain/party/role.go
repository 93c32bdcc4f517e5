package party

import (
	"errors"
	"fmt"
)

var ErrUnknownRole = errors.New("unknown party role")

// Role is the closed set of staff parties attached to a loan. It is parsed
// once at the HTTP boundary; everything below branches on the typed value,
// never on raw strings.
type Role string

const (
	Collector      Role = "collector"
	RiskController Role = "risk_controller"
	Lender         Role = "lender"
)

func Parse(s string) (Role, error) {
	switch Role(s) {
	case Collector, RiskController, Lender:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) Valid() bool {
	_, err := Parse(string(r))
	return err == nil
}

// BalanceField names the asset-ledger running-balance field this role's
// actor adjusts when loan totals move.
func (r Role) BalanceField() string {
	switch r {
	case Collector:
		return "collector_receiving"
	case RiskController:
		return "risk_receiving"
	case Lender:
		return "lender_receiving"
	}
	return "unknown"
}
