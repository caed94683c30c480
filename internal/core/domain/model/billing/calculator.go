package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// CostInputs are the figures the total cost of an order depends on.
type CostInputs struct {
	DistanceTraveled          decimal.Decimal
	PolicyDistanceCoverage    decimal.Decimal
	PolicyAmountCoverage      decimal.Decimal
	PricePerExtraDistanceUnit decimal.Decimal
	ExtraCostAmounts          []decimal.Decimal
}

// CalculateTotalCost returns what the customer owes after the policy has
// paid its share:
//
//	overage  = max(0, distanceTraveled - policyDistanceCoverage)
//	subtotal = overage * pricePerExtraDistanceUnit + sum(extraCostAmounts)
//	total    = max(0, subtotal - policyAmountCoverage)
//
// The result is rounded to CurrencyScale places. Negative inputs are rejected.
func CalculateTotalCost(in CostInputs) (decimal.Decimal, error) {
	if err := in.validate(); err != nil {
		return decimal.Zero, err
	}

	overage := decimal.Max(decimal.Zero, in.DistanceTraveled.Sub(in.PolicyDistanceCoverage))
	subtotal := overage.Mul(in.PricePerExtraDistanceUnit)
	for _, amount := range in.ExtraCostAmounts {
		subtotal = subtotal.Add(amount)
	}

	if subtotal.LessThan(in.PolicyAmountCoverage) {
		return decimal.Zero, nil
	}

	return Round(subtotal.Sub(in.PolicyAmountCoverage)), nil
}

func (in CostInputs) validate() error {
	errList := []error{
		NonNegative("distanceTraveled", in.DistanceTraveled),
		NonNegative("policyDistanceCoverage", in.PolicyDistanceCoverage),
		NonNegative("policyAmountCoverage", in.PolicyAmountCoverage),
		NonNegative("pricePerExtraDistanceUnit", in.PricePerExtraDistanceUnit),
	}
	for i, amount := range in.ExtraCostAmounts {
		errList = append(errList, NonNegative(fmt.Sprintf("extraCostAmounts[%d]", i), amount))
	}
	return errors.Join(errList...)
}
