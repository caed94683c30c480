package billing

import (
	"errors"

	"roadside/internal/pkg/errs"
	"roadside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCoverageIsNotConstructed = errs.NewValueIsRequiredError("coverage must be created via NewCoverage")

// Coverage is what a contract's policy pays for: a distance allowance, an
// amount allowance and the price of each distance unit beyond the allowance.
// An order snapshots it at creation so later policy edits do not reprice it.
type Coverage struct { //nolint:recvcheck //using for validation
	distanceCoverage          decimal.Decimal
	amountCoverage            decimal.Decimal
	pricePerExtraDistanceUnit decimal.Decimal
	guard                     guard.ConstructorGuard
}

func NewCoverage(distanceCoverage, amountCoverage, pricePerExtraDistanceUnit decimal.Decimal) (Coverage, error) {
	c := Coverage{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setDistanceCoverage(distanceCoverage),
		c.setAmountCoverage(amountCoverage),
		c.setPricePerExtraDistanceUnit(pricePerExtraDistanceUnit),
	); err != nil {
		return Coverage{}, err
	}

	return c, nil
}

func (c Coverage) Validate() error {
	return c.guard.Validate(ErrCoverageIsNotConstructed)
}

func (c Coverage) DistanceCoverage() decimal.Decimal {
	return c.distanceCoverage
}

func (c Coverage) AmountCoverage() decimal.Decimal {
	return c.amountCoverage
}

func (c Coverage) PricePerExtraDistanceUnit() decimal.Decimal {
	return c.pricePerExtraDistanceUnit
}

// Inputs combines the coverage with the order-side figures.
func (c Coverage) Inputs(distanceTraveled decimal.Decimal, extraCostAmounts []decimal.Decimal) CostInputs {
	return CostInputs{
		DistanceTraveled:          distanceTraveled,
		PolicyDistanceCoverage:    c.distanceCoverage,
		PolicyAmountCoverage:      c.amountCoverage,
		PricePerExtraDistanceUnit: c.pricePerExtraDistanceUnit,
		ExtraCostAmounts:          extraCostAmounts,
	}
}

func (c *Coverage) setDistanceCoverage(d decimal.Decimal) error {
	if err := NonNegative("distanceCoverage", d); err != nil {
		return err
	}
	c.distanceCoverage = d
	return nil
}

func (c *Coverage) setAmountCoverage(d decimal.Decimal) error {
	if err := NonNegative("amountCoverage", d); err != nil {
		return err
	}
	c.amountCoverage = d
	return nil
}

func (c *Coverage) setPricePerExtraDistanceUnit(d decimal.Decimal) error {
	if err := NonNegative("pricePerExtraDistanceUnit", d); err != nil {
		return err
	}
	c.pricePerExtraDistanceUnit = d
	return nil
}
