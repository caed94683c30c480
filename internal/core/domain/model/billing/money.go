package billing

import (
	"fmt"

	"roadside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CurrencyScale is the number of decimal places of the currency minimal unit.
const CurrencyScale = 2

// Round rounds half away from zero, which is half-up for the non-negative
// amounts handled here.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyScale)
}

// NonNegative fails with a validation error naming paramName when d < 0.
func NonNegative(paramName string, d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", d.String()))
	}
	return nil
}
