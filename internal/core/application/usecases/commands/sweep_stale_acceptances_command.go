package commands

import (
	"errors"
	"time"

	"roadside/internal/pkg/errs"
	"roadside/internal/pkg/guard"
)

var ErrSweepStaleAcceptancesCommandIsNotConstructed = errors.New(
	"SweepStaleAcceptancesCommand must be created via NewSweepStaleAcceptancesCommand constructor",
)

// DefaultSweepBatchSize bounds how many orders one sweep pass loads.
const DefaultSweepBatchSize = 100

// SweepStaleAcceptancesCommand escalates orders whose driver has not
// answered within threshold of now.
type SweepStaleAcceptancesCommand struct {
	now       time.Time
	threshold time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

func NewSweepStaleAcceptancesCommand(
	now time.Time, threshold time.Duration, batchSize int,
) (SweepStaleAcceptancesCommand, error) {
	var errList []error
	if now.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("now"))
	}
	if threshold <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("threshold", threshold, "1ns", "unbounded"))
	}
	if batchSize <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return SweepStaleAcceptancesCommand{}, err
	}

	return SweepStaleAcceptancesCommand{
		now:       now,
		threshold: threshold,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SweepStaleAcceptancesCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleAcceptancesCommandIsNotConstructed)
}

func (c SweepStaleAcceptancesCommand) Now() time.Time {
	return c.now
}

// Before is the instant an order must have entered PorAceptar before to be
// considered stale.
func (c SweepStaleAcceptancesCommand) Before() time.Time {
	return c.now.Add(-c.threshold)
}

func (c SweepStaleAcceptancesCommand) BatchSize() int {
	return c.batchSize
}
