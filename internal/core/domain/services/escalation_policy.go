package services

import (
	"fmt"
	"time"

	"roadside/internal/core/domain/model/order"
	"roadside/internal/pkg/errs"
)

// DefaultMaxAcceptanceAttempts is used when no limit is configured.
const DefaultMaxAcceptanceAttempts = 3

// EscalationPolicy decides what happens to an order whose driver did not
// answer in time. Orders go back to the assignment queue until the driver
// has timed out MaxAcceptanceAttempts times in total, then they are canceled.
//
// Example usage:
//
//	policy, _ := services.NewEscalationPolicy(3)
//	if err := policy.Escalate(o, time.Now().UTC()); err != nil {
//	    // o was not awaiting acceptance
//	}
type EscalationPolicy struct {
	maxAcceptanceAttempts int
}

func NewEscalationPolicy(maxAcceptanceAttempts int) (EscalationPolicy, error) {
	if maxAcceptanceAttempts < 1 {
		return EscalationPolicy{}, errs.NewValueIsOutOfRangeError(
			"maxAcceptanceAttempts", maxAcceptanceAttempts, 1, "unbounded")
	}
	return EscalationPolicy{maxAcceptanceAttempts: maxAcceptanceAttempts}, nil
}

func (p EscalationPolicy) MaxAcceptanceAttempts() int {
	if p.maxAcceptanceAttempts < 1 {
		return DefaultMaxAcceptanceAttempts
	}
	return p.maxAcceptanceAttempts
}

// NextStatus returns the status o should move to on its next acceptance
// timeout.
func (p EscalationPolicy) NextStatus(o *order.Order) order.Status {
	if o.AcceptanceTimeouts()+1 >= p.MaxAcceptanceAttempts() {
		return order.Canceled
	}
	return order.AwaitingAssignment
}

// Escalate applies the acceptance timeout to o.
func (p EscalationPolicy) Escalate(o *order.Order, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.AwaitingDriverAcceptance {
		return errs.NewTransitionIsNotAllowedErrorWithCause(o.Status().String(), order.AcceptanceTimeout.String(),
			fmt.Errorf("order %s is not awaiting acceptance", o.ID()))
	}

	return o.ExpireAcceptance(p.NextStatus(o), at)
}
