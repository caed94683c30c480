package order

import (
	"fmt"

	"roadside/internal/pkg/errs"
)

// Trigger is an event that moves an order between statuses.
type Trigger int

const (
	UnknownTrigger Trigger = iota
	AssignDriver
	AcceptAssignment
	RefuseAssignment
	AcceptanceTimeout
	LocateDriver
	StartService
	FinishService
	ConfirmPayment
	Cancel
)

func getTriggerStrings() map[Trigger]string {
	return map[Trigger]string{
		UnknownTrigger:    "Unknown",
		AssignDriver:      "AssignDriver",
		AcceptAssignment:  "AcceptAssignment",
		RefuseAssignment:  "RefuseAssignment",
		AcceptanceTimeout: "AcceptanceTimeout",
		LocateDriver:      "LocateDriver",
		StartService:      "StartService",
		FinishService:     "FinishService",
		ConfirmPayment:    "ConfirmPayment",
		Cancel:            "Cancel",
	}
}

func (t Trigger) String() string {
	if str, ok := getTriggerStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// transitions lists, for each source status, the triggers it accepts and the
// statuses each trigger may lead to. AcceptanceTimeout is the only trigger
// with more than one target; the escalation policy picks between them.
func transitions() map[Status]map[Trigger][]Status {
	return map[Status]map[Trigger][]Status{
		AwaitingAssignment: {
			AssignDriver: {AwaitingDriverAcceptance},
			Cancel:       {Canceled},
		},
		AwaitingDriverAcceptance: {
			AcceptAssignment:  {Accepted},
			RefuseAssignment:  {AwaitingAssignment},
			AcceptanceTimeout: {AwaitingAssignment, Canceled},
			Cancel:            {Canceled},
		},
		Accepted: {
			LocateDriver: {DriverLocated},
			Cancel:       {Canceled},
		},
		DriverLocated: {
			StartService: {InProgress},
			Cancel:       {Canceled},
		},
		InProgress: {
			FinishService: {Completed},
			Cancel:        {Canceled},
		},
		Completed: {
			ConfirmPayment: {Paid},
		},
	}
}

// Permits checks that trigger t may move s into target.
func (s Status) Permits(t Trigger, target Status) error {
	for _, to := range transitions()[s][t] {
		if to == target {
			return nil
		}
	}
	return errs.NewTransitionIsNotAllowedErrorWithCause(
		s.String(), t.String(), fmt.Errorf("%s cannot lead to %s", s, target))
}

// TriggerFor resolves the trigger that moves s into target. AcceptanceTimeout
// is reserved for the escalation sweep and never selected here.
func (s Status) TriggerFor(target Status) (Trigger, error) {
	for t := AssignDriver; t <= Cancel; t++ {
		if t == AcceptanceTimeout {
			continue
		}
		if s.Permits(t, target) == nil {
			return t, nil
		}
	}
	return UnknownTrigger, errs.NewTransitionIsNotAllowedErrorWithCause(
		s.String(), "SetStatus", fmt.Errorf("no transition from %s to %s", s, target))
}
