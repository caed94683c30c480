package order

import (
	"fmt"

	"roadside/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Its String form is the token
// stored in the database and exchanged over the API.
//
//	PorAsignar ──AssignDriver──> PorAceptar ──AcceptAssignment──> Aceptado
//	    ^                          │
//	    └──Refuse / Timeout────────┘ (Timeout may escalate to Cancelada)
//
//	Aceptado ──> Localizado ──> EnProceso ──FinishService──> Finalizado ──> Pagado
//
// Any status before Finalizado can be canceled.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	AwaitingAssignment
	AwaitingDriverAcceptance
	Accepted
	DriverLocated
	InProgress
	Completed
	Paid
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                  "Unknown",
		AwaitingAssignment:       "PorAsignar",
		AwaitingDriverAcceptance: "PorAceptar",
		Accepted:                 "Aceptado",
		DriverLocated:            "Localizado",
		InProgress:               "EnProceso",
		Completed:                "Finalizado",
		Paid:                     "Pagado",
		Canceled:                 "Cancelada",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		AwaitingAssignment, AwaitingDriverAcceptance, Accepted, DriverLocated,
		InProgress, Completed, Paid, Canceled,
	}
}

// StatusFromString parses a status token such as "PorAceptar".
func StatusFromString(s string) (Status, error) {
	for status, token := range getStatusStrings() {
		if status != Unknown && token == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsClosed reports whether the order accepts no further trigger.
func (s Status) IsClosed() bool {
	return s == Paid || s == Canceled
}

// IsCancelable reports whether Cancel is permitted.
func (s Status) IsCancelable() bool {
	return s >= AwaitingAssignment && s <= InProgress
}
