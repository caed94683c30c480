package errs

import (
	"errors"
	"fmt"
)

var ErrTransitionIsNotAllowed = errors.New("transition is not allowed")

type TransitionIsNotAllowedError struct {
	From  string
	Event string
	Cause error
}

func NewTransitionIsNotAllowedError(from, event string) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{From: from, Event: event}
}

func NewTransitionIsNotAllowedErrorWithCause(from, event string, cause error) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{From: from, Event: event, Cause: cause}
}

func (e *TransitionIsNotAllowedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s from %s", ErrTransitionIsNotAllowed, e.Event, e.From), e.Cause)
}

func (e *TransitionIsNotAllowedError) Unwrap() error {
	return ErrTransitionIsNotAllowed
}
