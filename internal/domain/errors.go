package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the single error kind of the booking flow: the action is refused,
// the state stays unchanged
var ErrValidation = errors.New("booking flow: validation failed")

var (
	ErrFlowClosed         = fmt.Errorf("%w: flow is not open", ErrValidation)
	ErrSubmissionPending  = fmt.Errorf("%w: booking already submitted", ErrValidation)
	ErrInvalidTransition  = fmt.Errorf("%w: transition not allowed from this step", ErrValidation)
	ErrDatesRequired      = fmt.Errorf("%w: check-in and check-out are required", ErrValidation)
	ErrGuestInfoRequired  = fmt.Errorf("%w: missing required guest information", ErrValidation)
	ErrDateInPast         = fmt.Errorf("%w: date is in the past", ErrValidation)
	ErrInvalidCheckOut    = fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	ErrUnknownExtra       = fmt.Errorf("%w: unknown extra", ErrValidation)
	ErrUnknownGuestField  = fmt.Errorf("%w: unknown guest field", ErrValidation)
	ErrUnknownCountry     = fmt.Errorf("%w: unknown country", ErrValidation)
	ErrUnknownAction      = fmt.Errorf("%w: unknown action", ErrValidation)
	ErrActionNotAvailable = fmt.Errorf("%w: action is not available on this step", ErrValidation)
)

// IsValidationError returns true if err is a refused flow action
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
