package domain

import (
	"fmt"
	"strings"
	"time"
)

// Reduce applies one action to the wizard state.
// On error the input state is returned unchanged. today is used by the date picker rules.
func Reduce(state FlowState, action Action, today time.Time) (FlowState, Outcome, error) {
	if !state.Open {
		return state, OutcomeNone, ErrFlowClosed
	}
	if state.Submitted {
		return state, OutcomeNone, ErrSubmissionPending
	}

	next := state
	next.Extras = state.Extras.Clone()

	var err error
	outcome := OutcomeNone

	switch action.Type {
	case ActionSetCheckIn, ActionSetCheckOut,
		ActionIncAdults, ActionDecAdults,
		ActionIncChildren, ActionDecChildren,
		ActionIncRooms, ActionDecRooms:
		if state.Step != StepDates {
			return state, OutcomeNone, ErrActionNotAvailable
		}
		err = reduceDatesStep(&next, action, DateOnly(today))

	case ActionToggleExtra:
		if state.Step != StepExtras {
			return state, OutcomeNone, ErrActionNotAvailable
		}
		if _, ok := FindExtra(action.Extra); !ok {
			return state, OutcomeNone, fmt.Errorf("%w: %q", ErrUnknownExtra, action.Extra)
		}
		next.Extras[action.Extra] = !next.Extras[action.Extra]

	case ActionSetGuestField:
		if state.Step != StepGuestInfo {
			return state, OutcomeNone, ErrActionNotAvailable
		}
		err = setGuestField(&next.Guest, action.Field, action.Value)

	case ActionNext:
		switch state.Step {
		case StepDates:
			if !state.Dates.IsComplete() {
				return state, OutcomeNone, ErrDatesRequired
			}
			next.Step = StepExtras
		case StepExtras:
			next.Step = StepGuestInfo
		default:
			return state, OutcomeNone, ErrInvalidTransition
		}

	case ActionBack:
		switch state.Step {
		case StepExtras:
			next.Step = StepDates
		case StepGuestInfo:
			next.Step = StepExtras
		default:
			return state, OutcomeNone, ErrInvalidTransition
		}

	case ActionSubmit:
		if state.Step != StepGuestInfo {
			return state, OutcomeNone, ErrInvalidTransition
		}
		if !state.Dates.IsComplete() || state.Guest.FirstName == "" || state.Guest.Email == "" {
			return state, OutcomeNone, ErrGuestInfoRequired
		}
		next.Submitted = true
		outcome = OutcomeSubmitted

	default:
		return state, OutcomeNone, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}

	if err != nil {
		return state, OutcomeNone, err
	}
	return next, outcome, nil
}

// reduceDatesStep handles the date picker and the party counters of the first step
func reduceDatesStep(s *FlowState, action Action, today time.Time) error {
	switch action.Type {
	case ActionSetCheckIn:
		checkIn := DateOnly(action.Date)
		if checkIn.Before(today) {
			return ErrDateInPast
		}
		s.Dates.CheckIn = &checkIn
		// the picker only offers check-out days after check-in
		if s.Dates.CheckOut != nil && !s.Dates.CheckOut.After(checkIn) {
			s.Dates.CheckOut = nil
		}

	case ActionSetCheckOut:
		checkOut := DateOnly(action.Date)
		lowerBound := today
		if s.Dates.CheckIn != nil {
			lowerBound = *s.Dates.CheckIn
		}
		if !checkOut.After(lowerBound) {
			return ErrInvalidCheckOut
		}
		s.Dates.CheckOut = &checkOut

	case ActionIncAdults:
		s.Party.Adults = min(MaxAdults, s.Party.Adults+1)
	case ActionDecAdults:
		s.Party.Adults = max(MinAdults, s.Party.Adults-1)
	case ActionIncChildren:
		s.Party.Children = min(MaxChildren, s.Party.Children+1)
	case ActionDecChildren:
		s.Party.Children = max(MinChildren, s.Party.Children-1)
	case ActionIncRooms:
		s.Party.Rooms = min(MaxRooms, s.Party.Rooms+1)
	case ActionDecRooms:
		s.Party.Rooms = max(MinRooms, s.Party.Rooms-1)
	}
	return nil
}

func setGuestField(g *GuestInfo, field GuestField, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case GuestFirstName:
		g.FirstName = value
	case GuestLastName:
		g.LastName = value
	case GuestEmail:
		g.Email = value
	case GuestPhone:
		g.Phone = value
	case GuestCountry:
		c := Country(value)
		if !c.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownCountry, value)
		}
		g.Country = c
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGuestField, field)
	}
	return nil
}
