package domain

import "time"

// ActionType is a discrete user action on the booking wizard
type ActionType string

const (
	ActionSetCheckIn    ActionType = "set_check_in"
	ActionSetCheckOut   ActionType = "set_check_out"
	ActionIncAdults     ActionType = "inc_adults"
	ActionDecAdults     ActionType = "dec_adults"
	ActionIncChildren   ActionType = "inc_children"
	ActionDecChildren   ActionType = "dec_children"
	ActionIncRooms      ActionType = "inc_rooms"
	ActionDecRooms      ActionType = "dec_rooms"
	ActionToggleExtra   ActionType = "toggle_extra"
	ActionSetGuestField ActionType = "set_guest_field"
	ActionNext          ActionType = "next"
	ActionBack          ActionType = "back"
	ActionSubmit        ActionType = "submit"
)

// Action carries the payload of an ActionType. Only the fields used by the type are read.
type Action struct {
	Type  ActionType
	Date  time.Time
	Extra ExtraID
	Field GuestField
	Value string
}

// Outcome reports side effects the host has to perform after a successful reduce
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeSubmitted: confirm to the guest and schedule the deferred reset
	OutcomeSubmitted
)

func SetCheckIn(date time.Time) Action { return Action{Type: ActionSetCheckIn, Date: date} }
func SetCheckOut(date time.Time) Action { return Action{Type: ActionSetCheckOut, Date: date} }
func ToggleExtra(id ExtraID) Action { return Action{Type: ActionToggleExtra, Extra: id} }

func SetGuestField(field GuestField, value string) Action {
	return Action{Type: ActionSetGuestField, Field: field, Value: value}
}

func Next() Action { return Action{Type: ActionNext} }
func Back() Action { return Action{Type: ActionBack} }
func Submit() Action { return Action{Type: ActionSubmit} }
