package domain

import "time"

// Step is the current page of the booking wizard
type Step int

const (
	StepDates     Step = 1
	StepExtras    Step = 2
	StepGuestInfo Step = 3
)

// String returns a stable name used in logs and metrics
func (s Step) String() string {
	switch s {
	case StepDates:
		return "dates"
	case StepExtras:
		return "extras"
	case StepGuestInfo:
		return "guest_info"
	default:
		return "unknown"
	}
}

// Title returns the dialog header of the step
func (s Step) Title() string {
	switch s {
	case StepDates:
		return "Selecciona tus fechas"
	case StepExtras:
		return "Extras y servicios"
	case StepGuestInfo:
		return "Información del huésped"
	default:
		return ""
	}
}

// DateRange holds the selected stay. Dates are calendar days at midnight UTC.
// When both are set CheckOut is after CheckIn.
type DateRange struct {
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
}

// IsComplete returns true if both dates are selected
func (r DateRange) IsComplete() bool {
	return r.CheckIn != nil && r.CheckOut != nil
}

// PartySelection is the number of guests and rooms
type PartySelection struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Rooms    int `json:"rooms"`
}

// ExtrasSelection maps every catalog extra to its selected flag
type ExtrasSelection map[ExtraID]bool

// NewExtrasSelection returns a selection with every extra unselected
func NewExtrasSelection() ExtrasSelection {
	sel := make(ExtrasSelection, len(ExtrasCatalog))
	for _, e := range ExtrasCatalog {
		sel[e.ID] = false
	}
	return sel
}

// Clone copies the selection so reducers never share a map between states
func (s ExtrasSelection) Clone() ExtrasSelection {
	out := make(ExtrasSelection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Country is one of the countries offered in the guest form
type Country string

const (
	CountryMexico       Country = "mx"
	CountryUnitedStates Country = "us"
	CountryCanada       Country = "ca"
	CountrySpain        Country = "es"
	CountryOther        Country = "other"
)

// CountryOption is a select entry of the guest form
type CountryOption struct {
	Code  Country
	Label string
}

// Countries lists the select options in display order
var Countries = []CountryOption{
	{Code: CountryMexico, Label: "México"},
	{Code: CountryUnitedStates, Label: "Estados Unidos"},
	{Code: CountryCanada, Label: "Canadá"},
	{Code: CountrySpain, Label: "España"},
	{Code: CountryOther, Label: "Otro"},
}

// IsValid returns true for a known country code. Empty means "not selected".
func (c Country) IsValid() bool {
	if c == "" {
		return true
	}
	for _, opt := range Countries {
		if opt.Code == c {
			return true
		}
	}
	return false
}

// GuestInfo is the contact data entered on the last step
type GuestInfo struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Country   Country `json:"country"`
}

// GuestField names an editable field of GuestInfo
type GuestField string

const (
	GuestFirstName GuestField = "firstName"
	GuestLastName  GuestField = "lastName"
	GuestEmail     GuestField = "email"
	GuestPhone     GuestField = "phone"
	GuestCountry   GuestField = "country"
)

// FlowState is the whole booking wizard of one visitor
type FlowState struct {
	// ID identifies one opened flow; a new ID is assigned on every open
	ID        string          `json:"id"`
	Open      bool            `json:"open"`
	Step      Step            `json:"step"`
	Room      RoomRef         `json:"room"`
	Dates     DateRange       `json:"dates"`
	Party     PartySelection  `json:"party"`
	Extras    ExtrasSelection `json:"extras"`
	Guest     GuestInfo       `json:"guest"`
	Submitted bool            `json:"submitted"`
}

// NewFlowState returns the initial state of a freshly opened flow
func NewFlowState(id string, room *RoomRef) FlowState {
	return FlowState{
		ID:   id,
		Open: true,
		Step: StepDates,
		Room: ResolveRoomRef(room),
		Party: PartySelection{
			Adults:   DefaultAdults,
			Children: DefaultChildren,
			Rooms:    DefaultRooms,
		},
		Extras: NewExtrasSelection(),
	}
}

// ClosedState returns the state of a closed flow: initial values, nothing retained
func ClosedState() FlowState {
	s := NewFlowState("", nil)
	s.Open = false
	return s
}

// CanContinue returns true if Next is allowed from the current step
func (s FlowState) CanContinue() bool {
	switch s.Step {
	case StepDates:
		return s.Dates.IsComplete()
	case StepExtras:
		return true
	default:
		return false
	}
}

// DateOnly truncates a time to its calendar day at midnight UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
