package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func dayOffset(n int) time.Time {
	return DateOnly(today).AddDate(0, 0, n)
}

func mustReduce(t *testing.T, s FlowState, a Action) FlowState {
	t.Helper()
	next, _, err := Reduce(s, a, today)
	require.NoError(t, err)
	return next
}

// stateAtGuestInfo opens a flow and walks it to the guest info step with dates set
func stateAtGuestInfo(t *testing.T) FlowState {
	t.Helper()
	s := NewFlowState("flow-1", &RoomRef{ID: "doble", Name: "Habitación Doble", NightlyPrice: 1500})
	s = mustReduce(t, s, SetCheckIn(dayOffset(0)))
	s = mustReduce(t, s, SetCheckOut(dayOffset(3)))
	s = mustReduce(t, s, Next())
	s = mustReduce(t, s, Next())
	return s
}

func TestNewFlowState_Defaults(t *testing.T) {
	s := NewFlowState("flow-1", nil)

	assert.True(t, s.Open)
	assert.Equal(t, StepDates, s.Step)
	assert.Equal(t, DefaultRoomName, s.Room.Name)
	assert.Equal(t, DefaultNightlyPrice, s.Room.NightlyPrice)
	assert.Equal(t, PartySelection{Adults: 2, Children: 0, Rooms: 1}, s.Party)
	assert.Len(t, s.Extras, len(ExtrasCatalog))
	assert.False(t, s.Submitted)
}

func TestReduce_NextRequiresBothDates(t *testing.T) {
	s := NewFlowState("flow-1", nil)

	cases := map[string]FlowState{
		"no dates":      s,
		"only checkIn":  mustReduce(t, s, SetCheckIn(dayOffset(1))),
		"only checkOut": mustReduce(t, s, SetCheckOut(dayOffset(2))),
	}

	for name, state := range cases {
		t.Run(name, func(t *testing.T) {
			next, outcome, err := Reduce(state, Next(), today)

			assert.ErrorIs(t, err, ErrDatesRequired)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, OutcomeNone, outcome)
			assert.Equal(t, state, next)
			assert.Equal(t, StepDates, next.Step)
		})
	}
}

func TestReduce_ForwardAndBackKeepData(t *testing.T) {
	s := stateAtGuestInfo(t)
	s = mustReduce(t, s, SetGuestField(GuestFirstName, "Ana"))

	s = mustReduce(t, s, Back())
	assert.Equal(t, StepExtras, s.Step)
	s = mustReduce(t, s, ToggleExtra(ExtraBreakfast))

	s = mustReduce(t, s, Back())
	assert.Equal(t, StepDates, s.Step)
	require.True(t, s.Dates.IsComplete())
	assert.Equal(t, dayOffset(0), *s.Dates.CheckIn)
	assert.Equal(t, dayOffset(3), *s.Dates.CheckOut)

	s = mustReduce(t, s, Next())
	s = mustReduce(t, s, Next())
	assert.Equal(t, StepGuestInfo, s.Step)
	assert.Equal(t, "Ana", s.Guest.FirstName)
	assert.True(t, s.Extras[ExtraBreakfast])
}

func TestReduce_InvalidTransitions(t *testing.T) {
	s := NewFlowState("flow-1", nil)
	_, _, err := Reduce(s, Back(), today)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	g := stateAtGuestInfo(t)
	_, _, err = Reduce(g, Next(), today)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, _, err = Reduce(s, Submit(), today)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReduce_ActionsBoundToStep(t *testing.T) {
	s := NewFlowState("flow-1", nil)

	_, _, err := Reduce(s, ToggleExtra(ExtraAirport), today)
	assert.ErrorIs(t, err, ErrActionNotAvailable)

	_, _, err = Reduce(s, SetGuestField(GuestEmail, "a@b.mx"), today)
	assert.ErrorIs(t, err, ErrActionNotAvailable)

	g := stateAtGuestInfo(t)
	_, _, err = Reduce(g, Action{Type: ActionIncAdults}, today)
	assert.ErrorIs(t, err, ErrActionNotAvailable)
}

func TestReduce_PartyFloors(t *testing.T) {
	s := NewFlowState("flow-1", nil)
	s.Party = PartySelection{Adults: 1, Children: 0, Rooms: 1}

	for _, a := range []ActionType{ActionDecAdults, ActionDecChildren, ActionDecRooms} {
		next := mustReduce(t, s, Action{Type: a})
		assert.Equal(t, s.Party, next.Party, a)
	}

	s = mustReduce(t, s, Action{Type: ActionIncAdults})
	s = mustReduce(t, s, Action{Type: ActionIncChildren})
	s = mustReduce(t, s, Action{Type: ActionIncRooms})
	assert.Equal(t, PartySelection{Adults: 2, Children: 1, Rooms: 2}, s.Party)

	s = mustReduce(t, s, Action{Type: ActionDecAdults})
	s = mustReduce(t, s, Action{Type: ActionDecChildren})
	s = mustReduce(t, s, Action{Type: ActionDecRooms})
	assert.Equal(t, PartySelection{Adults: 1, Children: 0, Rooms: 1}, s.Party)
}

func TestReduce_PartyCeilings(t *testing.T) {
	s := NewFlowState("flow-1", nil)
	s.Party = PartySelection{Adults: MaxAdults, Children: MaxChildren, Rooms: MaxRooms}

	for _, a := range []ActionType{ActionIncAdults, ActionIncChildren, ActionIncRooms} {
		next := mustReduce(t, s, Action{Type: a})
		assert.Equal(t, s.Party, next.Party, a)
	}
}

func TestReduce_DatePickerRules(t *testing.T) {
	s := NewFlowState("flow-1", nil)

	_, _, err := Reduce(s, SetCheckIn(dayOffset(-1)), today)
	assert.ErrorIs(t, err, ErrDateInPast)

	// today is selectable, the time of day is dropped
	s = mustReduce(t, s, SetCheckIn(today))
	assert.Equal(t, dayOffset(0), *s.Dates.CheckIn)

	_, _, err = Reduce(s, SetCheckOut(dayOffset(0)), today)
	assert.ErrorIs(t, err, ErrInvalidCheckOut)

	s = mustReduce(t, s, SetCheckOut(dayOffset(2)))

	// moving check-in onto the check-out clears the check-out
	moved := mustReduce(t, s, SetCheckIn(dayOffset(2)))
	assert.Nil(t, moved.Dates.CheckOut)

	// moving check-in earlier keeps it
	kept := mustReduce(t, s, SetCheckIn(dayOffset(1)))
	require.NotNil(t, kept.Dates.CheckOut)
	assert.Equal(t, dayOffset(2), *kept.Dates.CheckOut)
}

func TestReduce_CheckOutWithoutCheckInMustBeAfterToday(t *testing.T) {
	s := NewFlowState("flow-1", nil)

	_, _, err := Reduce(s, SetCheckOut(today), today)
	assert.ErrorIs(t, err, ErrInvalidCheckOut)

	s = mustReduce(t, s, SetCheckOut(dayOffset(1)))
	assert.Equal(t, dayOffset(1), *s.Dates.CheckOut)
}

func TestReduce_ToggleExtraIsInvolution(t *testing.T) {
	s := stateAtGuestInfo(t)
	s = mustReduce(t, s, Back())

	for _, extra := range ExtrasCatalog {
		once := mustReduce(t, s, ToggleExtra(extra.ID))
		assert.NotEqual(t, s.Extras, once.Extras)

		twice := mustReduce(t, once, ToggleExtra(extra.ID))
		assert.Equal(t, s.Extras, twice.Extras, extra.ID)
	}
}

func TestReduce_ToggleDoesNotMutateInput(t *testing.T) {
	s := stateAtGuestInfo(t)
	s = mustReduce(t, s, Back())

	_ = mustReduce(t, s, ToggleExtra(ExtraTours))
	assert.False(t, s.Extras[ExtraTours])
}

func TestReduce_UnknownExtraAndField(t *testing.T) {
	s := stateAtGuestInfo(t)
	extras := mustReduce(t, s, Back())

	_, _, err := Reduce(extras, ToggleExtra("spa"), today)
	assert.ErrorIs(t, err, ErrUnknownExtra)

	_, _, err = Reduce(s, SetGuestField("nickname", "x"), today)
	assert.ErrorIs(t, err, ErrUnknownGuestField)

	_, _, err = Reduce(s, SetGuestField(GuestCountry, "fr"), today)
	assert.ErrorIs(t, err, ErrUnknownCountry)

	_, _, err = Reduce(s, Action{Type: "dance"}, today)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestReduce_SubmitRequiresFirstNameAndEmail(t *testing.T) {
	base := stateAtGuestInfo(t)

	cases := []struct {
		name      string
		firstName string
		email     string
	}{
		{name: "both empty"},
		{name: "missing email", firstName: "Ana"},
		{name: "missing first name", email: "ana@example.mx"},
		{name: "blank first name", firstName: "   ", email: "ana@example.mx"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustReduce(t, base, SetGuestField(GuestFirstName, tc.firstName))
			s = mustReduce(t, s, SetGuestField(GuestEmail, tc.email))

			next, outcome, err := Reduce(s, Submit(), today)

			assert.ErrorIs(t, err, ErrGuestInfoRequired)
			assert.Equal(t, OutcomeNone, outcome)
			assert.Equal(t, s, next)
			assert.Equal(t, StepGuestInfo, next.Step)
			assert.True(t, next.Open)
		})
	}
}

func TestReduce_SubmitSuccess(t *testing.T) {
	s := stateAtGuestInfo(t)
	s = mustReduce(t, s, SetGuestField(GuestFirstName, "Ana"))
	s = mustReduce(t, s, SetGuestField(GuestEmail, "ana@example.mx"))
	s = mustReduce(t, s, SetGuestField(GuestCountry, "mx"))

	next, outcome, err := Reduce(s, Submit(), today)
	require.NoError(t, err)

	assert.Equal(t, OutcomeSubmitted, outcome)
	assert.True(t, next.Submitted)
	assert.Equal(t, CountryMexico, next.Guest.Country)

	_, _, err = Reduce(next, Back(), today)
	assert.ErrorIs(t, err, ErrSubmissionPending)
}

func TestReduce_ClosedFlow(t *testing.T) {
	_, _, err := Reduce(ClosedState(), Next(), today)
	assert.ErrorIs(t, err, ErrFlowClosed)
	assert.True(t, IsValidationError(err))
}

func TestClosedState_HasNoResidualData(t *testing.T) {
	closed := ClosedState()

	assert.False(t, closed.Open)
	assert.Empty(t, closed.ID)
	assert.Equal(t, StepDates, closed.Step)
	assert.False(t, closed.Dates.IsComplete())
	assert.Equal(t, GuestInfo{}, closed.Guest)
	assert.Equal(t, NewExtrasSelection(), closed.Extras)
}
