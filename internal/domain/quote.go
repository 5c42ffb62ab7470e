package domain

// Quote is the price of the current wizard state. It is derived, never stored.
type Quote struct {
	Nights       int
	NightlyPrice int64
	Rooms        int
	BaseTotal    int64
	ExtrasTotal  int64
	GrandTotal   int64
	// SelectedExtras in catalog order
	SelectedExtras []Extra
}

// ComputeQuote prices the state:
// base = nightly price * nights * rooms, extras are a flat price per booking.
func ComputeQuote(state FlowState) Quote {
	room := ResolveRoomRef(&state.Room)
	nights := Nights(state.Dates)

	rooms := min(max(state.Party.Rooms, MinRooms), MaxRooms)

	q := Quote{
		Nights:       nights,
		NightlyPrice: room.NightlyPrice,
		Rooms:        rooms,
		BaseTotal:    room.NightlyPrice * int64(nights) * int64(rooms),
	}

	for _, extra := range ExtrasCatalog {
		if state.Extras[extra.ID] {
			q.ExtrasTotal += extra.Price
			q.SelectedExtras = append(q.SelectedExtras, extra)
		}
	}

	q.GrandTotal = q.BaseTotal + q.ExtrasTotal
	return q
}

// Nights counts the nights of the range, rounding a partial day up.
// An incomplete range counts as one night (display default) and the result is never below MinNights.
func Nights(r DateRange) int {
	if !r.IsComplete() {
		return MinNights
	}

	d := r.CheckOut.Sub(*r.CheckIn)
	if d <= 0 {
		return MinNights
	}

	nights := int((d + day - 1) / day)
	if nights < MinNights {
		return MinNights
	}
	return nights
}
