package domain

// Room represents a room type from the hotel catalog
type Room struct {
	ID            string
	Name          string
	NameEn        string
	Description   string
	DescriptionEn string
	Occupancy     int
	Beds          string
	Size          string
	NightlyPrice  int64
	Amenities     []string
	SortOrder     int
}

// Ref returns the reference passed to the booking flow
func (r *Room) Ref() RoomRef {
	return RoomRef{ID: r.ID, Name: r.Name, NightlyPrice: r.NightlyPrice}
}

// HasAmenity returns true if the room lists the amenity
func (r *Room) HasAmenity(name string) bool {
	for _, a := range r.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

// RoomRef is the read-only room descriptor the booking flow is opened with
type RoomRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NightlyPrice int64  `json:"nightlyPrice"`
}

// ResolveRoomRef fills the defaults for a missing room or missing fields
func ResolveRoomRef(ref *RoomRef) RoomRef {
	if ref == nil {
		return RoomRef{Name: DefaultRoomName, NightlyPrice: DefaultNightlyPrice}
	}

	resolved := *ref
	if resolved.Name == "" {
		resolved.Name = DefaultRoomName
	}
	if resolved.NightlyPrice <= 0 {
		resolved.NightlyPrice = DefaultNightlyPrice
	}
	return resolved
}

// ExtraID identifies an optional paid service of the booking
type ExtraID string

const (
	ExtraBreakfast    ExtraID = "breakfast"
	ExtraLateCheckout ExtraID = "lateCheckout"
	ExtraAirport      ExtraID = "airport"
	ExtraTours        ExtraID = "tours"
)

// Extra is a fixed catalog entry, not editable by the guest
type Extra struct {
	ID    ExtraID
	Name  string
	Price int64
}

// ExtrasCatalog lists the extras in display order
var ExtrasCatalog = []Extra{
	{ID: ExtraBreakfast, Name: "Desayuno en terraza", Price: 250},
	{ID: ExtraLateCheckout, Name: "Late checkout (2 PM)", Price: 200},
	{ID: ExtraAirport, Name: "Transporte aeropuerto", Price: 450},
	{ID: ExtraTours, Name: "Tour Centro Histórico", Price: 350},
}

// FindExtra looks up an extra in the catalog
func FindExtra(id ExtraID) (Extra, bool) {
	for _, e := range ExtrasCatalog {
		if e.ID == id {
			return e, true
		}
	}
	return Extra{}, false
}
