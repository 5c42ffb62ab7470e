package models

import "github.com/m04kA/HotelPrincipal-Site/internal/domain"

// RoomResponse карточка комнаты в списке
type RoomResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameEn        string   `json:"nameEn,omitempty"`
	Description   string   `json:"description"`
	DescriptionEn string   `json:"descriptionEn,omitempty"`
	Occupancy     int      `json:"occupancy"`
	Beds          string   `json:"beds"`
	Size          string   `json:"size"`
	NightlyPrice  int64    `json:"nightlyPrice"`
	Amenities     []string `json:"amenities"`
}

// AmenityItem строка чек-листа удобств
type AmenityItem struct {
	Name     string `json:"name"`
	Included bool   `json:"included"`
}

// Policy блок правил проживания
type Policy struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// RoomDetailsResponse подробная карточка комнаты
type RoomDetailsResponse struct {
	RoomResponse
	PriceLabel   string        `json:"priceLabel"` // "$1,500"
	AmenityList  []AmenityItem `json:"amenityList"`
	Policies     []Policy      `json:"policies"`
	ContactLink  string        `json:"contactLink"`
	BookingPerks []string      `json:"bookingPerks"`
}

// ExtraResponse платная дополнительная услуга
type ExtraResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// FromDomainRoom конвертирует domain модель в response
func FromDomainRoom(room *domain.Room) *RoomResponse {
	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &RoomResponse{
		ID:            room.ID,
		Name:          room.Name,
		NameEn:        room.NameEn,
		Description:   room.Description,
		DescriptionEn: room.DescriptionEn,
		Occupancy:     room.Occupancy,
		Beds:          room.Beds,
		Size:          room.Size,
		NightlyPrice:  room.NightlyPrice,
		Amenities:     amenities,
	}
}

// FromDomainExtras конвертирует каталог дополнительных услуг
func FromDomainExtras(extras []domain.Extra) []ExtraResponse {
	result := make([]ExtraResponse, 0, len(extras))
	for _, e := range extras {
		result = append(result, ExtraResponse{ID: string(e.ID), Name: e.Name, Price: e.Price})
	}
	return result
}
