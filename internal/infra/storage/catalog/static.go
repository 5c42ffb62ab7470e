package catalog

import (
	"context"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

// Названия удобств, по которым строится чек-лист в карточке комнаты
const (
	AmenityWiFi       = "Wi-Fi gratuito"
	AmenitySafe       = "Caja fuerte"
	AmenityCableTV    = "TV por cable"
	AmenityAirCond    = "Aire acondicionado"
	AmenityMiniFridge = "Mini refrigerador"
	AmenityDesk       = "Mesa de trabajo"
	AmenitySofa       = "Sofá"
	AmenityBathrobe   = "Bata de baño"
)

// DefaultRooms встроенный каталог комнат отеля
var DefaultRooms = []domain.Room{
	{
		ID:            "sencilla",
		Name:          "Habitación Sencilla",
		NameEn:        "Single Room",
		Description:   "Perfecta para viajeros de negocios o turistas individuales. Cómoda y funcional.",
		DescriptionEn: "Perfect for business travelers or individual tourists. Comfortable and functional.",
		Occupancy:     1,
		Beds:          "1 cama individual",
		Size:          "15 m²",
		NightlyPrice:  1200,
		Amenities:     []string{AmenityWiFi, AmenitySafe, AmenityCableTV, AmenityAirCond},
		SortOrder:     1,
	},
	{
		ID:            "doble",
		Name:          "Habitación Doble",
		NameEn:        "Double Room",
		Description:   "Ideal para parejas o viajeros que buscan mayor comodidad y espacio.",
		DescriptionEn: "Ideal for couples or travelers seeking more comfort and space.",
		Occupancy:     2,
		Beds:          "1 cama matrimonial",
		Size:          "18 m²",
		NightlyPrice:  1500,
		Amenities:     []string{AmenityWiFi, AmenitySafe, AmenityCableTV, AmenityAirCond, AmenityMiniFridge},
		SortOrder:     2,
	},
	{
		ID:            "triple",
		Name:          "Habitación Familiar Triple",
		NameEn:        "Triple Family Room",
		Description:   "Espaciosa habitación familiar con capacidad para tres personas cómodamente.",
		DescriptionEn: "Spacious family room accommodating three people comfortably.",
		Occupancy:     3,
		Beds:          "1 cama matrimonial + 1 individual",
		Size:          "22 m²",
		NightlyPrice:  1800,
		Amenities:     []string{AmenityWiFi, AmenitySafe, AmenityCableTV, AmenityAirCond, AmenityMiniFridge, AmenityDesk},
		SortOrder:     3,
	},
	{
		ID:            "cuadruple",
		Name:          "Habitación Familiar Cuádruple",
		NameEn:        "Quadruple Family Room",
		Description:   "La opción perfecta para familias numerosas que buscan comodidad y privacidad.",
		DescriptionEn: "Perfect choice for large families seeking comfort and privacy.",
		Occupancy:     4,
		Beds:          "2 camas matrimoniales",
		Size:          "26 m²",
		NightlyPrice:  2200,
		Amenities:     []string{AmenityWiFi, AmenitySafe, AmenityCableTV, AmenityAirCond, AmenityMiniFridge, AmenityDesk, AmenitySofa},
		SortOrder:     4,
	},
	{
		ID:            "king",
		Name:          "Habitación King",
		NameEn:        "King Room",
		Description:   "Nuestra habitación más elegante con cama king size y amenidades premium.",
		DescriptionEn: "Our most elegant room with king size bed and premium amenities.",
		Occupancy:     2,
		Beds:          "1 cama king size",
		Size:          "24 m²",
		NightlyPrice:  2500,
		Amenities:     []string{AmenityWiFi, AmenitySafe, AmenityCableTV, AmenityAirCond, AmenityMiniFridge, AmenityDesk, AmenityBathrobe},
		SortOrder:     5,
	},
}

// StaticRepository каталог комнат, встроенный в бинарник
type StaticRepository struct {
	rooms []domain.Room
}

// NewStaticRepository создает каталог из переданных комнат
// Порядок комнат сохраняется
func NewStaticRepository(rooms []domain.Room) *StaticRepository {
	return &StaticRepository{rooms: rooms}
}

// List возвращает все комнаты каталога
func (r *StaticRepository) List(_ context.Context) ([]*domain.Room, error) {
	result := make([]*domain.Room, 0, len(r.rooms))
	for i := range r.rooms {
		result = append(result, copyRoom(&r.rooms[i]))
	}
	return result, nil
}

// GetByID возвращает комнату по идентификатору
func (r *StaticRepository) GetByID(_ context.Context, id string) (*domain.Room, error) {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			return copyRoom(&r.rooms[i]), nil
		}
	}
	return nil, ErrRoomNotFound
}

func copyRoom(room *domain.Room) *domain.Room {
	c := *room
	c.Amenities = append([]string(nil), room.Amenities...)
	return &c
}
