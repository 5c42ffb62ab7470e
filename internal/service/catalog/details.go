package catalog

import (
	"fmt"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	catalogRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/catalog"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/catalog/models"
)

// Удобства, которые есть во всех комнатах отеля
var standardAmenities = []string{
	"Wi-Fi gratuito de alta velocidad",
	"Aire acondicionado",
	"TV por cable HD",
	"Caja fuerte digital",
	"Baño privado con agua caliente 24h",
	"Servicio de limpieza diario",
	"Recepción 24 horas",
}

// Удобства, зависящие от типа комнаты: название в чек-листе -> название в каталоге
var optionalAmenities = []struct {
	label   string
	amenity string
}{
	{label: "Mini refrigerador", amenity: catalogRepo.AmenityMiniFridge},
	{label: "Mesa de trabajo", amenity: catalogRepo.AmenityDesk},
	{label: "Sofá adicional", amenity: catalogRepo.AmenitySofa},
	{label: "Bata de baño", amenity: catalogRepo.AmenityBathrobe},
}

// Удобства, которых нет ни в одной комнате
var unavailableAmenities = []string{
	"Servicio a la habitación",
	"Balcón privado",
}

var bookingPerks = []string{
	"Mejor tarifa garantizada",
	"Cancelación gratuita",
	"Confirmación inmediata",
	"Sin cargos ocultos",
}

func amenityChecklist(room *domain.Room) []models.AmenityItem {
	items := make([]models.AmenityItem, 0, len(standardAmenities)+len(optionalAmenities)+len(unavailableAmenities))
	for _, name := range standardAmenities {
		items = append(items, models.AmenityItem{Name: name, Included: true})
	}
	for _, opt := range optionalAmenities {
		items = append(items, models.AmenityItem{Name: opt.label, Included: room.HasAmenity(opt.amenity)})
	}
	for _, name := range unavailableAmenities {
		items = append(items, models.AmenityItem{Name: name})
	}
	return items
}

func roomPolicies(room *domain.Room) []models.Policy {
	return []models.Policy{
		{
			Title:   "Check-in / Check-out",
			Details: []string{"Check-in: 15:00", "Check-out: 12:00", "Late check-out disponible (costo adicional)"},
		},
		{
			Title: "Cancelación",
			Details: []string{
				"Cancelación gratuita hasta 24h antes",
				"Cancelaciones tardías: 1 noche de penalización",
				"No-show: cargo total de la reserva",
			},
		},
		{
			Title: "Política de huéspedes",
			Details: []string{
				fmt.Sprintf("Máximo %d huéspedes por habitación", room.Occupancy),
				"Identificación oficial requerida",
				"Depósito de garantía: $500 MXN",
			},
		},
	}
}
