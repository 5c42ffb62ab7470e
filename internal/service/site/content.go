package site

import "github.com/m04kA/HotelPrincipal-Site/internal/service/site/models"

const (
	hotelName = "Hotel Principal"
	tagline   = "Centro Histórico • Ciudad de México"

	// visibleAmenities количество удобств на карточке комнаты
	visibleAmenities = 3

	filmInquiryMessage = "Hola, me interesa información sobre películas filmadas en Hotel Principal"
)

var navigation = []models.NavItem{
	{Name: "Inicio", NameEn: "Home", Href: "#home"},
	{Name: "Habitaciones", NameEn: "Rooms", Href: "#rooms"},
	{Name: "Historia", NameEn: "History", Href: "#history"},
	{Name: "Servicios", NameEn: "Services", Href: "#services"},
	{Name: "Ubicación", NameEn: "Location", Href: "#location"},
	{Name: "Contacto", NameEn: "Contact", Href: "#contact"},
}

var hero = models.Hero{
	Badges:      []string{"Centro Histórico", "Recepción 24h", "Desayuno en terraza"},
	Title:       "Tu lugar en el",
	Highlight:   "Centro Histórico",
	Subtitle:    "Vive la historia de México desde 1906. Ubicación privilegiada, elegancia colonial y la mejor tarifa garantizada.",
	TrustPoints: []string{"Mejor tarifa garantizada", "Wi-Fi gratuito", "Cancelación flexible"},
}

var timeline = []models.TimelineEvent{
	{
		Year:        "1906",
		Title:       "Inauguración",
		Description: "Apertura del Hotel Principal con arquitectura de acero y cantera, símbolo de modernidad en el Centro Histórico.",
	},
	{
		Year:        "1920s",
		Title:       "Época Dorada",
		Description: "El hotel se convierte en punto de encuentro de intelectuales, artistas y personalidades de la época.",
	},
	{
		Year:        "2000",
		Title:       "Amores Perros",
		Description: "El hotel aparece en la aclamada película de Alejandro González Iñárritu, ganando reconocimiento internacional.",
	},
	{
		Year:        "2024",
		Title:       "Renovación Moderna",
		Description: "Mantiene su esencia histórica mientras incorpora amenidades modernas para huéspedes contemporáneos.",
	},
}

var historyCards = []models.HistoryCard{
	{
		Title:       "Arquitectura Colonial",
		Description: "Construido con estructura de acero y fachada de cantera, el Hotel Principal representa la arquitectura de principios del siglo XX en México, combinando técnicas modernas con materiales tradicionales.",
		Tags:        []string{"Estructura de acero", "Fachada de cantera", "Balcones ornamentados"},
	},
	{
		Title:       "Huéspedes Ilustres",
		Description: "A lo largo de su historia, el hotel ha recibido a artistas, escritores, políticos y personalidades del mundo del cine y la cultura mexicana e internacional.",
		Tags:        []string{"Artistas", "Escritores", "Cineastas"},
	},
	{
		Title:       "Cine Mexicano",
		Description: "El hotel aparece en \"Amores Perros\" (2000), la película de Alejandro González Iñárritu que puso al cine mexicano en el mapa internacional y ganó múltiples reconocimientos.",
	},
}

var services = []models.ServiceItem{
	{
		Title:       "Recepción 24 horas",
		TitleEn:     "24-hour Reception",
		Description: "Atención personalizada las 24 horas del día, todos los días del año. Nuestro equipo está disponible para asistirte en cualquier momento.",
		Features:    []string{"Check-in/out flexible", "Información turística", "Reservas de tours", "Servicio de taxi"},
		Highlight:   true,
	},
	{
		Title:       "Desayuno en Terraza",
		TitleEn:     "Terrace Breakfast",
		Description: "Inicia tu día con un delicioso desayuno continental en nuestra hermosa terraza con vista al Centro Histórico.",
		Features:    []string{"Horario: 7:00 - 11:00 AM", "Vista panorámica", "Productos frescos", "Café de especialidad"},
		Highlight:   true,
	},
	{
		Title:       "Gimnasio",
		TitleEn:     "Fitness Center",
		Description: "Mantente en forma durante tu estancia con nuestro gimnasio equipado con aparatos modernos.",
		Features:    []string{"Horario: 6:00 - 22:00", "Equipos cardiovasculares", "Pesas libres", "Toallas incluidas"},
	},
	{
		Title:       "Elevadores",
		TitleEn:     "Elevators",
		Description: "Acceso cómodo a todas las plantas del hotel con elevadores modernos y seguros.",
		Features:    []string{"2 elevadores", "Acceso a discapacitados", "Mantenimiento diario", "Iluminación LED"},
	},
	{
		Title:       "Business Center",
		TitleEn:     "Business Center",
		Description: "Espacio equipado para viajeros de negocios con todas las facilidades necesarias.",
		Features:    []string{"Computadoras e impresora", "Wi-Fi alta velocidad", "Área de reuniones", "Servicio de fax"},
	},
	{
		Title:       "Servicios Adicionales",
		TitleEn:     "Additional Services",
		Description: "Una amplia gama de servicios para hacer tu estancia más cómoda y placentera.",
		Features:    []string{"Servicio de lavandería", "Guardaequipaje", "Tours guiados", "Transporte al aeropuerto"},
	},
}

var serviceHours = []models.ServiceHours{
	{Name: "Recepción", Hours: "24 horas", Note: "Siempre disponible"},
	{Name: "Desayuno", Hours: "7:00 - 11:00 AM", Note: "Todos los días"},
	{Name: "Gimnasio", Hours: "6:00 - 22:00", Note: "Acceso con tarjeta"},
}
