package site

import (
	"context"
	"fmt"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/site/models"
)

// Service собирает содержимое главной страницы
type Service struct {
	roomRepo  RoomRepository
	links     ContactLinks
	formatter PriceFormatter
	logger    Logger
}

// NewService создает новый экземпляр сервиса страницы
func NewService(
	roomRepo RoomRepository,
	links ContactLinks,
	formatter PriceFormatter,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:  roomRepo,
		links:     links,
		formatter: formatter,
		logger:    logger,
	}
}

// Page возвращает содержимое страницы: навигация, первый экран, комнаты, история и услуги
func (s *Service) Page(ctx context.Context) (*models.Page, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("Page: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: Page - list rooms: %v", ErrInternal, err)
	}

	contactLink := s.links.Link("")

	page := &models.Page{
		HotelName:   hotelName,
		Tagline:     tagline,
		Navigation:  navigation,
		Hero:        hero,
		Rooms:       make([]models.RoomCard, 0, len(rooms)),
		History:     s.history(),
		Services:    splitServices(),
		ContactLink: contactLink,
	}
	page.Hero.ContactLink = contactLink

	for _, room := range rooms {
		page.Rooms = append(page.Rooms, s.roomCard(room))
	}

	return page, nil
}

// PriceBadge текст бейджа цены на карточке комнаты
func (s *Service) PriceBadge(nightlyPrice int64) string {
	return fmt.Sprintf("desde %s/noche", s.formatter.Format(nightlyPrice))
}

func (s *Service) roomCard(room *domain.Room) models.RoomCard {
	card := models.RoomCard{
		ID:           room.ID,
		Name:         room.Name,
		Description:  room.Description,
		Occupancy:    room.Occupancy,
		Beds:         room.Beds,
		Size:         room.Size,
		NightlyPrice: room.NightlyPrice,
		PriceBadge:   s.PriceBadge(room.NightlyPrice),
	}

	visible, more := splitAmenities(room.Amenities)
	card.Amenities = visible
	card.MoreAmenities = more
	return card
}

func (s *Service) history() models.History {
	cards := make([]models.HistoryCard, len(historyCards))
	copy(cards, historyCards)
	cards[len(cards)-1].ContactLink = s.links.Link(filmInquiryMessage)

	return models.History{
		Badge:      "Desde 1906",
		Title:      "Más de un Siglo de Historia",
		Intro:      "Hotel Principal ha sido testigo de la evolución del Centro Histórico de la Ciudad de México, hospedando a personalidades ilustres y siendo escenario de momentos memorables.",
		Timeline:   timeline,
		Highlights: cards,
	}
}

// splitAmenities возвращает первые удобства для карточки и подпись "+N más" для остальных
func splitAmenities(amenities []string) ([]string, string) {
	if len(amenities) <= visibleAmenities {
		return append([]string{}, amenities...), ""
	}
	visible := append([]string{}, amenities[:visibleAmenities]...)
	return visible, fmt.Sprintf("+%d más", len(amenities)-visibleAmenities)
}

func splitServices() models.Services {
	result := models.Services{Hours: serviceHours}
	for _, item := range services {
		if item.Highlight {
			result.Featured = append(result.Featured, item)
		} else {
			result.Regular = append(result.Regular, item)
		}
	}
	return result
}
