package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	catalogRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/catalog"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/catalog/models"
)

// Service сервис каталога комнат и дополнительных услуг
type Service struct {
	roomRepo  RoomRepository
	links     ContactLinks
	formatter PriceFormatter
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
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

// ListRooms возвращает все комнаты в порядке отображения
func (s *Service) ListRooms(ctx context.Context) ([]*models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, models.FromDomainRoom(room))
	}
	return result, nil
}

// GetRoom возвращает комнату каталога (domain модель)
// Используется мастером бронирования и командой расчета стоимости
func (s *Service) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidRoomID
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoom: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetRoom - repository error: %v", ErrInternal, err)
	}
	return room, nil
}

// GetRoomDetails возвращает подробную карточку комнаты:
// чек-лист удобств, правила проживания и ссылку для вопроса в мессенджере
func (s *Service) GetRoomDetails(ctx context.Context, id string) (*models.RoomDetailsResponse, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.RoomDetailsResponse{
		RoomResponse: *models.FromDomainRoom(room),
		PriceLabel:   s.formatter.Format(room.NightlyPrice),
		AmenityList:  amenityChecklist(room),
		Policies:     roomPolicies(room),
		ContactLink:  s.links.RoomInquiryLink(room.Name),
		BookingPerks: bookingPerks,
	}, nil
}

// ListExtras возвращает каталог дополнительных услуг
func (s *Service) ListExtras(_ context.Context) []models.ExtraResponse {
	return models.FromDomainExtras(domain.ExtrasCatalog)
}
