package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	catalogRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/catalog"
)

// UseCase use case для расчета стоимости проживания без открытия мастера
// Используется страницей комнаты и командой quote
type UseCase struct {
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчет по тем же правилам, что и мастер бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: room=%q, checkIn=%s, checkOut=%s, rooms=%d, extras=%v",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Rooms, req.Extras)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем даты относительно текущего дня
	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)
	if err := validateDates(checkIn, checkOut, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetQuote: invalid dates: %v", err)
		return nil, err
	}

	// 3. Получаем комнату
	var room *domain.RoomRef
	if req.RoomID != "" {
		found, err := uc.roomRepo.GetByID(ctx, req.RoomID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrRoomNotFound) {
				uc.logger.Warn("GetQuote: room id=%s not found", req.RoomID)
				return nil, ErrRoomNotFound
			}
			uc.logger.Error("GetQuote: failed to get room id=%s: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		ref := found.Ref()
		room = &ref
	}

	// 4. Собираем состояние мастера и считаем стоимость
	state := domain.NewFlowState("", room)
	state.Dates = domain.DateRange{CheckIn: &checkIn, CheckOut: &checkOut}
	if req.Rooms > 0 {
		state.Party.Rooms = req.Rooms
	}
	for _, id := range req.Extras {
		state.Extras[id] = true
	}

	quote := domain.ComputeQuote(state)

	uc.logger.Info("GetQuote: room=%q, nights=%d, total=%d", state.Room.Name, quote.Nights, quote.GrandTotal)

	return &Response{
		Room:     state.Room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Quote:    quote,
	}, nil
}
