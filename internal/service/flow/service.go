package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	catalogRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/catalog"
	sessionRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/session"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/flow/models"
)

// resetTimeout ограничивает сброс, выполняемый таймером вне HTTP запроса
const resetTimeout = 5 * time.Second

// Причины сброса для метрик
const (
	resetReasonClosed    = "closed"
	resetReasonSubmitted = "submitted"
)

// Service мастер бронирования: хранит состояние посетителя, применяет действия,
// отправляет уведомления и сбрасывает мастер после успешной отправки заявки
type Service struct {
	sessions     SessionRepository
	rooms        RoomRepository
	inbox        NotificationInbox
	scheduler    ResetScheduler
	metrics      FlowMetrics
	resetDelay   time.Duration
	locks        *sessionLocks
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса мастера бронирования
func NewService(
	sessions SessionRepository,
	rooms RoomRepository,
	inbox NotificationInbox,
	scheduler ResetScheduler,
	metrics FlowMetrics,
	resetDelay time.Duration,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if resetDelay <= 0 {
		resetDelay = domain.DefaultResetDelay
	}

	return &Service{
		sessions:     sessions,
		rooms:        rooms,
		inbox:        inbox,
		scheduler:    scheduler,
		metrics:      metrics,
		resetDelay:   resetDelay,
		locks:        newSessionLocks(),
		idGenerator:  &UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Open открывает мастер для комнаты
// Неизвестная или пустая комната заменяется значениями по умолчанию.
// Отменяет запланированный сброс и начинает новый мастер с чистым состоянием.
func (s *Service) Open(ctx context.Context, sessionID, roomID string) (*models.FlowView, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	s.logger.Info("Open: session=%s, room=%q", sessionID, roomID)

	room, err := s.resolveRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	s.scheduler.Cancel(sessionID)

	state := domain.NewFlowState(s.idGenerator.NewID(), room)
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		s.logger.Error("Open: failed to save state for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Open - save state: %v", ErrInternal, err)
	}

	s.metrics.FlowOpened(state.Room.ID)
	s.logger.Info("Open: flow=%s opened for session=%s, room=%q, nightly price=%d",
		state.ID, sessionID, state.Room.Name, state.Room.NightlyPrice)

	return s.view(ctx, sessionID, state), nil
}

// Close закрывает мастер и удаляет все введенные данные
func (s *Service) Close(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	s.scheduler.Cancel(sessionID)

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Close: failed to delete state for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Close - delete state: %v", ErrInternal, err)
	}

	s.metrics.FlowReset(resetReasonClosed)
	s.logger.Info("Close: flow closed for session=%s", sessionID)
	return nil
}

// Dispatch применяет действие к мастеру сессии
// При ошибке валидации (domain.ErrValidation) состояние не меняется:
// возвращается текущее представление вместе с ошибкой.
// Неудачная отправка заявки публикует уведомление об ошибке,
// успешная - уведомление об успехе и планирует сброс мастера.
func (s *Service) Dispatch(ctx context.Context, sessionID string, action domain.Action) (*models.FlowView, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, outcome, err := domain.Reduce(state, action, s.timeProvider.Now())
	if err != nil {
		if !domain.IsValidationError(err) {
			s.logger.Error("Dispatch: unexpected reduce error for session=%s: %v", sessionID, err)
			return nil, fmt.Errorf("%w: Dispatch - reduce: %v", ErrInternal, err)
		}

		s.metrics.FlowValidationFailed(string(action.Type))
		s.logger.Warn("Dispatch: action %s rejected for session=%s: %v", action.Type, sessionID, err)

		if action.Type == domain.ActionSubmit && errors.Is(err, domain.ErrGuestInfoRequired) {
			s.notify(ctx, sessionID, domain.SubmitFailedNotification())
		}
		return s.view(ctx, sessionID, state), err
	}

	if err := s.sessions.Save(ctx, sessionID, next); err != nil {
		s.logger.Error("Dispatch: failed to save state for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Dispatch - save state: %v", ErrInternal, err)
	}

	if next.Step != state.Step {
		s.metrics.FlowTransition(state.Step.String(), next.Step.String())
	}

	if outcome == domain.OutcomeSubmitted {
		quote := domain.ComputeQuote(next)
		s.metrics.FlowSubmitted(quote.GrandTotal)
		s.logger.Info("Dispatch: booking request submitted: session=%s, flow=%s, room=%q, nights=%d, total=%d",
			sessionID, next.ID, next.Room.Name, quote.Nights, quote.GrandTotal)

		s.notify(ctx, sessionID, domain.SubmitSucceededNotification())

		flowID := next.ID
		s.scheduler.Schedule(sessionID, s.resetDelay, func() {
			s.resetSubmitted(sessionID, flowID)
		})
	}

	return s.view(ctx, sessionID, next), nil
}

// Get возвращает текущее состояние мастера и непрочитанные уведомления
// Сессия без сохраненного состояния отображается как закрытый мастер
func (s *Service) Get(ctx context.Context, sessionID string) (*models.FlowView, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, state), nil
}

// resetSubmitted сбрасывает мастер после успешной отправки
// Сброс игнорируется, если с момента отправки мастер был закрыт или открыт заново
func (s *Service) resetSubmitted(sessionID, flowID string) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		s.logger.Error("Reset: failed to load state for session=%s: %v", sessionID, err)
		return
	}
	if !state.Open || state.ID != flowID || !state.Submitted {
		s.logger.Info("Reset: skipped for session=%s, flow=%s is no longer current", sessionID, flowID)
		return
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Reset: failed to delete state for session=%s: %v", sessionID, err)
		return
	}

	s.metrics.FlowReset(resetReasonSubmitted)
	s.logger.Info("Reset: flow=%s reset after submission for session=%s", flowID, sessionID)
}

// load возвращает состояние сессии, отсутствующее состояние - закрытый мастер
func (s *Service) load(ctx context.Context, sessionID string) (domain.FlowState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return domain.ClosedState(), nil
		}
		s.logger.Error("load: failed to get state for session=%s: %v", sessionID, err)
		return domain.FlowState{}, fmt.Errorf("%w: load state: %v", ErrInternal, err)
	}
	return *state, nil
}

func (s *Service) resolveRoom(ctx context.Context, roomID string) (*domain.RoomRef, error) {
	if roomID == "" {
		return nil, nil
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRoomNotFound) {
			s.logger.Warn("Open: room id=%s not found, using default room", roomID)
			return nil, nil
		}
		s.logger.Error("Open: failed to get room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: Open - get room: %v", ErrInternal, err)
	}

	ref := room.Ref()
	return &ref, nil
}

func (s *Service) notify(ctx context.Context, sessionID string, n domain.Notification) {
	if err := s.inbox.Notify(ctx, sessionID, n); err != nil {
		s.logger.Error("notify: failed to publish %s notification for session=%s: %v", n.Kind, sessionID, err)
	}
}

// view строит ответ и забирает непрочитанные уведомления сессии
func (s *Service) view(ctx context.Context, sessionID string, state domain.FlowState) *models.FlowView {
	v := models.FromDomainState(state)

	notifications, err := s.inbox.Drain(ctx, sessionID)
	if err != nil {
		s.logger.Error("view: failed to drain notifications for session=%s: %v", sessionID, err)
		return v
	}
	if len(notifications) > 0 {
		v.Notifications = notifications
	}
	return v
}
