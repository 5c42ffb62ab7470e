package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/middleware"
	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/flow/models"
	"github.com/m04kA/HotelPrincipal-Site/pkg/logger"
)

type MockFlowService struct {
	mock.Mock
}

func (m *MockFlowService) Get(ctx context.Context, sessionID string) (*models.FlowView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlowView), args.Error(1)
}

func doRequest(h *Handler, sessionID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/booking", nil)
	if sessionID != "" {
		r = r.WithContext(middleware.WithSessionID(r.Context(), sessionID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_DeliversNotifications(t *testing.T) {
	svc := new(MockFlowService)
	h := NewHandler(svc, logger.NewNop())

	svc.On("Get", mock.Anything, "s1").Return(&models.FlowView{
		Open:          true,
		Submitted:     true,
		Notifications: []domain.Notification{domain.SubmitSucceededNotification()},
	}, nil)

	w := doRequest(h, "s1")

	require.Equal(t, http.StatusOK, w.Code)
	var view models.FlowView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.True(t, view.Submitted)
	require.Len(t, view.Notifications, 1)
	assert.Equal(t, domain.MsgSubmitSucceededTitle, view.Notifications[0].Title)
}

func TestHandle_Errors(t *testing.T) {
	svc := new(MockFlowService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("Get", mock.Anything, "s1").Return(nil, errors.New("redis down"))

	assert.Equal(t, http.StatusInternalServerError, doRequest(h, "s1").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "").Code)
}
