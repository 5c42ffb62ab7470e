package open_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/middleware"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/flow/models"
	"github.com/m04kA/HotelPrincipal-Site/pkg/logger"
)

type MockFlowService struct {
	mock.Mock
}

func (m *MockFlowService) Open(ctx context.Context, sessionID, roomID string) (*models.FlowView, error) {
	args := m.Called(ctx, sessionID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlowView), args.Error(1)
}

func doRequest(h *Handler, sessionID, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/booking/open", strings.NewReader(body))
	if sessionID != "" {
		r = r.WithContext(middleware.WithSessionID(r.Context(), sessionID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		roomID string
	}{
		{name: "with room", body: `{"roomId":"king"}`, roomID: "king"},
		{name: "empty body opens default room", body: ``, roomID: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockFlowService)
			h := NewHandler(svc, logger.NewNop())
			svc.On("Open", mock.Anything, "s1", tc.roomID).Return(&models.FlowView{ID: "flow-1", Open: true}, nil)

			w := doRequest(h, "s1", tc.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"open":true`)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	svc := new(MockFlowService)
	h := NewHandler(svc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "s1", `{"room":"king"}`).Code)

	svc.On("Open", mock.Anything, "s2", "doble").Return(nil, errors.New("redis down"))
	assert.Equal(t, http.StatusInternalServerError, doRequest(h, "s2", `{"roomId":"doble"}`).Code)
}
