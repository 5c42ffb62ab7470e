package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/middleware"
	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	catalogRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/catalog"
	notificationRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/notification"
	sessionRepo "github.com/m04kA/HotelPrincipal-Site/internal/infra/storage/session"
	"github.com/m04kA/HotelPrincipal-Site/internal/integrations/whatsapp"
	catalogService "github.com/m04kA/HotelPrincipal-Site/internal/service/catalog"
	flowService "github.com/m04kA/HotelPrincipal-Site/internal/service/flow"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/flow/models"
	siteService "github.com/m04kA/HotelPrincipal-Site/internal/service/site"
	getQuoteUC "github.com/m04kA/HotelPrincipal-Site/internal/usecase/get_quote"
	"github.com/m04kA/HotelPrincipal-Site/pkg/deferred"
	"github.com/m04kA/HotelPrincipal-Site/pkg/logger"
	"github.com/m04kA/HotelPrincipal-Site/pkg/metrics"
	"github.com/m04kA/HotelPrincipal-Site/pkg/money"
)

const testResetDelay = 100 * time.Millisecond

type testClient struct {
	t      *testing.T
	server *httptest.Server
	http   *http.Client
}

func newTestServer(t *testing.T) *testClient {
	t.Helper()
	log := logger.NewNop()

	rooms := catalogRepo.NewStaticRepository(catalogRepo.DefaultRooms)
	links, err := whatsapp.NewLinkBuilder("https://wa.me", "525512345678")
	require.NoError(t, err)
	formatter := money.NewFormatter("es-MX")
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	scheduler := deferred.NewScheduler()
	t.Cleanup(scheduler.Stop)

	flowSvc := flowService.NewService(
		sessionRepo.NewMemoryRepository(time.Hour),
		rooms,
		notificationRepo.NewMemoryInbox(),
		scheduler,
		m,
		testResetDelay,
		log,
	)

	router := newRouter(routerDeps{
		flow:    flowSvc,
		catalog: catalogService.NewService(rooms, links, formatter, log),
		site:    siteService.NewService(rooms, links, formatter, log),
		quote:   getQuoteUC.NewUseCase(rooms, log),
		links:   links,
		sessionManager: middleware.NewSessionManager("hotelsite_session",
			securecookie.GenerateRandomKey(32), securecookie.GenerateRandomKey(32), time.Hour, false),
		rateLimiter: middleware.NewRateLimiter(6000, 1000, log),
		metrics:     m,
		metricsPath: "/metrics",
		logger:      log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testClient{t: t, server: server, http: &http.Client{Jar: jar}}
}

func (c *testClient) do(method, path string, body interface{}) (int, []byte) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.server.URL+path, &buf)
	require.NoError(c.t, err)

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, out.Bytes()
}

func (c *testClient) view(method, path string, body interface{}, expectedStatus int) models.FlowView {
	c.t.Helper()
	status, raw := c.do(method, path, body)
	require.Equal(c.t, expectedStatus, status, string(raw))

	var view models.FlowView
	require.NoError(c.t, json.Unmarshal(raw, &view))
	return view
}

func (c *testClient) action(body map[string]string) models.FlowView {
	c.t.Helper()
	return c.view(http.MethodPost, "/api/v1/booking/actions", body, http.StatusOK)
}

func dateFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateFormat)
}

func TestRouter_BookingFlowEndToEnd(t *testing.T) {
	c := newTestServer(t)

	closed := c.view(http.MethodGet, "/api/v1/booking", nil, http.StatusOK)
	assert.False(t, closed.Open)

	opened := c.view(http.MethodPost, "/api/v1/booking/open", map[string]string{"roomId": "doble"}, http.StatusOK)
	assert.True(t, opened.Open)
	assert.Equal(t, "Habitación Doble", opened.Room.Name)
	assert.Equal(t, int64(1500), opened.Quote.GrandTotal)

	// Next без дат отклоняется с 422 и текущим состоянием
	status, raw := c.do(http.MethodPost, "/api/v1/booking/actions", map[string]string{"type": "next"})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	var rejected struct {
		Code    int              `json:"code"`
		Message string           `json:"message"`
		Booking *models.FlowView `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(raw, &rejected))
	assert.Equal(t, http.StatusUnprocessableEntity, rejected.Code)
	require.NotNil(t, rejected.Booking)
	assert.Equal(t, 1, rejected.Booking.Step)

	c.action(map[string]string{"type": "set_check_in", "date": dateFromNow(1)})
	view := c.action(map[string]string{"type": "set_check_out", "date": dateFromNow(4)})
	assert.Equal(t, 3, view.Quote.Nights)
	assert.Equal(t, int64(4500), view.Quote.GrandTotal)

	c.action(map[string]string{"type": "next"})
	c.action(map[string]string{"type": "toggle_extra", "extra": "breakfast"})
	view = c.action(map[string]string{"type": "toggle_extra", "extra": "airport"})
	assert.Equal(t, int64(5200), view.Quote.GrandTotal)

	view = c.action(map[string]string{"type": "next"})
	assert.Equal(t, 3, view.Step)

	// Отправка без обязательных полей: 422 и уведомление об ошибке
	status, raw = c.do(http.MethodPost, "/api/v1/booking/actions", map[string]string{"type": "submit"})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.NoError(t, json.Unmarshal(raw, &rejected))
	require.Len(t, rejected.Booking.Notifications, 1)
	assert.Equal(t, domain.NotificationFailure, rejected.Booking.Notifications[0].Kind)

	c.action(map[string]string{"type": "set_guest_field", "field": "firstName", "value": "Ana"})
	c.action(map[string]string{"type": "set_guest_field", "field": "email", "value": "ana@example.mx"})

	view = c.action(map[string]string{"type": "submit"})
	assert.True(t, view.Submitted)
	require.Len(t, view.Notifications, 1)
	assert.Equal(t, domain.NotificationSuccess, view.Notifications[0].Kind)

	// уведомление доставляется один раз
	again := c.view(http.MethodGet, "/api/v1/booking", nil, http.StatusOK)
	assert.Empty(t, again.Notifications)

	// после отправки действия отклоняются до сброса
	status, _ = c.do(http.MethodPost, "/api/v1/booking/actions", map[string]string{"type": "back"})
	assert.Equal(t, http.StatusConflict, status)

	assert.Eventually(t, func() bool {
		v := c.view(http.MethodGet, "/api/v1/booking", nil, http.StatusOK)
		return !v.Open && v.Guest == (domain.GuestInfo{})
	}, 2*time.Second, 20*time.Millisecond)

	status, _ = c.do(http.MethodPost, "/api/v1/booking/actions", map[string]string{"type": "next"})
	assert.Equal(t, http.StatusConflict, status)
}

func TestRouter_CloseDiscardsData(t *testing.T) {
	c := newTestServer(t)

	c.view(http.MethodPost, "/api/v1/booking/open", nil, http.StatusOK)
	c.action(map[string]string{"type": "set_check_in", "date": dateFromNow(2)})

	status, _ := c.do(http.MethodPost, "/api/v1/booking/close", nil)
	require.Equal(t, http.StatusNoContent, status)

	view := c.view(http.MethodGet, "/api/v1/booking", nil, http.StatusOK)
	assert.False(t, view.Open)
	assert.Nil(t, view.CheckIn)
}

func TestRouter_ContentRoutes(t *testing.T) {
	c := newTestServer(t)

	for _, path := range []string{
		"/api/v1/site",
		"/api/v1/rooms",
		"/api/v1/rooms/king",
		"/api/v1/extras",
		"/api/v1/contact-link",
		"/api/v1/quote?roomId=triple&checkIn=" + dateFromNow(1) + "&checkOut=" + dateFromNow(3),
		"/metrics",
	} {
		status, raw := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, status, "%s: %s", path, raw)
	}

	status, _ := c.do(http.MethodGet, "/api/v1/rooms/penthouse", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
