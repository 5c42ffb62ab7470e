package contact_link

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelPrincipal-Site/internal/integrations/whatsapp"
	"github.com/m04kA/HotelPrincipal-Site/pkg/logger"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	links, err := whatsapp.NewLinkBuilder("https://wa.me", "525512345678")
	require.NoError(t, err)
	return NewHandler(links, logger.NewNop())
}

func linkText(t *testing.T, body []byte) string {
	t.Helper()
	var resp ContactLinkResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	u, err := url.Parse(resp.URL)
	require.NoError(t, err)
	assert.Equal(t, "/525512345678", u.Path)
	return u.Query().Get("text")
}

func TestHandle(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/contact-link?message="+url.QueryEscape("¿Tienen estacionamiento?"), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "¿Tienen estacionamiento?", linkText(t, w.Body.Bytes()))

	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/contact-link", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, whatsapp.DefaultGreeting, linkText(t, w.Body.Bytes()))
}

func TestHandle_MessageTooLong(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	long := strings.Repeat("a", maxMessageLength+1)
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/contact-link?message="+long, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
