package whatsapp

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkBuilder_Validation(t *testing.T) {
	_, err := NewLinkBuilder("wa.me", "525512345678")
	assert.ErrorIs(t, err, ErrInvalidBaseURL)

	_, err = NewLinkBuilder("https://wa.me", "+52 55 1234")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = NewLinkBuilder("https://wa.me", "")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestLinkBuilder_Link(t *testing.T) {
	b, err := NewLinkBuilder("https://wa.me/", "525512345678")
	require.NoError(t, err)

	link := b.Link("Hola & adiós?")
	assert.Equal(t, "https://wa.me/525512345678?text=Hola%20%26%20adi%C3%B3s%3F", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hola & adiós?", u.Query().Get("text"))
}

func TestLinkBuilder_DefaultGreeting(t *testing.T) {
	b, err := NewLinkBuilder("https://wa.me", "525512345678")
	require.NoError(t, err)

	u, err := url.Parse(b.Link("   "))
	require.NoError(t, err)
	assert.Equal(t, DefaultGreeting, u.Query().Get("text"))
}

func TestLinkBuilder_RoomInquiryLink(t *testing.T) {
	b, err := NewLinkBuilder("https://wa.me", "525512345678")
	require.NoError(t, err)

	u, err := url.Parse(b.RoomInquiryLink("Habitación King"))
	require.NoError(t, err)
	assert.Equal(t, "/525512345678", u.Path)
	assert.Equal(t,
		"Hola, me interesa la Habitación King del Hotel Principal. ¿Podrían darme más información?",
		u.Query().Get("text"))
}
