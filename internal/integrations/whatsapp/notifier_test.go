package whatsapp

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifier(t *testing.T) {
	_, err := NewNotifier("https://wa.me", "", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewNotifier("wa.me", "5585994015283", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	n, err := NewNotifier("https://wa.me/", "+55 (85) 99401-5283", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "5585994015283", n.destination)
}

func TestNotifier_Handoff(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	n, err := NewNotifier("https://wa.me", "5585994015283", loc)
	require.NoError(t, err)

	booking := Booking{
		ClientName:  "João Silva",
		PhoneNumber: "(85) 99401-5283",
		ServiceName: "Corte + Barba",
		Start:       time.Date(2026, 3, 9, 12, 30, 0, 0, time.UTC),
	}

	h := n.Handoff(booking)

	wantMessage := "Olá! Gostaria de agendar um horário:\n\nNome: João Silva\nTelefone: (85) 99401-5283\nServiço: Corte + Barba\nData: 09/03/2026\nHorário: 09:30"
	assert.Equal(t, wantMessage, h.Message)

	u, err := url.Parse(h.URL)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/5585994015283", u.Path)
	assert.NotContains(t, u.RawQuery, "+")
	assert.Equal(t, wantMessage, u.Query().Get("text"))
}
