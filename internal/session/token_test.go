package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

func TestTokens_IssueParse(t *testing.T) {
	tokens := NewTokens("secret", "barber-booking")
	now := time.Now()
	sess := &domain.Session{ID: "s-1", UserID: "adm-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	token, err := tokens.Issue(sess)
	require.NoError(t, err)

	id, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "s-1", id)
}

func TestTokens_Parse_Invalid(t *testing.T) {
	tokens := NewTokens("secret", "barber-booking")
	now := time.Now()

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokens("other", "barber-booking")
		token, err := other.Issue(&domain.Session{ID: "s-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)})
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokens("secret", "someone-else")
		token, err := other.Issue(&domain.Session{ID: "s-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)})
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := tokens.Issue(&domain.Session{ID: "s-1", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)})
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			ID:        "s-1",
			Issuer:    "barber-booking",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
