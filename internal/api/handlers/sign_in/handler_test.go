package sign_in

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/auth"
	"github.com/m04kA/SMC-BarberBooking/internal/service/auth/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type stubAuth struct {
	err error
}

func (s *stubAuth) SignIn(_ context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SignInResponse{
		Token:   "jwt",
		Session: models.SessionResponse{ID: "sess-1", User: models.UserResponse{ID: "user-1", Email: req.Email}},
	}, nil
}

func TestHandler_Handle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(&stubAuth{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in",
			strings.NewReader(`{"email":"admin@barbearia.com","password":"segredo123"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		var body models.SignInResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "jwt", body.Token)
		assert.Equal(t, "admin@barbearia.com", body.Session.User.Email)
	})

	// Любая ошибка входа дает одно и то же сообщение
	for name, tc := range map[string]struct {
		body string
		err  error
	}{
		"invalid credentials": {`{"email":"a@b.c","password":"x"}`, auth.ErrInvalidCredentials},
		"internal error":      {`{"email":"a@b.c","password":"x"}`, auth.ErrInternal},
		"unexpected error":    {`{"email":"a@b.c","password":"x"}`, errors.New("redis down")},
		"malformed body":      {`{"email":`, nil},
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubAuth{err: tc.err}, logger.NewNop()).Handle(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", strings.NewReader(tc.body)))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, msgSignInFailed, body.Message)
		})
	}
}
