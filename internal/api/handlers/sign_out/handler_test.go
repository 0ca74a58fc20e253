package sign_out

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type stubAuth struct {
	signedOut []string
	err       error
}

func (s *stubAuth) SignOut(_ context.Context, sess *domain.Session) error {
	s.signedOut = append(s.signedOut, sess.ID)
	return s.err
}

func TestHandler_Handle(t *testing.T) {
	sess := &domain.Session{ID: "sess-1", UserID: "user-1"}

	t.Run("ok", func(t *testing.T) {
		svc := &stubAuth{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-out", nil)
		req = req.WithContext(middleware.WithSession(req.Context(), sess))
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"sess-1"}, svc.signedOut)
	})

	t.Run("no session", func(t *testing.T) {
		svc := &stubAuth{}
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-out", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, svc.signedOut)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubAuth{err: errors.New("redis down")}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-out", nil)
		req = req.WithContext(middleware.WithSession(req.Context(), sess))
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
