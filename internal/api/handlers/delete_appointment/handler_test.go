package delete_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Delete(ctx context.Context, id string, confirmed bool) error {
	return m.Called(ctx, id, confirmed).Error(0)
}

func serve(svc *MockService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/appointments/{appointmentId}", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, "apt-1", true).Return(nil)

		rec := serve(svc, "/api/v1/admin/appointments/apt-1?confirm=true")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("without confirmation", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, "apt-1", false).Return(appointments.ErrConfirmationRequired)

		rec := serve(svc, "/api/v1/admin/appointments/apt-1")

		assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("garbage confirm value", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, "apt-1", false).Return(appointments.ErrConfirmationRequired)

		rec := serve(svc, "/api/v1/admin/appointments/apt-1?confirm=maybe")

		assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, "abc", true).Return(appointments.ErrInvalidAppointmentID)

		rec := serve(svc, "/api/v1/admin/appointments/abc?confirm=true")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), msgInvalidID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, "apt-9", true).Return(appointments.ErrAppointmentNotFound)

		rec := serve(svc, "/api/v1/admin/appointments/apt-9?confirm=true")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Delete", mock.Anything, "apt-1", true).Return(errors.New("down"))

		rec := serve(svc, "/api/v1/admin/appointments/apt-1?confirm=true")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
