package list_appointments

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

	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, filter string) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, filter)
	resp, _ := args.Get(0).(*models.AppointmentListResponse)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything, "today").Return(&models.AppointmentListResponse{
			Filter:       "today",
			Appointments: []*models.AppointmentResponse{{ID: "apt-1", ClientName: "João"}},
			Total:        1,
		}, nil)
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments?filter=today", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body models.AppointmentListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Total)
		assert.Equal(t, "apt-1", body.Appointments[0].ID)
	})

	t.Run("invalid filter", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything, "yesterday").Return(nil, appointments.ErrInvalidFilter)
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments?filter=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := new(MockService)
		svc.On("List", mock.Anything, "").Return(nil, errors.New("down"))
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
