package update_appointment_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func serve(svc *MockService, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/appointments/{appointmentId}/status", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/appointments/"+id+"/status", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := new(MockService)
		svc.On("UpdateStatus", mock.Anything, "apt-1", &models.UpdateStatusRequest{Status: "cancelled"}).Return(nil)

		rec := serve(svc, "apt-1", `{"status":"cancelled"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockService)

		rec := serve(svc, "apt-1", `{"status":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	cases := []struct {
		err    error
		status int
	}{
		{appointments.ErrInvalidAppointmentID, http.StatusBadRequest},
		{appointments.ErrInvalidStatus, http.StatusBadRequest},
		{appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{errors.New("down"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			svc := new(MockService)
			svc.On("UpdateStatus", mock.Anything, "apt-1", mock.Anything).Return(c.err)

			rec := serve(svc, "apt-1", `{"status":"done"}`)

			assert.Equal(t, c.status, rec.Code)
		})
	}
}
