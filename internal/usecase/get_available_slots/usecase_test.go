package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

const (
	haircutID        = "5d1c6c7e-8a3b-4f2e-9a61-0c2f3e4d5a01"
	unknownServiceID = "5d1c6c7e-8a3b-4f2e-9a61-0c2f3e4d5a09"
	appointmentID    = "9b2f4a10-3c5d-4e6f-8a7b-1c2d3e4f5a01"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) ListActive(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	args := m.Called(ctx, from, to)
	list, _ := args.Get(0).([]*domain.Appointment)
	return list, args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	args := m.Called(ctx, id)
	svc, _ := args.Get(0).(*domain.Service)
	return svc, args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

var (
	brt     = time.FixedZone("BRT", -3*60*60)
	monday  = time.Date(2026, 3, 9, 0, 0, 0, 0, brt)
	haircut = &domain.Service{ID: haircutID, Name: "Corte", DurationMinutes: 30, Price: 35}
)

func newUseCase(apts *MockAppointmentRepository, svcs *MockServiceRepository, now time.Time, advanceDays int) *UseCase {
	calendar := availability.NewCalendar(brt, []time.Weekday{time.Sunday}, false)
	uc := NewUseCase(apts, svcs, calendar, advanceDays, logger.NewNop())
	uc.SetTimeProvider(&fixedTime{now: now})
	return uc
}

func sameInstant(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func slotTimes(resp *Response) []string {
	times := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		times = append(times, s.Time)
	}
	return times
}

func TestUseCase_Execute(t *testing.T) {
	t.Run("booked slot is skipped", func(t *testing.T) {
		apts := new(MockAppointmentRepository)
		svcs := new(MockServiceRepository)
		uc := newUseCase(apts, svcs, monday.AddDate(0, 0, -1), 0)

		svcs.On("GetByID", mock.Anything, haircutID).Return(haircut, nil)
		apts.On("ListActive", mock.Anything, sameInstant(monday), sameInstant(monday.AddDate(0, 0, 1))).Return([]*domain.Appointment{
			{ID: appointmentID, Date: monday.Add(9 * time.Hour), Status: domain.StatusConfirmed, Service: haircut},
		}, nil)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: "2026-03-09", Period: domain.PeriodMorning})

		require.NoError(t, err)
		assert.Equal(t, "2026-03-09", resp.Date)
		assert.Equal(t, []string{"08:00", "08:30", "09:30", "10:00", "10:30", "11:00", "11:30"}, slotTimes(resp))
		apts.AssertExpectations(t)
	})

	t.Run("today starts at next half hour", func(t *testing.T) {
		apts := new(MockAppointmentRepository)
		svcs := new(MockServiceRepository)
		uc := newUseCase(apts, svcs, monday.Add(15*time.Hour+10*time.Minute), 0)

		svcs.On("GetByID", mock.Anything, haircutID).Return(haircut, nil)
		apts.On("ListActive", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Appointment{}, nil)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: "2026-03-09", Period: domain.PeriodAfternoon})

		require.NoError(t, err)
		assert.Equal(t, []string{"15:30", "16:00", "16:30", "17:00", "17:30"}, slotTimes(resp))
	})

	t.Run("past date yields empty list", func(t *testing.T) {
		apts := new(MockAppointmentRepository)
		svcs := new(MockServiceRepository)
		uc := newUseCase(apts, svcs, monday.AddDate(0, 0, 1), 0)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: "2026-03-09", Period: domain.PeriodMorning})

		require.NoError(t, err)
		assert.NotNil(t, resp.Slots)
		assert.Empty(t, resp.Slots)
		svcs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("closed day yields empty list", func(t *testing.T) {
		apts := new(MockAppointmentRepository)
		svcs := new(MockServiceRepository)
		uc := newUseCase(apts, svcs, monday.AddDate(0, 0, -3), 0)

		svcs.On("GetByID", mock.Anything, haircutID).Return(haircut, nil)
		apts.On("ListActive", mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Appointment{}, nil)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: "2026-03-08", Period: domain.PeriodMorning})

		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		cases := []*Request{
			{ServiceID: "", Date: "2026-03-09", Period: domain.PeriodMorning},
			{ServiceID: "abc", Date: "2026-03-09", Period: domain.PeriodMorning},
			{ServiceID: haircutID, Date: "09/03/2026", Period: domain.PeriodMorning},
			{ServiceID: haircutID, Date: "2026-03-09", Period: "evening"},
		}
		for _, req := range cases {
			svcs := new(MockServiceRepository)
			uc := newUseCase(new(MockAppointmentRepository), svcs, monday, 0)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			svcs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		}
	})

	t.Run("too far in future", func(t *testing.T) {
		uc := newUseCase(new(MockAppointmentRepository), new(MockServiceRepository), monday, 7)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: "2026-03-17", Period: domain.PeriodMorning})

		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("service not found", func(t *testing.T) {
		svcs := new(MockServiceRepository)
		svcs.On("GetByID", mock.Anything, unknownServiceID).Return(nil, serviceRepo.ErrServiceNotFound)
		uc := newUseCase(new(MockAppointmentRepository), svcs, monday, 0)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: unknownServiceID, Date: "2026-03-09", Period: domain.PeriodMorning})

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		apts := new(MockAppointmentRepository)
		svcs := new(MockServiceRepository)
		svcs.On("GetByID", mock.Anything, haircutID).Return(haircut, nil)
		apts.On("ListActive", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
		uc := newUseCase(apts, svcs, monday, 0)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: haircutID, Date: "2026-03-09", Period: domain.PeriodMorning})

		assert.ErrorIs(t, err, ErrInternal)
	})
}
