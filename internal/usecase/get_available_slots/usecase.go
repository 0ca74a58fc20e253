package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BarberBooking/pkg/format"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo    AppointmentRepository
	serviceRepo        ServiceRepository
	generator          SlotGenerator
	advanceBookingDays int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	generator SlotGenerator,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		serviceRepo:        serviceRepo,
		generator:          generator,
		advanceBookingDays: advanceBookingDays,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// SetTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, period=%s", req.ServiceID, req.Date, req.Period)

	loc := uc.generator.Location()

	// 1. Валидация входных данных
	date, err := validateRequest(req, loc)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	response := &Response{
		Date:      format.ISODate(date, loc),
		ServiceID: req.ServiceID,
		Period:    req.Period,
		Slots:     []Slot{},
	}

	// 3. Прошедший день: слотов нет
	if isDateInPast(date, now, loc) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date)
		return response, nil
	}

	// 4. Валидация горизонта записи
	if err := validateDate(date, now, loc, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Получаем активные записи на день
	existing, err := uc.appointmentRepo.ListActive(ctx, date, date.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	appointments := make([]domain.Appointment, 0, len(existing))
	for _, apt := range existing {
		if apt != nil {
			appointments = append(appointments, *apt)
		}
	}

	// 7. Генерируем свободные слоты
	for _, start := range uc.generator.GenerateSlots(date, req.Period, *service, appointments, now) {
		response.Slots = append(response.Slots, Slot{
			Start: start,
			Time:  format.Time(start, loc),
		})
	}

	uc.logger.Info("GetAvailableSlots: found %d slots for %s %s", len(response.Slots), req.Date, req.Period)

	return response, nil
}
