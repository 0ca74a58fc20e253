package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo    AppointmentRepository
	serviceRepo        ServiceRepository
	calendar           Calendar
	notifier           Notifier
	txManager          TransactionManager
	metrics            Metrics
	advanceBookingDays int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	calendar Calendar,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:    appointmentRepo,
		serviceRepo:        serviceRepo,
		calendar:           calendar,
		notifier:           notifier,
		txManager:          txManager,
		metrics:            metrics,
		advanceBookingDays: advanceBookingDays,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// SetTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute выполняет use case создания записи.
// Повторная проверка слота и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, start=%s, period=%s",
		req.ServiceID, req.Start.Format(time.RFC3339), req.Period)

	// 1. Валидация входных данных
	normalized, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.record(outcomeInvalid)
		return nil, err
	}
	req = normalized

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	loc := uc.calendar.Location()

	// 3. Проверяем горизонт записи
	if err := validateAdvance(req.Start, now, loc, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("CreateAppointment: start=%s exceeds %d days", req.Start.In(loc).Format(domain.DateFormat), uc.advanceBookingDays)
		uc.record(outcomeInvalid)
		return nil, err
	}

	// 4. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			uc.record(outcomeInvalid)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		uc.record(outcomeFailed)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Если период не передан, определяем его по часу начала
	period := req.Period
	if period == "" {
		period = domain.PeriodForTime(req.Start.In(loc))
	}

	var result *domain.Appointment

	// 6. Повторная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Свежий снимок активных записей на день (FOR UPDATE)
		from, to := dayBounds(req.Start, loc)
		existing, err := uc.appointmentRepo.ListActive(txCtx, from, to)
		if err != nil {
			return fmt.Errorf("%w: failed to list appointments: %w", ErrInternal, err)
		}

		// 6.2. Проверяем доступность слота
		if err := uc.calendar.Check(req.Start, period, *service, toValues(existing), now); err != nil {
			if errors.Is(err, availability.ErrOverlap) || errors.Is(err, availability.ErrInPast) {
				return fmt.Errorf("%w: %w", ErrSlotNotAvailable, err)
			}
			return fmt.Errorf("%w: %w", ErrInvalidSlot, err)
		}

		// 6.3. Создаем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientName:  req.ClientName,
			PhoneNumber: req.PhoneNumber,
			ServiceID:   service.ID,
			Date:        req.Start,
			Status:      domain.StatusConfirmed,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable) || txmanager.IsSerializationFailure(err):
			uc.logger.Warn("CreateAppointment: slot %s is no longer available: %v", req.Start.In(loc).Format(domain.TimeFormat), err)
			uc.record(outcomeStale)
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, ErrInvalidSlot):
			uc.logger.Warn("CreateAppointment: invalid slot: %v", err)
			uc.record(outcomeInvalid)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateAppointment: %v", err)
			uc.record(outcomeFailed)
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			uc.record(outcomeFailed)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	result.Service = service
	uc.record(outcomeCreated)
	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 7. Формируем сообщение для заведения
	handoff := uc.notifier.Handoff(whatsapp.Booking{
		ClientName:  result.ClientName,
		PhoneNumber: result.PhoneNumber,
		ServiceName: service.Name,
		Start:       result.Date,
	})

	return &Response{
		ID:                  result.ID,
		ClientName:          result.ClientName,
		PhoneNumber:         result.PhoneNumber,
		ServiceID:           service.ID,
		ServiceName:         service.Name,
		ServicePrice:        service.Price,
		DurationMinutes:     service.DurationMinutes,
		Date:                result.Date,
		Status:              string(result.Status),
		CreatedAt:           result.CreatedAt,
		NotificationMessage: handoff.Message,
		NotificationURL:     handoff.URL,
	}, nil
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordBooking(outcome)
	}
}

func toValues(list []*domain.Appointment) []domain.Appointment {
	values := make([]domain.Appointment, 0, len(list))
	for _, apt := range list {
		if apt != nil {
			values = append(values, *apt)
		}
	}
	return values
}
