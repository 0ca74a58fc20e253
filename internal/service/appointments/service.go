package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

// Service сервис панели администратора: список, смена статуса и удаление записей
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// List получает записи по фильтру all / today / upcoming
// today: с полуночи до следующей полуночи, upcoming: с полуночи и далее
// Сортировка по времени записи по возрастанию
func (s *Service) List(ctx context.Context, filterValue string) (*models.AppointmentListResponse, error) {
	filter, ok := domain.ParseAppointmentFilter(filterValue)
	if !ok {
		s.logger.Warn("List: invalid filter=%q", filterValue)
		return nil, ErrInvalidFilter
	}

	rng := filter.Range(s.timeProvider.Now(), s.location)

	list, err := s.appointmentRepo.List(ctx, rng)
	if err != nil {
		s.logger.Error("List: repository error for filter=%s: %v", filter, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for filter=%s", len(list), filter)
	return models.FromDomainAppointmentList(filter, list), nil
}

// UpdateStatus безусловно меняет статус записи (confirmed / cancelled)
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("UpdateStatus: invalid appointment id=%q", id)
		return fmt.Errorf("%w: %q", ErrInvalidAppointmentID, id)
	}

	status := domain.AppointmentStatus(req.Status)
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%s", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s status=%s", id, status)
	return nil
}

// Delete удаляет запись. Без явного подтверждения хранилище не вызывается
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("Delete: invalid appointment id=%q", id)
		return fmt.Errorf("%w: %q", ErrInvalidAppointmentID, id)
	}

	if !confirmed {
		s.logger.Warn("Delete: appointment id=%s deletion not confirmed", id)
		return ErrConfirmationRequired
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%s deleted", id)
	return nil
}
