package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

// Service каталог услуг (справочные данные, только чтение)
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все услуги
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: invalid service id=%q", id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidServiceID, id)
	}

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}
