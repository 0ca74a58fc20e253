package models

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain.Service в ServiceResponse
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	items := make([]*ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, FromDomainService(s))
	}
	return &ServiceListResponse{Services: items}
}
