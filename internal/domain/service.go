package domain

import "time"

// Service represents a bookable service from the catalog
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
}

// Duration returns the service length as time.Duration
func (s Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
