package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true for statuses an admin may set
func (s AppointmentStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Appointment represents a client booking
type Appointment struct {
	ID          string
	ClientName  string
	PhoneNumber string
	ServiceID   string
	Date        time.Time // start instant
	Status      AppointmentStatus
	CreatedAt   time.Time

	// Joined service, nil when not loaded
	Service *Service
}

// IsCancelled returns true if the appointment no longer occupies its slot
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// End returns the end instant of the appointment.
// Uses the joined service duration when known, otherwise fallback.
func (a *Appointment) End(fallback time.Duration) time.Time {
	if a.Service != nil && a.Service.DurationMinutes > 0 {
		return a.Date.Add(a.Service.Duration())
	}
	return a.Date.Add(fallback)
}

// AppointmentFilter selects appointments for the admin dashboard
type AppointmentFilter string

const (
	FilterAll      AppointmentFilter = "all"
	FilterToday    AppointmentFilter = "today"
	FilterUpcoming AppointmentFilter = "upcoming"
)

// ParseAppointmentFilter parses the dashboard filter; empty means all
func ParseAppointmentFilter(value string) (AppointmentFilter, bool) {
	switch AppointmentFilter(value) {
	case "", FilterAll:
		return FilterAll, true
	case FilterToday:
		return FilterToday, true
	case FilterUpcoming:
		return FilterUpcoming, true
	default:
		return "", false
	}
}

// AppointmentRange is a half-open [From, To) interval; nil bounds are open
type AppointmentRange struct {
	From *time.Time
	To   *time.Time
}

// Range converts the filter into bounds relative to local midnight of now in loc
func (f AppointmentFilter) Range(now time.Time, loc *time.Location) AppointmentRange {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch f {
	case FilterToday:
		next := midnight.AddDate(0, 0, 1)
		return AppointmentRange{From: &midnight, To: &next}
	case FilterUpcoming:
		return AppointmentRange{From: &midnight}
	default:
		return AppointmentRange{}
	}
}
