package availability

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var (
	ErrInPast        = errors.New("availability: slot is in the past")
	ErrUnknownPeriod = errors.New("availability: unknown period")
	ErrOutsidePeriod = errors.New("availability: slot is outside of the period")
	ErrClosedDay     = errors.New("availability: business is closed on this day")
	ErrSpillover     = errors.New("availability: service would end after the period")
	ErrOverlap       = errors.New("availability: slot overlaps an existing appointment")
)

const slotStep = domain.SlotStepMinutes * time.Minute

// Calendar вычисляет доступность слотов в часовом поясе заведения
type Calendar struct {
	location       *time.Location
	closedDays     map[time.Weekday]struct{}
	allowSpillover bool
}

// NewCalendar создает календарь. loc == nil означает time.Local
func NewCalendar(loc *time.Location, closedDays []time.Weekday, allowSpillover bool) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	closed := make(map[time.Weekday]struct{}, len(closedDays))
	for _, d := range closedDays {
		closed[d] = struct{}{}
	}
	return &Calendar{
		location:       loc,
		closedDays:     closed,
		allowSpillover: allowSpillover,
	}
}

// Location часовой пояс календаря
func (c *Calendar) Location() *time.Location {
	return c.location
}

// IsClosed проверяет, закрыто ли заведение в день t
func (c *Calendar) IsClosed(t time.Time) bool {
	_, closed := c.closedDays[t.In(c.location).Weekday()]
	return closed
}

// IsAvailable сообщает, можно ли записаться на услугу на время candidate
func (c *Calendar) IsAvailable(candidate time.Time, period domain.Period, service domain.Service, existing []domain.Appointment, now time.Time) bool {
	return c.Check(candidate, period, service, existing, now) == nil
}

// Check возвращает причину, по которой слот недоступен, или nil
func (c *Calendar) Check(candidate time.Time, period domain.Period, service domain.Service, existing []domain.Appointment, now time.Time) error {
	if candidate.Before(now) {
		return ErrInPast
	}

	window, ok := period.Window()
	if !ok {
		return ErrUnknownPeriod
	}

	local := candidate.In(c.location)
	if !window.Contains(local) {
		return ErrOutsidePeriod
	}

	if c.IsClosed(local) {
		return ErrClosedDay
	}

	end := candidate.Add(service.Duration())
	if !c.allowSpillover {
		periodEnd := time.Date(local.Year(), local.Month(), local.Day(), window.EndHour, 0, 0, 0, c.location)
		if end.After(periodEnd) {
			return ErrSpillover
		}
	}

	for i := range existing {
		apt := &existing[i]
		if apt.IsCancelled() {
			continue
		}
		if Overlaps(candidate, end, apt.Date, apt.End(service.Duration())) {
			return ErrOverlap
		}
	}

	return nil
}

// Overlaps проверяет пересечение полуинтервалов [start, end) и [otherStart, otherEnd):
// начало внутри другого интервала, конец внутри другого интервала
// или полное покрытие другого интервала
func Overlaps(start, end, otherStart, otherEnd time.Time) bool {
	startInside := !start.Before(otherStart) && start.Before(otherEnd)
	endInside := end.After(otherStart) && !end.After(otherEnd)
	contains := !start.After(otherStart) && !end.Before(otherEnd)
	return startInside || endInside || contains
}

// GenerateSlots перечисляет свободные слоты с шагом 30 минут внутри периода на дату date.
// Для сегодняшней даты начало сдвигается к ближайшей границе 30 минут после now.
// Каждый вызов строит новый срез.
func (c *Calendar) GenerateSlots(date time.Time, period domain.Period, service domain.Service, existing []domain.Appointment, now time.Time) []time.Time {
	slots := make([]time.Time, 0)

	window, ok := period.Window()
	if !ok {
		return slots
	}

	day := date.In(c.location)
	current := time.Date(day.Year(), day.Month(), day.Day(), window.StartHour, 0, 0, 0, c.location)
	end := time.Date(day.Year(), day.Month(), day.Day(), window.EndHour, 0, 0, 0, c.location)

	localNow := now.In(c.location)
	if sameDay(current, localNow) && localNow.After(current) {
		minutes := localNow.Minute()
		rounded := (minutes + domain.SlotStepMinutes - 1) / domain.SlotStepMinutes * domain.SlotStepMinutes
		current = time.Date(day.Year(), day.Month(), day.Day(), localNow.Hour(), rounded, 0, 0, c.location)
	}

	for ; current.Before(end); current = current.Add(slotStep) {
		if c.IsAvailable(current, period, service, existing, now) {
			slots = append(slots, current)
		}
	}

	return slots
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
