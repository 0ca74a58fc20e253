// Package dashboard ведет список записей в панели администратора.
// После каждого изменения список перечитывается целиком.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BarberBooking/pkg/bookingclient"
)

const (
	FilterAll      = "all"
	FilterToday    = "today"
	FilterUpcoming = "upcoming"

	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	// DeletePrompt вопрос перед удалением записи
	DeletePrompt = "Tem certeza que deseja excluir este agendamento?"
)

// ErrInvalidFilter возвращается при неизвестном фильтре
var ErrInvalidFilter = errors.New("dashboard: invalid filter")

// API часть bookingclient.Client, нужная панели
type API interface {
	ListAppointments(ctx context.Context, filter string) (*bookingclient.AppointmentList, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) error
	DeleteAppointment(ctx context.Context, id string) error
}

// Confirmer спрашивает подтверждение у администратора
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Dashboard список записей с фильтром
type Dashboard struct {
	api       API
	confirmer Confirmer
	log       Logger

	mu           sync.Mutex
	filter       string
	appointments []bookingclient.Appointment
	generation   uint64
}

// New создает панель с фильтром all
func New(api API, confirmer Confirmer, log Logger) *Dashboard {
	return &Dashboard{
		api:          api,
		confirmer:    confirmer,
		log:          log,
		filter:       FilterAll,
		appointments: []bookingclient.Appointment{},
	}
}

// Filter текущий фильтр
func (d *Dashboard) Filter() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter
}

// Appointments копия текущего списка
func (d *Dashboard) Appointments() []bookingclient.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]bookingclient.Appointment(nil), d.appointments...)
}

// SetFilter меняет фильтр и перечитывает список
func (d *Dashboard) SetFilter(ctx context.Context, filter string) error {
	switch filter {
	case FilterAll, FilterToday, FilterUpcoming:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	d.mu.Lock()
	d.filter = filter
	d.mu.Unlock()

	return d.Refresh(ctx)
}

// Refresh перечитывает список. Ответ на устаревший запрос отбрасывается
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.generation++
	gen := d.generation
	filter := d.filter
	d.mu.Unlock()

	list, err := d.api.ListAppointments(ctx, filter)
	if err != nil {
		d.log.Error("Dashboard: failed to list appointments: filter=%s, error=%v", filter, err)
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		return nil
	}
	d.appointments = append([]bookingclient.Appointment{}, list.Appointments...)
	return nil
}

// Confirm подтверждает запись
func (d *Dashboard) Confirm(ctx context.Context, id string) error {
	return d.setStatus(ctx, id, StatusConfirmed)
}

// Cancel отменяет запись
func (d *Dashboard) Cancel(ctx context.Context, id string) error {
	return d.setStatus(ctx, id, StatusCancelled)
}

func (d *Dashboard) setStatus(ctx context.Context, id, status string) error {
	if err := d.api.UpdateAppointmentStatus(ctx, id, status); err != nil {
		d.log.Error("Dashboard: failed to set status=%s for appointment id=%s: %v", status, id, err)
		return err
	}
	return d.Refresh(ctx)
}

// Delete удаляет запись после подтверждения. Без подтверждения ничего не отправляет
// и возвращает false
func (d *Dashboard) Delete(ctx context.Context, id string) (bool, error) {
	if d.confirmer == nil || !d.confirmer.Confirm(ctx, DeletePrompt) {
		return false, nil
	}

	if err := d.api.DeleteAppointment(ctx, id); err != nil {
		d.log.Error("Dashboard: failed to delete appointment id=%s: %v", id, err)
		return false, err
	}
	return true, d.Refresh(ctx)
}
