// Package bookingflow ведет форму записи клиента: выбор услуги, даты, периода и слота,
// повторную проверку слота перед отправкой и передачу ссылки уведомления.
package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/bookingclient"
	"github.com/m04kA/SMC-BarberBooking/pkg/format"
)

// State состояние формы записи
type State string

const (
	StateEditing       State = "editing"
	StateReady         State = "ready"
	StateSubmitting    State = "submitting"
	StateSubmitted     State = "submitted"
	StateRejectedStale State = "rejected-stale"
	StateFailed        State = "failed"
)

const (
	// MsgSlotNotAvailable показывается, когда выбранный слот заняли
	MsgSlotNotAvailable = "Este horário não está mais disponível. Por favor, escolha outro horário."

	// MsgCreateFailed показывается при любой другой ошибке отправки
	MsgCreateFailed = "Erro ao criar agendamento. Por favor, tente novamente."

	defaultPeriod = "morning"
)

var (
	// ErrNotReady возвращается при отправке неполной формы
	ErrNotReady = errors.New("bookingflow: form is not ready")

	// ErrBusy возвращается при изменении формы или повторной отправке во время submitting
	ErrBusy = errors.New("bookingflow: submission in progress")

	// ErrStale возвращается, когда слот оказался занят
	ErrStale = errors.New("bookingflow: slot is no longer available")

	// ErrSubmitFailed возвращается, когда запись не создана по другой причине
	ErrSubmitFailed = errors.New("bookingflow: submission failed")
)

// API часть bookingclient.Client, нужная форме
type API interface {
	AvailableSlots(ctx context.Context, serviceID, date, period string) (*bookingclient.Slots, error)
	CreateAppointment(ctx context.Context, req bookingclient.CreateAppointmentRequest) (*bookingclient.CreatedAppointment, error)
}

// Opener открывает ссылку уведомления (браузер, мессенджер)
type Opener interface {
	Open(url string) error
}

// Form введенные данные
type Form struct {
	ClientName  string
	PhoneNumber string
	ServiceID   string
	Date        string // YYYY-MM-DD
	Period      string // morning | afternoon
	Slot        *time.Time
}

// Flow форма записи. Безопасна для использования из нескольких горутин;
// мьютекс не удерживается во время сетевых вызовов
type Flow struct {
	api    API
	opener Opener

	mu         sync.Mutex
	state      State
	form       Form
	slots      []time.Time
	generation uint64
	message    string
	onChange   func(State)
}

// New создает форму в состоянии editing
func New(api API, opener Opener) *Flow {
	return &Flow{
		api:    api,
		opener: opener,
		state:  StateEditing,
		form:   Form{Period: defaultPeriod},
		slots:  []time.Time{},
	}
}

// OnStateChange подписывает fn на каждую смену состояния. fn вызывается под мьютексом формы
// и не должна обращаться к Flow
func (f *Flow) OnStateChange(fn func(State)) {
	f.mu.Lock()
	f.onChange = fn
	f.mu.Unlock()
}

// State текущее состояние
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Form копия введенных данных
func (f *Flow) Form() Form {
	f.mu.Lock()
	defer f.mu.Unlock()
	form := f.form
	if f.form.Slot != nil {
		slot := *f.form.Slot
		form.Slot = &slot
	}
	return form
}

// Slots копия последнего списка свободных слотов
func (f *Flow) Slots() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.slots...)
}

// Message сообщение для пользователя после последней отправки
func (f *Flow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// SetClientName задает имя клиента
func (f *Flow) SetClientName(name string) error {
	return f.edit(func(form *Form) { form.ClientName = name })
}

// SetPhoneNumber задает телефон, применяя маску (DD) NNNNN-NNNN
func (f *Flow) SetPhoneNumber(phone string) error {
	return f.edit(func(form *Form) { form.PhoneNumber = format.Phone(phone) })
}

// SelectService выбирает услугу и сбрасывает слот
func (f *Flow) SelectService(serviceID string) error {
	return f.edit(func(form *Form) {
		form.ServiceID = serviceID
		form.Slot = nil
	})
}

// SelectDate выбирает дату (YYYY-MM-DD) и сбрасывает слот
func (f *Flow) SelectDate(date string) error {
	return f.edit(func(form *Form) {
		form.Date = date
		form.Slot = nil
	})
}

// SelectPeriod выбирает период и сбрасывает слот
func (f *Flow) SelectPeriod(period string) error {
	return f.edit(func(form *Form) {
		form.Period = period
		form.Slot = nil
	})
}

// SelectSlot выбирает слот из последнего списка
func (f *Flow) SelectSlot(slot time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return ErrBusy
	}
	if !containsSlot(f.slots, slot) {
		return fmt.Errorf("%w: slot %s is not offered", ErrNotReady, slot.Format(time.RFC3339))
	}

	f.form.Slot = &slot
	f.updateReadyLocked()
	return nil
}

// edit применяет изменение формы. Во время submitting форма не меняется
func (f *Flow) edit(apply func(form *Form)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return ErrBusy
	}
	apply(&f.form)
	f.updateReadyLocked()
	return nil
}

// RefreshSlots перезапрашивает свободные слоты. Ответ на устаревший запрос отбрасывается
func (f *Flow) RefreshSlots(ctx context.Context) ([]time.Time, error) {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	form := f.form
	f.mu.Unlock()

	if form.ServiceID == "" || form.Date == "" || form.Period == "" {
		f.mu.Lock()
		if gen == f.generation {
			f.slots = []time.Time{}
		}
		f.mu.Unlock()
		return []time.Time{}, nil
	}

	fresh, err := f.fetchSlots(ctx, form)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		return append([]time.Time(nil), f.slots...), nil
	}
	f.slots = fresh
	if f.form.Slot != nil && !containsSlot(fresh, *f.form.Slot) {
		f.form.Slot = nil
		f.updateReadyLocked()
	}
	return append([]time.Time(nil), fresh...), nil
}

func (f *Flow) fetchSlots(ctx context.Context, form Form) ([]time.Time, error) {
	resp, err := f.api.AvailableSlots(ctx, form.ServiceID, form.Date, form.Period)
	if err != nil {
		return nil, err
	}
	slots := make([]time.Time, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.Start)
	}
	return slots, nil
}

// Submit повторно проверяет слот по свежему снимку и создает запись.
// Занятый слот: список обновляется, слот сбрасывается, форма возвращается в editing, запись не создается.
// Успех: форма очищается, ссылка уведомления передается Opener (его ошибка игнорируется).
// Другая ошибка: форма остается заполненной и возвращается в ready
func (f *Flow) Submit(ctx context.Context) (*bookingclient.CreatedAppointment, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	if !f.form.isComplete() {
		f.mu.Unlock()
		return nil, ErrNotReady
	}
	f.generation++
	gen := f.generation
	form := f.form
	slot := *f.form.Slot
	f.setStateLocked(StateSubmitting)
	f.message = ""
	f.mu.Unlock()

	// 1. Свежий снимок свободных слотов
	fresh, err := f.fetchSlots(ctx, form)
	if err != nil {
		return nil, f.fail(err)
	}
	if !containsSlot(fresh, slot) {
		return nil, f.stale(gen, fresh, nil)
	}

	// 2. Создаем запись
	created, err := f.api.CreateAppointment(ctx, bookingclient.CreateAppointmentRequest{
		ClientName:      form.ClientName,
		PhoneNumber:     form.PhoneNumber,
		ServiceID:       form.ServiceID,
		AppointmentDate: slot,
		Period:          form.Period,
	})
	if err != nil {
		if errors.Is(err, bookingclient.ErrSlotNotAvailable) {
			refreshed, refreshErr := f.fetchSlots(ctx, form)
			if refreshErr != nil {
				refreshed = nil
			}
			return nil, f.stale(gen, refreshed, err)
		}
		return nil, f.fail(err)
	}

	// 3. Очищаем форму и открываем уведомление
	f.mu.Lock()
	f.form = Form{Period: form.Period}
	f.slots = []time.Time{}
	f.setStateLocked(StateSubmitted)
	f.mu.Unlock()

	if f.opener != nil && created.Notification.URL != "" {
		_ = f.opener.Open(created.Notification.URL)
	}

	return created, nil
}

// stale обрабатывает занятый слот. fresh == nil означает, что обновить список не удалось
func (f *Flow) stale(gen uint64, fresh []time.Time, cause error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.setStateLocked(StateRejectedStale)
	if fresh != nil && gen == f.generation {
		f.slots = fresh
	}
	f.form.Slot = nil
	f.message = MsgSlotNotAvailable
	f.setStateLocked(StateEditing)

	if cause != nil {
		return fmt.Errorf("%w: %v", ErrStale, cause)
	}
	return ErrStale
}

func (f *Flow) fail(cause error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.setStateLocked(StateFailed)
	f.message = MsgCreateFailed
	f.updateReadyLocked()

	return fmt.Errorf("%w: %v", ErrSubmitFailed, cause)
}

func (f *Flow) updateReadyLocked() {
	if f.form.isComplete() {
		f.setStateLocked(StateReady)
	} else {
		f.setStateLocked(StateEditing)
	}
}

func (f *Flow) setStateLocked(state State) {
	if f.state == state {
		return
	}
	f.state = state
	if f.onChange != nil {
		f.onChange(state)
	}
}

func (form Form) isComplete() bool {
	return form.ClientName != "" &&
		format.IsValidPhone(form.PhoneNumber) &&
		form.ServiceID != "" &&
		form.Slot != nil
}

func containsSlot(slots []time.Time, slot time.Time) bool {
	for _, s := range slots {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}
