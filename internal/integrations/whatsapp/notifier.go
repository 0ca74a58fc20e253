package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/format"
)

// ErrInvalidConfig возвращается при пустом номере получателя или некорректном base URL
var ErrInvalidConfig = errors.New("whatsapp: invalid configuration")

// Booking данные записи для сообщения
type Booking struct {
	ClientName  string
	PhoneNumber string
	ServiceName string
	Start       time.Time
}

// Handoff предзаполненное сообщение и ссылка click-to-chat.
// Доставка не гарантируется: ссылку открывает клиент
type Handoff struct {
	Message string
	URL     string
}

// Notifier формирует ссылку wa.me с текстом о новой записи для заведения
type Notifier struct {
	baseURL     *url.URL
	destination string
	location    *time.Location
}

// NewNotifier создает notifier. destination номер получателя в международном формате без "+"
func NewNotifier(baseURL, destination string, loc *time.Location) (*Notifier, error) {
	destination = format.Digits(destination)
	if destination == "" {
		return nil, fmt.Errorf("%w: empty destination", ErrInvalidConfig)
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q", ErrInvalidConfig, baseURL)
	}

	return &Notifier{baseURL: u, destination: destination, location: loc}, nil
}

// Message текст сообщения о записи
func (n *Notifier) Message(b Booking) string {
	return fmt.Sprintf("Olá! Gostaria de agendar um horário:\n\nNome: %s\nTelefone: %s\nServiço: %s\nData: %s\nHorário: %s",
		b.ClientName,
		b.PhoneNumber,
		b.ServiceName,
		format.Date(b.Start, n.location),
		format.Time(b.Start, n.location),
	)
}

// Handoff формирует сообщение и ссылку для передачи в мессенджер
func (n *Notifier) Handoff(b Booking) Handoff {
	message := n.Message(b)

	u := *n.baseURL
	u.Path = u.Path + "/" + n.destination
	// QueryEscape кодирует пробел как "+", а wa.me ожидает %20
	u.RawQuery = "text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return Handoff{Message: message, URL: u.String()}
}
