package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName  string        // Имя клиента
	PhoneNumber string        // Телефон в любом виде, нормализуется к маске
	ServiceID   string        // ID услуги
	Start       time.Time     // Начало записи
	Period      domain.Period // Период дня (опционально, иначе по часу начала)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              string
	ClientName      string
	PhoneNumber     string
	ServiceID       string
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int
	Date            time.Time
	Status          string
	CreatedAt       time.Time

	// Предзаполненное сообщение для заведения
	NotificationMessage string
	NotificationURL     string
}
