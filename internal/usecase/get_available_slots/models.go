package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string        // ID услуги
	Date      string        // Дата в формате YYYY-MM-DD
	Period    domain.Period // morning или afternoon
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      string        // Дата, на которую запрашивались слоты
	ServiceID string        // ID услуги
	Period    domain.Period // Период дня
	Slots     []Slot        // Список доступных слотов по возрастанию
}

// Slot модель временного слота
type Slot struct {
	Start time.Time // Начало слота
	Time  string    // Время начала в формате HH:MM
}
