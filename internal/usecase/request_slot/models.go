package request_slot

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса слота посетителем
type Request struct {
	ID    int64   // ID запрашиваемого слота
	Name  string  // Имя заявителя
	Email string  // Email заявителя
	Phone *string // Телефон (опционально)
	Topic *string // Тема встречи (опционально)
	Notes *string // Заметки (опционально)
}

// RequesterInfo конвертирует запрос в domain модель заявителя
func (r *Request) RequesterInfo() domain.RequesterInfo {
	return domain.RequesterInfo{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Topic: r.Topic,
		Notes: r.Notes,
	}
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID        int64
	Name      *string
	Email     *string
	Phone     *string
	Topic     *string
	Notes     *string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	CreatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Topic:     b.Topic,
		Notes:     b.Notes,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}
