package update_status

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса смены статуса бронирования
type Request struct {
	ID     int64  // ID бронирования
	Status string // Новый статус
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Status    string
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
	}
}
