package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AdminListRequest параметры админского листинга бронирований
type AdminListRequest struct {
	Sort        string  // Поле сортировки, вне allow-list откатывается на дефолт
	Status      *string // Точный фильтр по статусу (опционально)
	ShowDeleted bool    // Показывать помеченные удалёнными записи
	ShowPast    bool    // Включать бронирования с уже прошедшим start_time
}

// BookingView проекция бронирования, отдаваемая наружу
type BookingView struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Topic     *string `json:"topic,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Status    string  `json:"status"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingView `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в проекцию
func FromDomainBooking(b *domain.Booking) *BookingView {
	if b == nil {
		return nil
	}

	return &BookingView{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		StartTime: b.StartTime.Format(time.RFC3339),
		EndTime:   b.EndTime.Format(time.RFC3339),
		Topic:     b.Topic,
		Notes:     b.Notes,
		Status:    string(b.Status),
	}
}

// FromDomainBookingList конвертирует список domain моделей в проекции
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingView, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if view := FromDomainBooking(booking); view != nil {
			resp.Bookings = append(resp.Bookings, *view)
		}
	}

	return resp
}
