package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking slot
type BookingStatus string

const (
	StatusAvailable BookingStatus = "available"
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents an appointment slot in the system.
// A slot is created empty (status "available") and the requester fields
// are populated exactly once, when a visitor claims it.
type Booking struct {
	ID int64

	// Requester fields, nil until the slot has been requested
	Name  *string
	Email *string
	Phone *string
	Topic *string
	Notes *string

	StartTime time.Time
	EndTime   time.Time

	Status  BookingStatus
	Deleted bool

	CreatedAt time.Time
}

// IsTerminal returns true if no further lifecycle transitions are expected
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusConfirmed ||
		b.Status == StatusRejected ||
		b.Status == StatusCancelled
}

// IsRequestable returns true if the slot can still be claimed by a visitor
func (b *Booking) IsRequestable() bool {
	return b.Status == StatusAvailable && !b.Deleted
}

// HasRequesterEmail returns true if an email address is on file
func (b *Booking) HasRequesterEmail() bool {
	return b.Email != nil && *b.Email != ""
}

// ApplyRequest copies requester info onto the booking.
// Called exactly once, during the available -> pending transition.
func (b *Booking) ApplyRequest(info RequesterInfo) {
	b.Name = &info.Name
	b.Email = &info.Email
	b.Phone = info.Phone
	b.Topic = info.Topic
	b.Notes = info.Notes
	b.Status = StatusPending
}

// RequesterInfo carries the visitor fields attached during the request transition
type RequesterInfo struct {
	Name  string
	Email string
	Phone *string
	Topic *string
	Notes *string
}

// ParseBookingStatus validates a raw status value against the enumeration.
// Matching is case-insensitive: clients send both "confirmed" and the
// enum-name form "CONFIRMED"; internally the lowercase value is canonical.
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	for _, valid := range AllStatuses {
		if strings.EqualFold(raw, string(valid)) {
			return valid, true
		}
	}
	return "", false
}

// BookingListFilter описывает один запрос листинга бронирований.
// Все пути чтения (публичная витрина и админский листинг) собираются
// в этот объект и уходят в единый построитель запроса репозитория.
type BookingListFilter struct {
	Status     *BookingStatus // Точное совпадение по статусу (опционально)
	Deleted    bool           // Точное совпадение по флагу soft-delete
	FutureOnly bool           // Только бронирования со start_time строго в будущем
	SortField  string         // Колонка сортировки (уже нормализованная)
}
