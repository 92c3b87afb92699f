package delete_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или уже удалено
	ErrBookingNotFound = errors.New("delete_booking: booking not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_booking: internal error")
)
