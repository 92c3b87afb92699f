package request_slot

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("request_slot: booking not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят или снят
	ErrSlotNotAvailable = errors.New("request_slot: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_slot: internal error")
)
