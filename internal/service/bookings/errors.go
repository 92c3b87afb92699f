package bookings

import "errors"

var (
	// ErrInvalidStatus возвращается при фильтре по неизвестному статусу
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
