package notifications

import "errors"

var (
	// ErrSendFailed возвращается, когда шлюз не принял хотя бы одно письмо
	ErrSendFailed = errors.New("notifications: failed to send message")

	// ErrInvalidTimeZone возвращается при некорректной таймзоне отображения в конфиге
	ErrInvalidTimeZone = errors.New("notifications: invalid display timezone")
)
