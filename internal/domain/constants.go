package domain

// Default query engine configuration.
// These are defaults only: the query engine receives the allow-list and
// default sort as an injected configuration value, so tests can vary them.
var DefaultSortFields = []string{"id", "status", "startTime"}

const DefaultSortField = "id"

// Display settings for notification bodies
const (
	DefaultDisplayTimeZone = "Europe/London"
	DisplayTimeFormat      = "Mon, 02 Jan 2006 15:04 MST"
)

// PhonePattern accepts an optional leading plus and 7-15 digits
const PhonePattern = `^[+]?\d{7,15}$`

// AllStatuses перечисляет допустимые статусы бронирования.
// Используется при валидации статуса из внешнего запроса.
var AllStatuses = []BookingStatus{
	StatusAvailable,
	StatusPending,
	StatusConfirmed,
	StatusRejected,
	StatusCancelled,
}
