package update_status

import (
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
)

// validateRequest валидирует запрос смены статуса.
// Возвращает распознанный статус, если валидация прошла.
func validateRequest(req *Request) (domain.BookingStatus, error) {
	var errs validation.Errors

	raw := strings.TrimSpace(req.Status)
	if raw == "" {
		errs.Add("status", validation.KindMissingField, "Status is required")
		return "", errs.Err()
	}

	status, ok := domain.ParseBookingStatus(raw)
	if !ok {
		errs.Add("status", validation.KindMalformedField, "Must be one of: available, pending, confirmed, rejected, cancelled")
		return "", errs.Err()
	}

	return status, nil
}
