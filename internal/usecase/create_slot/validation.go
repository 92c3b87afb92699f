package create_slot

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/validation"
)

// validateRequest валидирует входные данные запроса.
// Все нарушения собираются вместе: отсутствующие поля, времена в прошлом
// и нарушение порядка start < end (репортится на поле startTime).
func validateRequest(req *Request, now time.Time) error {
	var errs validation.Errors

	if req.StartTime.IsZero() {
		errs.Add("startTime", validation.KindMissingField, "Start time is required")
	} else if !req.StartTime.After(now) {
		errs.Add("startTime", validation.KindTimeRangeInvalid, "Start time must be in the future")
	}

	if req.EndTime.IsZero() {
		errs.Add("endTime", validation.KindMissingField, "End time is required")
	} else if !req.EndTime.After(now) {
		errs.Add("endTime", validation.KindTimeRangeInvalid, "End time must be in the future")
	}

	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.StartTime.Before(req.EndTime) {
		errs.Add("startTime", validation.KindTimeRangeInvalid, "Start time must be before end time")
	}

	return errs.Err()
}
