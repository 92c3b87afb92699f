package get_admin_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// ParseListParams разбирает query-параметры админского листинга.
// Отсутствующие параметры получают значения по умолчанию, нечитаемые
// булевы флаги трактуются как false.
func ParseListParams(query url.Values) *models.AdminListRequest {
	req := &models.AdminListRequest{
		Sort: query.Get("sort"),
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if v, err := strconv.ParseBool(query.Get("showDeleted")); err == nil {
		req.ShowDeleted = v
	}

	if v, err := strconv.ParseBool(query.Get("showPast")); err == nil {
		req.ShowPast = v
	}

	return req
}
