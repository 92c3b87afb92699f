package get_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
)

const msgInvalidStatus = "некорректный статус бронирования"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /booking/admin?sort=&status=&showDeleted=&showPast=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ParseListParams(r.URL.Query())

	resp, err := h.service.GetAdminBookings(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStatus) {
			h.logger.Warn("GET /booking/admin - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /booking/admin - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking/admin - Fetched %d bookings", len(resp.Bookings))
	handlers.RespondJSON(w, http.StatusOK, resp.Bookings)
}
