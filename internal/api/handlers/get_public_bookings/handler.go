package get_public_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

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

// Handle GET /booking/public
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetPublicBookings(r.Context())
	if err != nil {
		h.logger.Error("GET /booking/public - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booking/public - Fetched %d available slots", len(resp.Bookings))
	handlers.RespondJSON(w, http.StatusOK, resp.Bookings)
}
