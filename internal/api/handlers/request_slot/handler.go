package request_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/request_slot"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации данных заявителя"
	msgNotFound           = "слот не найден"
	msgNotAvailable       = "слот уже занят"
)

type Handler struct {
	useCase RequestSlotUseCase
	logger  Logger
}

func NewHandler(useCase RequestSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /booking/request/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /booking/request/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Декодируем body
	var req RequestSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /booking/request/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Запрашиваем слот
	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case handlers.IsValidationError(err):
			h.logger.Warn("PATCH /booking/request/{id} - Validation failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondValidationError(w, msgValidationFailed, err)

		case errors.Is(err, request_slot.ErrBookingNotFound):
			h.logger.Warn("PATCH /booking/request/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, request_slot.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /booking/request/{id} - Slot not available: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotAvailable)

		default:
			h.logger.Error("PATCH /booking/request/{id} - Failed to request slot: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /booking/request/{id} - Slot requested successfully: booking_id=%d, status=%s",
		resp.ID, resp.Status)
	handlers.RespondNoContent(w)
}
