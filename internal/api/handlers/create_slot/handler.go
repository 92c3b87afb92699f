package create_slot

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации данных слота"
)

type Handler struct {
	useCase CreateSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /booking/admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/admin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаём слот
	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if handlers.IsValidationError(err) {
			h.logger.Warn("POST /booking/admin - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgValidationFailed, err)
			return
		}
		h.logger.Error("POST /booking/admin - Failed to create slot: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking/admin - Slot created successfully: booking_id=%d", resp.ID)
	handlers.RespondNoContent(w)
}
