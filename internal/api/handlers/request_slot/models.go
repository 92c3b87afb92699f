package request_slot

import (
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/request_slot"
)

// RequestSlotRequest HTTP request model
type RequestSlotRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Topic *string `json:"topic,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *RequestSlotRequest) ToUseCaseRequest(bookingID int64) *request_slot.Request {
	return &request_slot.Request{
		ID:    bookingID,
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Topic: r.Topic,
		Notes: r.Notes,
	}
}
