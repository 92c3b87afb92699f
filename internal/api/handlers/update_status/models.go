package update_status

import (
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/update_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *UpdateStatusRequest) ToUseCaseRequest(bookingID int64) *update_status.Request {
	return &update_status.Request{
		ID:     bookingID,
		Status: r.Status,
	}
}
