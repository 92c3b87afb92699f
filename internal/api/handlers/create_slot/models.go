package create_slot

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/usecase/create_slot"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateSlotRequest) ToUseCaseRequest() *create_slot.Request {
	return &create_slot.Request{
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
