package request_slot

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/usecase/request_slot"
)

type RequestSlotUseCase interface {
	Execute(ctx context.Context, req *request_slot.Request) (*request_slot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
