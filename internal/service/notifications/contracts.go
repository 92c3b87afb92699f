package notifications

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailservice"
)

// MailServiceClient интерфейс клиента почтового шлюза
type MailServiceClient interface {
	Send(ctx context.Context, msg mailservice.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
