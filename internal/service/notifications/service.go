// Package notifications отображает переходы жизненного цикла бронирования
// в исходящие письма. Диспетчеризация вызывается после коммита транзакции:
// ошибка отправки логируется и не откатывает уже сохранённый переход.
package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailservice"
)

const placeholderNone = "(none)"

// Service диспетчер уведомлений о переходах бронирования
type Service struct {
	mailClient MailServiceClient
	adminEmail string
	location   *time.Location
	logger     Logger
}

// NewService создает новый диспетчер уведомлений.
// displayTimeZone — таймзона, в которой форматируются времена слота
// в теле письма (например "Europe/London").
func NewService(mailClient MailServiceClient, adminEmail, displayTimeZone string, logger Logger) (*Service, error) {
	if displayTimeZone == "" {
		displayTimeZone = domain.DefaultDisplayTimeZone
	}

	loc, err := time.LoadLocation(displayTimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTimeZone, displayTimeZone, err)
	}

	return &Service{
		mailClient: mailClient,
		adminEmail: adminEmail,
		location:   loc,
		logger:     logger,
	}, nil
}

// BookingRequested отправляет уведомление о новой заявке на слот.
// Письмо уходит и администратору, и заявителю.
func (s *Service) BookingRequested(ctx context.Context, booking *domain.Booking) error {
	subject := fmt.Sprintf("Booking requested: %s", s.formatTime(booking.StartTime))
	body := s.buildBookingDetailsBody(booking)

	var failed bool

	if err := s.send(ctx, s.adminEmail, subject, body); err != nil {
		s.logger.Error("BookingRequested: failed to notify admin for booking id=%d: %v", booking.ID, err)
		failed = true
	}

	if booking.HasRequesterEmail() {
		if err := s.send(ctx, *booking.Email, subject, body); err != nil {
			s.logger.Error("BookingRequested: failed to notify requester for booking id=%d: %v", booking.ID, err)
			failed = true
		}
	}

	if failed {
		return ErrSendFailed
	}

	s.logger.Info("BookingRequested: notifications sent for booking id=%d", booking.ID)
	return nil
}

// BookingUpdated отправляет заявителю уведомление об изменении статуса.
// Если email заявителя отсутствует, отправка молча пропускается — это
// штатная ситуация для слота, который никто ещё не запрашивал.
func (s *Service) BookingUpdated(ctx context.Context, booking *domain.Booking) error {
	if !booking.HasRequesterEmail() {
		s.logger.Info("BookingUpdated: booking id=%d has no requester email, skipping", booking.ID)
		return nil
	}

	subject := fmt.Sprintf("Booking Updated: %s", booking.Status)
	body := s.buildBookingDetailsBody(booking)

	if err := s.send(ctx, *booking.Email, subject, body); err != nil {
		s.logger.Error("BookingUpdated: failed to notify requester for booking id=%d: %v", booking.ID, err)
		return ErrSendFailed
	}

	s.logger.Info("BookingUpdated: notification sent for booking id=%d, status=%s", booking.ID, booking.Status)
	return nil
}

func (s *Service) send(ctx context.Context, to, subject, body string) error {
	return s.mailClient.Send(ctx, mailservice.Message{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

// buildBookingDetailsBody собирает текст письма с деталями бронирования
func (s *Service) buildBookingDetailsBody(booking *domain.Booking) string {
	return fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nTopic: %s\nNotes: %s\nStart: %s\nEnd: %s\nStatus: %s\n",
		orPlaceholder(booking.Name),
		orPlaceholder(booking.Email),
		orPlaceholder(booking.Phone),
		orPlaceholder(booking.Topic),
		orPlaceholder(booking.Notes),
		s.formatTime(booking.StartTime),
		s.formatTime(booking.EndTime),
		booking.Status,
	)
}

func (s *Service) formatTime(t time.Time) string {
	return t.In(s.location).Format(domain.DisplayTimeFormat)
}

func orPlaceholder(v *string) string {
	if v == nil || *v == "" {
		return placeholderNone
	}
	return *v
}
