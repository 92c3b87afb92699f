package update_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
)

// UseCase use case смены статуса бронирования администратором
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет use case смены статуса.
// Администратор может назначить любой валидный статус независимо от
// текущего: откат решения или реанимация отменённой записи допустимы.
// Уведомление уходит после коммита, если у бронирования есть email заявителя.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateStatus: booking id=%d, status=%s", req.ID, req.Status)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateStatus: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Загружаем бронирование и меняем статус в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateStatus: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.Deleted {
			return ErrBookingNotFound
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.ID, status); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateStatus: failed to update booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = status
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateStatus: booking id=%d status set to %s", result.ID, result.Status)

	// 3. Уведомляем заявителя (best-effort, сервис сам пропустит слоты без email)
	if err := uc.notifier.BookingUpdated(ctx, result); err != nil {
		uc.logger.Error("UpdateStatus: notification failed for booking id=%d: %v", result.ID, err)
	}

	return toResponse(result), nil
}
