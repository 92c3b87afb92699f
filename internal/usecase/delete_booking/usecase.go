package delete_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
)

// UseCase use case удаления бронирования администратором
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет мягкое удаление бронирования.
// Запись остаётся в таблице с пометкой deleted и видна администратору
// через showDeleted. Повторное удаление трактуется как not found.
func (uc *UseCase) Execute(ctx context.Context, id int64) error {
	uc.logger.Info("DeleteBooking: booking id=%d", id)

	if err := uc.bookingRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("DeleteBooking: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		uc.logger.Error("DeleteBooking: failed to delete booking id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.logger.Info("DeleteBooking: booking id=%d marked as deleted", id)
	return nil
}
