package request_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
)

// UseCase use case запроса слота посетителем
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

// Execute выполняет use case запроса слота.
// Переход available -> pending выполняется в сериализуемой транзакции:
// два конкурентных запроса одного слота не могут оба увидеть available.
// Уведомление уходит после коммита и не влияет на результат операции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestSlot: booking id=%d, email=%s", req.ID, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем load-check-mutate-save в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем бронирование (строка блокируется FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RequestSlot: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Помеченное удалённым бронирование наружу не существует
		if booking.Deleted {
			return ErrBookingNotFound
		}

		// 2.2. Guard перехода: слот должен быть свободен
		if booking.Status != domain.StatusAvailable {
			uc.logger.Warn("RequestSlot: booking id=%d is not available, status=%s", req.ID, booking.Status)
			return ErrSlotNotAvailable
		}

		// 2.3. Привязываем данные заявителя и переводим в pending
		booking.ApplyRequest(req.RequesterInfo())

		if err := uc.bookingRepo.ApplyRequest(txCtx, booking); err != nil {
			uc.logger.Error("RequestSlot: failed to apply request for booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to apply request: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestSlot: booking id=%d is now pending", result.ID)

	// 3. Уведомляем администратора и заявителя (после коммита, best-effort)
	if err := uc.notifier.BookingRequested(ctx, result); err != nil {
		uc.logger.Error("RequestSlot: notification failed for booking id=%d: %v", result.ID, err)
	}

	return toResponse(result), nil
}
