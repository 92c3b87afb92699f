package create_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case публикации доступного слота
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case публикации слота.
// Слот создаётся пустым, в статусе available; данные заявителя
// появляются позже, при переходе available -> pending.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSlot: start=%s, end=%s",
		req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем слот в статусе available
	booking := &domain.Booking{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.StatusAvailable,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateSlot: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSlot: successfully created slot id=%d", created.ID)

	return &Response{
		ID:        created.ID,
		StartTime: created.StartTime,
		EndTime:   created.EndTime,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}
