package request_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ApplyRequest(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// fakeTxManager прозрачно выполняет callback без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingRequested(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func availableSlot(id int64) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		StartTime: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 4, 1, 11, 0, 0, 0, time.UTC),
		Status:    domain.StatusAvailable,
	}
}

func validRequest(id int64) *Request {
	return &Request{
		ID:    id,
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Phone: ptr.Ptr("+441234567890"),
		Topic: ptr.Ptr("Consultation"),
	}
}

// Тест 1: Запрос слота - успешный сценарий
func TestRequestSlot_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	txMgr := &fakeTxManager{}
	mockNotifier := &MockNotifier{}

	uc := NewUseCase(mockRepo, txMgr, mockNotifier, nopLogger{})

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(7)).Return(availableSlot(7), nil).Once()
	mockRepo.On("ApplyRequest", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockNotifier.On("BookingRequested", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()

	resp, err := uc.Execute(ctx, validRequest(7))

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Jane Smith", *resp.Name)
	assert.Equal(t, "jane@example.com", *resp.Email)
	assert.Equal(t, 1, txMgr.calls)

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

// Тест 2: Запрос слота - ошибки валидации
func TestRequestSlot_ValidationErrors(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, &fakeTxManager{}, &MockNotifier{}, nopLogger{})

	ctx := context.Background()

	testCases := []struct {
		name          string
		req           *Request
		expectedField string
		expectedMsg   string
	}{
		{
			name:          "Missing name",
			req:           &Request{ID: 1, Email: "jane@example.com"},
			expectedField: "name",
			expectedMsg:   "Name is required",
		},
		{
			name:          "Missing email",
			req:           &Request{ID: 1, Name: "Jane"},
			expectedField: "email",
			expectedMsg:   "Email is required",
		},
		{
			name:          "Malformed email",
			req:           &Request{ID: 1, Name: "Jane", Email: "not-an-email"},
			expectedField: "email",
			expectedMsg:   "Must be a valid email address",
		},
		{
			name: "Malformed phone",
			req: &Request{
				ID: 1, Name: "Jane", Email: "jane@example.com",
				Phone: ptr.Ptr("12ab34"),
			},
			expectedField: "phone",
			expectedMsg:   "Must be a valid phone number containing 7-15 digits",
		},
		{
			name: "Phone too short",
			req: &Request{
				ID: 1, Name: "Jane", Email: "jane@example.com",
				Phone: ptr.Ptr("+12345"),
			},
			expectedField: "phone",
			expectedMsg:   "Must be a valid phone number containing 7-15 digits",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, tc.req)

			assert.Error(t, err)
			assert.Nil(t, resp)

			verrs, ok := validation.AsErrors(err)
			assert.True(t, ok)
			assert.Equal(t, tc.expectedMsg, verrs.Fields()[tc.expectedField])
		})
	}

	mockRepo.AssertNotCalled(t, "GetByID")
}

// Тест 3: Запрос слота - слот не найден
func TestRequestSlot_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	uc := NewUseCase(mockRepo, &fakeTxManager{}, mockNotifier, nopLogger{})

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound).Once()

	resp, err := uc.Execute(ctx, validRequest(99))

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrBookingNotFound))

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "ApplyRequest")
	mockNotifier.AssertNotCalled(t, "BookingRequested")
}

// Тест 4: Запрос слота - удалённый слот трактуется как не найденный
func TestRequestSlot_DeletedTreatedAsNotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	uc := NewUseCase(mockRepo, &fakeTxManager{}, &MockNotifier{}, nopLogger{})

	deleted := availableSlot(5)
	deleted.Deleted = true

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(5)).Return(deleted, nil).Once()

	resp, err := uc.Execute(ctx, validRequest(5))

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrBookingNotFound))

	mockRepo.AssertNotCalled(t, "ApplyRequest")
}

// Тест 5: Запрос слота - слот уже занят
func TestRequestSlot_NotAvailable(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	uc := NewUseCase(mockRepo, &fakeTxManager{}, mockNotifier, nopLogger{})

	pending := availableSlot(3)
	pending.Status = domain.StatusPending

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(3)).Return(pending, nil).Once()

	resp, err := uc.Execute(ctx, validRequest(3))

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrSlotNotAvailable))

	mockRepo.AssertNotCalled(t, "ApplyRequest")
	mockNotifier.AssertNotCalled(t, "BookingRequested")
}

// Тест 6: Запрос слота - ошибка уведомления не ломает операцию
func TestRequestSlot_NotificationFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	uc := NewUseCase(mockRepo, &fakeTxManager{}, mockNotifier, nopLogger{})

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(7)).Return(availableSlot(7), nil).Once()
	mockRepo.On("ApplyRequest", ctx, mock.Anything).Return(nil).Once()
	mockNotifier.On("BookingRequested", ctx, mock.Anything).Return(errors.New("smtp down")).Once()

	resp, err := uc.Execute(ctx, validRequest(7))

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	mockNotifier.AssertExpectations(t)
}

// Тест 7: Запрос слота - ошибка сохранения откатывает операцию
func TestRequestSlot_ApplyRequestError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	uc := NewUseCase(mockRepo, &fakeTxManager{}, mockNotifier, nopLogger{})

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(7)).Return(availableSlot(7), nil).Once()
	mockRepo.On("ApplyRequest", ctx, mock.Anything).Return(errors.New("database error")).Once()

	resp, err := uc.Execute(ctx, validRequest(7))

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrInternal))

	mockNotifier.AssertNotCalled(t, "BookingRequested")
}
