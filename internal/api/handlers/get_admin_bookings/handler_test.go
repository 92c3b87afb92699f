package get_admin_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// Mock структуры

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetAdminBookings(ctx context.Context, req *models.AdminListRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestParseListParams(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		expected models.AdminListRequest
	}{
		{
			name:     "Defaults",
			query:    "",
			expected: models.AdminListRequest{},
		},
		{
			name:  "All params",
			query: "sort=status&status=pending&showDeleted=true&showPast=true",
			expected: models.AdminListRequest{
				Sort:        "status",
				Status:      ptr.Ptr("pending"),
				ShowDeleted: true,
				ShowPast:    true,
			},
		},
		{
			name:     "Unreadable booleans fall back to false",
			query:    "showDeleted=yep&showPast=",
			expected: models.AdminListRequest{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			assert.NoError(t, err)

			got := ParseListParams(values)
			assert.Equal(t, tc.expected, *got)
		})
	}
}

// Листинг отдаётся как JSON массив проекций
func TestGetAdminBookingsHandler_Success(t *testing.T) {
	mockSvc := &MockBookingService{}
	handler := NewHandler(mockSvc, nopLogger{})

	resp := &models.BookingListResponse{
		Bookings: []models.BookingView{
			{ID: 1, StartTime: "2026-04-01T10:00:00Z", EndTime: "2026-04-01T11:00:00Z", Status: "available"},
		},
	}
	mockSvc.On("GetAdminBookings", mock.Anything, mock.Anything).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/booking/admin?sort=id&showPast=true", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var views []models.BookingView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].ID)

	mockSvc.AssertExpectations(t)
}

// Неизвестный статус в фильтре отдаёт 400
func TestGetAdminBookingsHandler_InvalidStatus(t *testing.T) {
	mockSvc := &MockBookingService{}
	handler := NewHandler(mockSvc, nopLogger{})

	mockSvc.On("GetAdminBookings", mock.Anything, mock.Anything).
		Return(nil, bookings.ErrInvalidStatus).Once()

	req := httptest.NewRequest(http.MethodGet, "/booking/admin?status=approved", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAdminBookingsHandler_InternalError(t *testing.T) {
	mockSvc := &MockBookingService{}
	handler := NewHandler(mockSvc, nopLogger{})

	mockSvc.On("GetAdminBookings", mock.Anything, mock.Anything).
		Return(nil, errors.New("boom")).Once()

	req := httptest.NewRequest(http.MethodGet, "/booking/admin", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
