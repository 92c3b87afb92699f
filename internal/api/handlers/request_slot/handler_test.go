package request_slot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	requestSlotUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/request_slot"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
)

// Mock структуры

type MockRequestSlotUseCase struct {
	mock.Mock
}

func (m *MockRequestSlotUseCase) Execute(ctx context.Context, req *requestSlotUC.Request) (*requestSlotUC.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requestSlotUC.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/booking/request/{bookingId}", h.Handle).Methods(http.MethodPatch)
	return r
}

const validBody = `{"name":"Jane Smith","email":"jane@example.com","phone":"+441234567890"}`

// Тест 1: Успешная заявка отдаёт 204
func TestRequestSlotHandler_Success(t *testing.T) {
	mockUC := &MockRequestSlotUseCase{}
	handler := NewHandler(mockUC, nopLogger{})

	mockUC.On("Execute", mock.Anything, mock.MatchedBy(func(req *requestSlotUC.Request) bool {
		return req.ID == 7 && req.Name == "Jane Smith" && req.Email == "jane@example.com"
	})).Return(&requestSlotUC.Response{ID: 7, Status: "pending"}, nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/booking/request/7", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockUC.AssertExpectations(t)
}

// Тест 2: Нечисловой ID отдаёт 400
func TestRequestSlotHandler_InvalidID(t *testing.T) {
	mockUC := &MockRequestSlotUseCase{}
	handler := NewHandler(mockUC, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/booking/request/abc", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUC.AssertNotCalled(t, "Execute")
}

// Тест 3: Ошибки валидации отдают 400 с пополевой разбивкой
func TestRequestSlotHandler_ValidationErrors(t *testing.T) {
	mockUC := &MockRequestSlotUseCase{}
	handler := NewHandler(mockUC, nopLogger{})

	var verrs validation.Errors
	verrs.Add("email", validation.KindMalformedField, "Must be a valid email address")
	mockUC.On("Execute", mock.Anything, mock.Anything).Return(nil, verrs.Err()).Once()

	req := httptest.NewRequest(http.MethodPatch, "/booking/request/7",
		strings.NewReader(`{"name":"Jane","email":"bad"}`))
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Must be a valid email address", body.Fields["email"])
}

// Тест 4: Слот не найден отдаёт 404
func TestRequestSlotHandler_NotFound(t *testing.T) {
	mockUC := &MockRequestSlotUseCase{}
	handler := NewHandler(mockUC, nopLogger{})

	mockUC.On("Execute", mock.Anything, mock.Anything).Return(nil, requestSlotUC.ErrBookingNotFound).Once()

	req := httptest.NewRequest(http.MethodPatch, "/booking/request/99", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Тест 5: Занятый слот отдаёт 409
func TestRequestSlotHandler_Conflict(t *testing.T) {
	mockUC := &MockRequestSlotUseCase{}
	handler := NewHandler(mockUC, nopLogger{})

	mockUC.On("Execute", mock.Anything, mock.Anything).Return(nil, requestSlotUC.ErrSlotNotAvailable).Once()

	req := httptest.NewRequest(http.MethodPatch, "/booking/request/7", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// Тест 6: Внутренняя ошибка отдаёт 500
func TestRequestSlotHandler_InternalError(t *testing.T) {
	mockUC := &MockRequestSlotUseCase{}
	handler := NewHandler(mockUC, nopLogger{})

	mockUC.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	req := httptest.NewRequest(http.MethodPatch, "/booking/request/7", strings.NewReader(validBody))
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Тест 7: Некорректный JSON отдаёт 400
func TestRequestSlotHandler_MalformedBody(t *testing.T) {
	mockUC := &MockRequestSlotUseCase{}
	handler := NewHandler(mockUC, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/booking/request/7", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	newRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUC.AssertNotCalled(t, "Execute")
}
