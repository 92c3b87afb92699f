package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/validation"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse стандартное тело ошибки
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse тело ответа при ошибках валидации.
// Fields содержит по одному сообщению на каждое невалидное поле.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer io.Copy(io.Discard, r.Body)
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON пишет JSON ответ с указанным статусом.
// При payload == nil пишется только статус.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondNoContent пишет 204 No Content
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondBadRequest пишет 400 Bad Request с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Message: message})
}

// RespondValidationError пишет 400 Bad Request с пополевой разбивкой,
// если err содержит ошибки валидации, иначе только сообщение.
func RespondValidationError(w http.ResponseWriter, message string, err error) {
	if verrs, ok := validation.AsErrors(err); ok {
		RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Message: message,
			Fields:  verrs.Fields(),
		})
		return
	}
	RespondBadRequest(w, message)
}

// RespondUnauthorized пишет 401 Unauthorized с заголовком WWW-Authenticate
func RespondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="restricted"`)
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Message: message})
}

// RespondNotFound пишет 404 Not Found с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Message: message})
}

// RespondConflict пишет 409 Conflict с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Message: message})
}

// RespondInternalError пишет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msgInternalError})
}

// IsValidationError проверяет, является ли err ошибкой валидации
func IsValidationError(err error) bool {
	var verrs *validation.Errors
	return errors.As(err, &verrs)
}
