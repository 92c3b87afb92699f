// Package validation — структурные ошибки валидации входных данных.
// Все нарушения собираются вместе и отдаются наружу единой картой
// "поле -> сообщение", без короткого замыкания на первой ошибке.
package validation

import (
	"errors"
	"strings"
)

// Kind вид нарушения валидации
type Kind string

const (
	KindMissingField     Kind = "MISSING_FIELD"
	KindMalformedField   Kind = "MALFORMED_FIELD"
	KindTimeRangeInvalid Kind = "TIME_RANGE_INVALID"
)

// FieldError нарушение валидации одного поля
type FieldError struct {
	Field   string
	Kind    Kind
	Message string
}

// Errors набор нарушений валидации, реализует error
type Errors struct {
	fields []FieldError
}

// Add добавляет нарушение в набор
func (e *Errors) Add(field string, kind Kind, message string) {
	e.fields = append(e.fields, FieldError{Field: field, Kind: kind, Message: message})
}

// HasErrors сообщает, были ли нарушения
func (e *Errors) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields возвращает карту "поле -> сообщение" для тела ответа 400.
// Если одно поле нарушено несколько раз, остаётся первое сообщение.
func (e *Errors) Fields() map[string]string {
	out := make(map[string]string, len(e.fields))
	for _, fe := range e.fields {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// All возвращает все нарушения в порядке добавления
func (e *Errors) All() []FieldError {
	return e.fields
}

// Err возвращает e как error, либо nil, если нарушений нет
func (e *Errors) Err() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Error реализует интерфейс error
func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, fe := range e.fields {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsErrors извлекает *Errors из произвольной ошибки, включая обёрнутые
func AsErrors(err error) (*Errors, bool) {
	var ve *Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
