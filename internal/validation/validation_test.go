package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Empty(t *testing.T) {
	var errs Errors

	assert.False(t, errs.HasErrors())
	assert.NoError(t, errs.Err())
	assert.Empty(t, errs.Fields())
}

func TestErrors_CollectsAllViolations(t *testing.T) {
	var errs Errors
	errs.Add("name", KindMissingField, "Name is required")
	errs.Add("email", KindMalformedField, "Must be a valid email address")

	assert.True(t, errs.HasErrors())
	assert.Len(t, errs.All(), 2)

	fields := errs.Fields()
	assert.Equal(t, "Name is required", fields["name"])
	assert.Equal(t, "Must be a valid email address", fields["email"])
}

// Если одно поле нарушено дважды, в карте остаётся первое сообщение
func TestErrors_FirstMessagePerFieldWins(t *testing.T) {
	var errs Errors
	errs.Add("startTime", KindMissingField, "Start time is required")
	errs.Add("startTime", KindTimeRangeInvalid, "Start time must be in the future")

	fields := errs.Fields()
	assert.Len(t, fields, 1)
	assert.Equal(t, "Start time is required", fields["startTime"])
}

func TestErrors_ErrorMessage(t *testing.T) {
	var errs Errors
	errs.Add("status", KindMalformedField, "unknown status")

	assert.Contains(t, errs.Error(), "validation failed")
	assert.Contains(t, errs.Error(), "status: unknown status")
}

func TestAsErrors_Wrapped(t *testing.T) {
	var errs Errors
	errs.Add("email", KindMissingField, "Email is required")

	wrapped := fmt.Errorf("usecase failed: %w", errs.Err())

	got, ok := AsErrors(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Email is required", got.Fields()["email"])
}

func TestAsErrors_NotValidationError(t *testing.T) {
	_, ok := AsErrors(fmt.Errorf("plain error"))
	assert.False(t, ok)
}
