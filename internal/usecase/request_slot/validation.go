package request_slot

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
)

var phoneRegexp = regexp.MustCompile(domain.PhonePattern)

// validateRequest валидирует данные заявителя.
// Имя и email обязательны, телефон опционален, но при наличии должен
// состоять из 7-15 цифр с необязательным ведущим плюсом.
func validateRequest(req *Request) error {
	var errs validation.Errors

	if strings.TrimSpace(req.Name) == "" {
		errs.Add("name", validation.KindMissingField, "Name is required")
	}

	if strings.TrimSpace(req.Email) == "" {
		errs.Add("email", validation.KindMissingField, "Email is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs.Add("email", validation.KindMalformedField, "Must be a valid email address")
	}

	if req.Phone != nil && *req.Phone != "" && !phoneRegexp.MatchString(*req.Phone) {
		errs.Add("phone", validation.KindMalformedField, "Must be a valid phone number containing 7-15 digits")
	}

	return errs.Err()
}
