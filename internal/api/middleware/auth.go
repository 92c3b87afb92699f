package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const msgUnauthorized = "требуется аутентификация"

// BasicAuth закрывает админские маршруты HTTP Basic аутентификацией.
// Сравнение учётных данных выполняется за константное время.
func BasicAuth(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !secureEquals(user, username) || !secureEquals(pass, password) {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func secureEquals(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
