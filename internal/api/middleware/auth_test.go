package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return BasicAuth("admin", "secret")(next)
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/booking/admin", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBasicAuth_MissingCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/booking/admin", nil)
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/booking/admin", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBasicAuth_WrongUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/booking/admin", nil)
	req.SetBasicAuth("root", "secret")
	rec := httptest.NewRecorder()

	protectedHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/booking/public", nil)
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, captured)
	assert.Equal(t, captured, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_PreservesClientValue(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/booking/public", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rec := httptest.NewRecorder()

	RequestID(next).ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", captured)
	assert.Equal(t, "client-supplied-id", rec.Header().Get("X-Request-ID"))
}
