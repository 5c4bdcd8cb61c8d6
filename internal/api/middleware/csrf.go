package middleware

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
)

// CSRF защищает формы токеном gorilla/csrf
// Пустой ключ отключает проверку (локальная разработка и тесты)
func CSRF(key string, secure bool) mux.MiddlewareFunc {
	if key == "" {
		return func(next http.Handler) http.Handler { return next }
	}
	return csrf.Protect(
		[]byte(key),
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)
}
