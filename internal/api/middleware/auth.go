package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
)

// LoginPath страница входа, куда уходят неаутентифицированные посетители
const LoginPath = "/login"

// SessionResolver интерфейс проверки сессии
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*session.Session, error)
}

// BoardRegistry состояние экрана бронирований, привязанное к сессии
type BoardRegistry interface {
	Forget(sessionID string)
}

// SessionGuard пропускает запрос дальше только с действующей сессией
// Без токена или профиля посетитель уходит на /login, обработчик не вызывается
// Состояние экрана мертвой сессии освобождается сразу
func SessionGuard(resolver SessionResolver, boards BoardRegistry, cookie handlers.SessionCookie, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := cookie.Read(r)
			sess, err := resolver.Resolve(r.Context(), sessionID)
			if err != nil {
				switch {
				case errors.Is(err, session.ErrUnauthenticated):
					log.Info("%s %s - No session, redirecting to login", r.Method, r.URL.Path)
					if sessionID != "" {
						boards.Forget(sessionID)
					}
				case errors.Is(err, session.ErrMalformedProfile):
					log.Warn("%s %s - Malformed session profile, redirecting to login", r.Method, r.URL.Path)
					boards.Forget(sessionID)
					cookie.Clear(w)
				default:
					log.Error("%s %s - Failed to resolve session: %v", r.Method, r.URL.Path, err)
				}
				handlers.SeeOther(w, r, LoginPath)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}
