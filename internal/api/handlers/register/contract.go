package register

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

type SessionService interface {
	Register(ctx context.Context, in session.RegisterInput) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// BoardRegistry состояние экрана бронирований, привязанное к сессии
type BoardRegistry interface {
	Forget(sessionID string)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data web.Page) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
