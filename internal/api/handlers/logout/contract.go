package logout

import "context"

type SessionService interface {
	Logout(ctx context.Context, sessionID string) error
}

// BoardRegistry состояние экрана бронирований, привязанное к сессии
type BoardRegistry interface {
	Forget(sessionID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
