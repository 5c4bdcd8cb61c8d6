package session

import (
	"context"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
)

// AuthClient интерфейс клиента API для входа и регистрации
type AuthClient interface {
	Login(ctx context.Context, req receptionistapi.LoginRequest) (*receptionistapi.AuthResponse, error)
	Register(ctx context.Context, req receptionistapi.RegisterRequest) (*receptionistapi.AuthResponse, error)
}

// SlotStore интерфейс хранилища слотов сессии
type SlotStore interface {
	Get(ctx context.Context, sessionID, slot string) (string, error)
	Set(ctx context.Context, sessionID, slot, value string) error
	Clear(ctx context.Context, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
