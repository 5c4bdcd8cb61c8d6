package session

import (
	"context"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
)

// Session аутентифицированная сессия оператора
type Session struct {
	ID    string
	Token string
	User  domain.User
}

// LoginInput поля формы входа
type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// RegisterInput поля формы регистрации
type RegisterInput struct {
	Name         string `validate:"required"`
	Email        string `validate:"required"`
	Password     string `validate:"required"`
	BusinessName string `validate:"required"`
	BusinessType string
}

func (in LoginInput) toAPI() receptionistapi.LoginRequest {
	return receptionistapi.LoginRequest{Email: in.Email, Password: in.Password}
}

// toAPI подставляет первый тип бизнеса, если значение не выбрано или неизвестно
func (in RegisterInput) toAPI() receptionistapi.RegisterRequest {
	businessType := in.BusinessType
	if !domain.IsKnownBusinessType(businessType) {
		businessType = domain.BusinessTypes[0].Value
	}
	return receptionistapi.RegisterRequest{
		Name:         in.Name,
		Email:        in.Email,
		Password:     in.Password,
		BusinessName: in.BusinessName,
		BusinessType: businessType,
	}
}

type ctxKey struct{}

// WithSession кладет сессию в контекст запроса
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext достает сессию, положенную middleware
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
