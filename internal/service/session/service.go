package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	sessionStore "github.com/m04kA/SMC-ReceptionistDashboard/internal/infra/storage/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
)

// Service управляет сессиями операторов: вход, регистрация, выход и проверка доступа
type Service struct {
	client   AuthClient
	store    SlotStore
	validate *validator.Validate
	logger   Logger
	newID    func() string
}

// NewService создает новый экземпляр сервиса сессий
func NewService(client AuthClient, store SlotStore, logger Logger) *Service {
	return &Service{
		client:   client,
		store:    store,
		validate: validator.New(),
		logger:   logger,
		newID:    func() string { return uuid.NewString() },
	}
}

// Login выполняет вход и создает новую сессию
func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp, err := s.client.Login(ctx, in.toAPI())
	if err != nil {
		s.logger.Warn("Login: API rejected login for email=%s: %v", in.Email, err)
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	return s.open(ctx, resp)
}

// Register регистрирует оператора вместе с бизнесом и создает новую сессию
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp, err := s.client.Register(ctx, in.toAPI())
	if err != nil {
		s.logger.Warn("Register: API rejected registration for email=%s: %v", in.Email, err)
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	return s.open(ctx, resp)
}

// Logout очищает оба слота сессии
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Clear(ctx, sessionID); err != nil {
		s.logger.Error("Logout: failed to clear session: %v", err)
		return fmt.Errorf("%w: Logout - clear session: %v", ErrInternal, err)
	}
	s.logger.Info("Logout: session cleared")
	return nil
}

// Resolve читает токен и профиль сессии
// Отсутствие любого из слотов означает ErrUnauthenticated
// Нечитаемый профиль очищает сессию и возвращает ErrMalformedProfile
func (s *Service) Resolve(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, ErrUnauthenticated
	}

	token, err := s.readSlot(ctx, sessionID, sessionStore.SlotToken)
	if err != nil {
		return nil, err
	}
	rawUser, err := s.readSlot(ctx, sessionID, sessionStore.SlotUser)
	if err != nil {
		return nil, err
	}

	sess := &Session{ID: sessionID, Token: token}
	if err := json.Unmarshal([]byte(rawUser), &sess.User); err != nil {
		s.logger.Warn("Resolve: malformed user profile, clearing session: %v", err)
		if clearErr := s.store.Clear(ctx, sessionID); clearErr != nil {
			s.logger.Error("Resolve: failed to clear session: %v", clearErr)
		}
		return nil, ErrMalformedProfile
	}

	return sess, nil
}

func (s *Service) readSlot(ctx context.Context, sessionID, slot string) (string, error) {
	value, err := s.store.Get(ctx, sessionID, slot)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSlotNotFound) {
			return "", ErrUnauthenticated
		}
		s.logger.Error("Resolve: failed to read slot=%s: %v", slot, err)
		return "", fmt.Errorf("%w: Resolve - read slot %s: %v", ErrInternal, slot, err)
	}
	if value == "" {
		return "", ErrUnauthenticated
	}
	return value, nil
}

// open сохраняет токен и профиль под новым идентификатором сессии
func (s *Service) open(ctx context.Context, resp *receptionistapi.AuthResponse) (*Session, error) {
	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("%w: encode user profile: %v", ErrInternal, err)
	}

	sessionID := s.newID()
	if err := s.store.Set(ctx, sessionID, sessionStore.SlotToken, resp.Token); err != nil {
		s.logger.Error("open: failed to store token: %v", err)
		return nil, fmt.Errorf("%w: store token: %v", ErrInternal, err)
	}
	if err := s.store.Set(ctx, sessionID, sessionStore.SlotUser, string(rawUser)); err != nil {
		s.logger.Error("open: failed to store user profile: %v", err)
		_ = s.store.Clear(ctx, sessionID)
		return nil, fmt.Errorf("%w: store user profile: %v", ErrInternal, err)
	}

	s.logger.Info("open: session started for user=%s", resp.User.ID)
	return &Session{ID: sessionID, Token: resp.Token, User: resp.User}, nil
}
