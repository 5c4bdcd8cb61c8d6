package session

import "errors"

var (
	// ErrUnauthenticated возвращается, когда в сессии нет токена или профиля
	ErrUnauthenticated = errors.New("session: unauthenticated")

	// ErrMalformedProfile возвращается, когда профиль в сессии не декодируется
	ErrMalformedProfile = errors.New("session: malformed user profile")

	// ErrInvalidInput возвращается, когда не заполнены обязательные поля формы
	ErrInvalidInput = errors.New("session: invalid input data")

	// ErrAuthFailed возвращается, когда API отклонил вход или регистрацию
	ErrAuthFailed = errors.New("session: authentication failed")

	// ErrInternal возвращается при ошибках хранилища сессий
	ErrInternal = errors.New("session: internal error")
)
