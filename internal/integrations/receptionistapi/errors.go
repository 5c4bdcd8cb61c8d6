package receptionistapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized возвращается при отсутствующем или просроченном токене
	ErrUnauthorized = errors.New("receptionistapi client: unauthorized")

	// ErrNotFound возвращается, когда запись не найдена на стороне API
	ErrNotFound = errors.New("receptionistapi client: not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сеть)
	ErrInternal = errors.New("receptionistapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("receptionistapi client: invalid response")
)

// APIError ошибка, которую вернул сервер
// Message берется из поля "error" тела ответа и может быть пустым
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v: status %d: %s", e.kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v: status %d", e.kind, e.StatusCode)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrUnauthorized) и т.п.
func (e *APIError) Unwrap() error {
	return e.kind
}

// ServerMessage текст ошибки от сервера, если он есть в цепочке err
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
