package session

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот сессии пуст
	ErrSlotNotFound = errors.New("session.storage: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("session.storage: failed to execute query")
)
