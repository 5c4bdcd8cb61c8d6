package catalog

import "errors"

var (
	// ErrInvalidInput возвращается, когда не заполнены обязательные поля формы
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrNotConfirmed возвращается при удалении без подтверждения
	ErrNotConfirmed = errors.New("catalog: deletion not confirmed")

	// ErrNotFound возвращается, когда редактируемой записи нет в списке
	ErrNotFound = errors.New("catalog: entity not found")

	// ErrInternal возвращается, когда API не выполнил операцию
	ErrInternal = errors.New("catalog: internal error")
)
