package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Workflow общий сценарий CRUD-экрана: список, форма создания/редактирования, удаление
// Ошибки API логируются и возвращаются; список перечитывается вызывающим только после успеха
type Workflow[T Entity, In any] struct {
	name     string
	backend  Backend[T, In]
	validate *validator.Validate
	logger   Logger
}

// NewWorkflow создает сценарий для вида записей name (используется в логах)
func NewWorkflow[T Entity, In any](name string, backend Backend[T, In], logger Logger) *Workflow[T, In] {
	return &Workflow[T, In]{
		name:     name,
		backend:  backend,
		validate: validator.New(),
		logger:   logger,
	}
}

// List загружает записи; при ошибке возвращает пустой список и ошибку
func (w *Workflow[T, In]) List(ctx context.Context, token string) ([]T, error) {
	items, err := w.backend.List(ctx, token)
	if err != nil {
		w.logger.Error("List %s: failed to load: %v", w.name, err)
		return []T{}, fmt.Errorf("%w: List %s: %w", ErrInternal, w.name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Find ищет запись для открытия формы редактирования
func (w *Workflow[T, In]) Find(items []T, id string) (T, error) {
	for _, item := range items {
		if item.GetID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s id=%s", ErrNotFound, w.name, id)
}

// Save создает запись, если editingID пуст, иначе обновляет её
func (w *Workflow[T, In]) Save(ctx context.Context, token, editingID string, form Form[In]) error {
	if err := w.validate.Struct(form); err != nil {
		w.logger.Warn("Save %s: invalid form: %v", w.name, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	in, err := form.Input()
	if err != nil {
		w.logger.Warn("Save %s: invalid form: %v", w.name, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if editingID == "" {
		if err := w.backend.Create(ctx, token, in); err != nil {
			w.logger.Error("Save %s: failed to create: %v", w.name, err)
			return fmt.Errorf("%w: create %s: %w", ErrInternal, w.name, err)
		}
		w.logger.Info("Save %s: created", w.name)
		return nil
	}

	if err := w.backend.Update(ctx, token, editingID, in); err != nil {
		w.logger.Error("Save %s: failed to update id=%s: %v", w.name, editingID, err)
		return fmt.Errorf("%w: update %s: %w", ErrInternal, w.name, err)
	}
	w.logger.Info("Save %s: updated id=%s", w.name, editingID)
	return nil
}

// Delete удаляет запись только после явного подтверждения
func (w *Workflow[T, In]) Delete(ctx context.Context, token, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := w.backend.Delete(ctx, token, id); err != nil {
		w.logger.Error("Delete %s: failed to delete id=%s: %v", w.name, id, err)
		return fmt.Errorf("%w: delete %s: %w", ErrInternal, w.name, err)
	}
	w.logger.Info("Delete %s: deleted id=%s", w.name, id)
	return nil
}
