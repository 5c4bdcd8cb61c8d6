package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReceptionistDashboard/pkg/psqlbuilder"
)

const sessionsTable = "dashboard_sessions"

const createTableSQL = `
CREATE TABLE IF NOT EXISTS dashboard_sessions (
	session_id TEXT        NOT NULL,
	slot       TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (session_id, slot)
)`

// Repository хранит слоты сессий в PostgreSQL
type Repository struct {
	db  DBExecutor
	ttl time.Duration
	now func() time.Time
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor, ttl time.Duration) *Repository {
	return &Repository{db: db, ttl: ttl, now: time.Now}
}

// EnsureSchema создает таблицу сессий, если её нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает значение слота, если сессия не истекла
func (r *Repository) Get(ctx context.Context, sessionID, slot string) (string, error) {
	query, args, err := buildSelect(sessionID, slot, r.now())
	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSlotNotFound
		}
		return "", fmt.Errorf("%w: Get - execute select: %v", ErrExecQuery, err)
	}
	return value, nil
}

// Set записывает слот и продлевает срок жизни
func (r *Repository) Set(ctx context.Context, sessionID, slot, value string) error {
	query, args, err := buildUpsert(sessionID, slot, value, r.now().Add(r.ttl))
	if err != nil {
		return fmt.Errorf("%w: Set - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// Clear удаляет все слоты сессии
func (r *Repository) Clear(ctx context.Context, sessionID string) error {
	query, args, err := psqlbuilder.Delete(sessionsTable).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteExpired удаляет истекшие слоты, возвращает число удаленных строк
func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Delete(sessionsTable).
		Where(squirrel.LtOrEq{"expires_at": r.now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func buildSelect(sessionID, slot string, now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("value").
		From(sessionsTable).
		Where(squirrel.Eq{"session_id": sessionID, "slot": slot}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
}

func buildUpsert(sessionID, slot, value string, expiresAt time.Time) (string, []interface{}, error) {
	return psqlbuilder.Insert(sessionsTable).
		Columns("session_id", "slot", "value", "expires_at").
		Values(sessionID, slot, value, expiresAt).
		Suffix("ON CONFLICT (session_id, slot) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at").
		ToSql()
}
