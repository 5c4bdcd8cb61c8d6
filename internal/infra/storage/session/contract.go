package session

import (
	"context"
	"database/sql"
)

// Имена слотов сессии: токен доступа и сериализованный профиль пользователя
const (
	SlotToken = "token"
	SlotUser  = "user"
)

// Store хранилище слотов сессии
// Get возвращает ErrSlotNotFound, если слот не заполнен или сессия истекла
type Store interface {
	Get(ctx context.Context, sessionID, slot string) (string, error)
	Set(ctx context.Context, sessionID, slot, value string) error
	Clear(ctx context.Context, sessionID string) error
}

// DBExecutor минимальный интерфейс БД для Repository
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
