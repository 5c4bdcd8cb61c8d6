package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore хранит слоты в памяти процесса
// Подходит для одного инстанса и тестов; данные теряются при рестарте
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get удаляет истекший слот при чтении
func (s *MemoryStore) Get(_ context.Context, sessionID, slot string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID][slot]
	if !ok {
		return "", ErrSlotNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		s.deleteSlot(sessionID, slot)
		return "", ErrSlotNotFound
	}
	return entry.value, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, slot, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, ok := s.sessions[sessionID]
	if !ok {
		slots = make(map[string]memoryEntry)
		s.sessions[sessionID] = slots
	}
	slots[slot] = memoryEntry{value: value, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// DeleteExpired удаляет истекшие слоты и опустевшие сессии, возвращает число удаленных слотов
func (s *MemoryStore) DeleteExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var deleted int64
	for sessionID, slots := range s.sessions {
		for slot, entry := range slots {
			if !now.Before(entry.expiresAt) {
				delete(slots, slot)
				deleted++
			}
		}
		if len(slots) == 0 {
			delete(s.sessions, sessionID)
		}
	}
	return deleted, nil
}

// Len число сессий, для которых хранится хотя бы один слот
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) deleteSlot(sessionID, slot string) {
	slots := s.sessions[sessionID]
	delete(slots, slot)
	if len(slots) == 0 {
		delete(s.sessions, sessionID)
	}
}
