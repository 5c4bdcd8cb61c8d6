package bookings

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings/models"
)

// Service сервис экрана бронирований
// Каждой сессии соответствует свой Board
type Service struct {
	client   BookingsClient
	observer TransitionObserver
	logger   Logger

	mu       sync.Mutex
	boards   map[string]*Board
	lastSeen map[string]time.Time
	now      func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
// observer может быть nil, если метрики отключены
func NewService(client BookingsClient, observer TransitionObserver, logger Logger) *Service {
	return &Service{
		client:   client,
		observer: observer,
		logger:   logger,
		boards:   make(map[string]*Board),
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Board возвращает состояние экрана для сессии, создавая его при первом обращении
func (s *Service) Board(sessionID string) *Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.boards[sessionID]
	if !ok {
		b = newBoard(s.client, s.logger)
		s.boards[sessionID] = b
	}
	s.lastSeen[sessionID] = s.now()
	return b
}

// Forget удаляет состояние экрана после выхода из сессии
func (s *Service) Forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, sessionID)
	delete(s.lastSeen, sessionID)
}

// ForgetIdle удаляет экраны сессий, к которым не обращались дольше maxIdle
// Для еще живой сессии экран создается заново и перечитывается при следующем запросе
func (s *Service) ForgetIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for sessionID, seen := range s.lastSeen {
		if seen.Before(cutoff) {
			delete(s.boards, sessionID)
			delete(s.lastSeen, sessionID)
			removed++
		}
	}
	return removed
}

// Len число сессий с состоянием экрана
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}

// List применяет фильтры, перечитывает список и возвращает видимое подмножество
// Ошибка загрузки не прерывает отрисовку: показывается последний успешный список
func (s *Service) List(ctx context.Context, req models.ListRequest) *models.ListView {
	board := s.Board(req.SessionID)
	board.SetStatusFilter(req.StatusFilter)
	board.SetQuery(req.Query)

	res := board.Load(ctx, req.Token)

	view := board.View()
	view.LoadFailed = !res.OK()
	s.logger.Info("List: status=%s, query=%q, visible=%d of %d", view.StatusFilter, view.Query, len(view.Visible), view.Total)
	return view
}

// Transition выполняет действие оператора над бронированием
func (s *Service) Transition(ctx context.Context, req models.TransitionRequest) error {
	s.logger.Info("Transition: %s booking id=%s", req.Action, req.BookingID)

	err := s.Board(req.SessionID).Transition(ctx, req.Token, req.BookingID, req.Action)
	if s.observer != nil {
		s.observer.ObserveTransition(string(req.Action), err)
	}
	if err != nil {
		s.logger.Warn("Transition: %s booking id=%s rejected: %v", req.Action, req.BookingID, err)
		return err
	}

	s.logger.Info("Transition: booking id=%s moved to %s", req.BookingID, req.Action.Target())
	return nil
}
