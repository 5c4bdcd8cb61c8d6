package bookings

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings/models"
)

// Board состояние экрана бронирований одной сессии
// Хранит последний успешно загруженный список и текущие фильтры
// Видимое подмножество не кэшируется и пересчитывается при каждом чтении
type Board struct {
	client BookingsClient
	logger Logger

	mu      sync.Mutex
	all     []domain.Booking
	loaded  bool
	loading bool
	status  domain.StatusFilter
	query   string
}

func newBoard(client BookingsClient, logger Logger) *Board {
	return &Board{
		client: client,
		logger: logger,
		all:    []domain.Booking{},
		status: domain.FilterAll,
	}
}

// Load заменяет список свежими данными API
// При ошибке список остается прежним (пустым при первой загрузке)
func (b *Board) Load(ctx context.Context, token string) models.LoadResult {
	b.setLoading(true)
	defer b.setLoading(false)

	fetched, err := b.client.ListBookings(ctx, token)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.logger.Error("Load: failed to fetch bookings: %v", err)
		return models.LoadResult{
			Bookings: cloneBookings(b.all),
			Err:      fmt.Errorf("%w: %w", ErrLoadFailed, err),
		}
	}

	if fetched == nil {
		fetched = []domain.Booking{}
	}
	b.all = fetched
	b.loaded = true
	return models.LoadResult{Bookings: cloneBookings(b.all)}
}

// Transition выполняет действие оператора
// Действие, не предусмотренное для текущего статуса, отклоняется без обращения к API
// После успешной смены статуса список перечитывается целиком; после ошибки нет
func (b *Board) Transition(ctx context.Context, token, bookingID string, action domain.BookingAction) error {
	booking, found := b.find(bookingID)
	if !found && !b.isLoaded() {
		b.Load(ctx, token)
		booking, found = b.find(bookingID)
	}
	if !found {
		return fmt.Errorf("%w: id=%s", ErrBookingNotFound, bookingID)
	}
	if !booking.Allows(action) {
		return fmt.Errorf("%w: %s on %s", ErrActionNotAllowed, action, booking.Status)
	}

	if err := b.client.UpdateBookingStatus(ctx, token, bookingID, action.Target()); err != nil {
		b.logger.Error("Transition: failed to %s booking id=%s: %v", action, bookingID, err)
		return fmt.Errorf("%w: %w", ErrTransitionFailed, err)
	}

	b.Load(ctx, token)
	return nil
}

// SetStatusFilter меняет фильтр по статусу
func (b *Board) SetStatusFilter(f domain.StatusFilter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = f
}

// SetQuery меняет поисковую строку
func (b *Board) SetQuery(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query = q
}

// visible текущее видимое подмножество
func (b *Board) visible() []domain.Booking {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Filter(b.all, b.status, b.query)
}

// snapshot полный последний загруженный список
func (b *Board) snapshot() []domain.Booking {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneBookings(b.all)
}

// isLoading returns true while a fetch is in flight
func (b *Board) isLoading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// View снимок состояния для отрисовки
func (b *Board) View() *models.ListView {
	b.mu.Lock()
	defer b.mu.Unlock()

	return &models.ListView{
		Visible:      Filter(b.all, b.status, b.query),
		Total:        len(b.all),
		StatusFilter: b.status,
		Query:        b.query,
		EmptyReason:  EmptyReason(b.status),
	}
}

func (b *Board) setLoading(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = v
}

func (b *Board) isLoaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

func (b *Board) find(id string) (domain.Booking, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, booking := range b.all {
		if booking.ID == id {
			return booking, true
		}
	}
	return domain.Booking{}, false
}

func cloneBookings(src []domain.Booking) []domain.Booking {
	dst := make([]domain.Booking, len(src))
	copy(dst, src)
	return dst
}
