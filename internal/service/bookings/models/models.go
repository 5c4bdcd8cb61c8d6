package models

import (
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

// ListRequest параметры экрана бронирований
type ListRequest struct {
	SessionID    string
	Token        string
	StatusFilter domain.StatusFilter
	Query        string
}

// TransitionRequest действие оператора над бронированием
type TransitionRequest struct {
	SessionID string
	Token     string
	BookingID string
	Action    domain.BookingAction
}

// LoadResult итог загрузки списка
// При ошибке Bookings содержит последний успешно загруженный список
type LoadResult struct {
	Bookings []domain.Booking
	Err      error
}

// OK returns true if the collection was refreshed
func (r LoadResult) OK() bool {
	return r.Err == nil
}

// ListView данные для отрисовки экрана бронирований
type ListView struct {
	Visible      []domain.Booking
	Total        int
	StatusFilter domain.StatusFilter
	Query        string
	EmptyReason  string
	LoadFailed   bool
}
