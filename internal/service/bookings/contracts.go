package bookings

import (
	"context"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

// BookingsClient интерфейс клиента API для работы с бронированиями
type BookingsClient interface {
	ListBookings(ctx context.Context, token string) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, token, bookingID string, status domain.BookingStatus) error
}

// TransitionObserver принимает метрики переходов статусов
type TransitionObserver interface {
	ObserveTransition(action string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
