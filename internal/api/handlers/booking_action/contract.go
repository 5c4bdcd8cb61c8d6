package booking_action

import (
	"context"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings/models"
)

type BookingService interface {
	Transition(ctx context.Context, req models.TransitionRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
