package get_bookings

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

type BookingService interface {
	List(ctx context.Context, req models.ListRequest) *models.ListView
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data web.Page) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
