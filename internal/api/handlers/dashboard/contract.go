package dashboard

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/dashboard"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

type DashboardService interface {
	Stats(ctx context.Context, token string) (dashboard.Stats, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data web.Page) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
