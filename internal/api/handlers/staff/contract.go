package staff

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/catalog"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

type StaffWorkflow interface {
	List(ctx context.Context, token string) ([]domain.Staff, error)
	Find(items []domain.Staff, id string) (domain.Staff, error)
	Save(ctx context.Context, token, editingID string, form catalog.Form[receptionistapi.StaffInput]) error
	Delete(ctx context.Context, token, id string, confirmed bool) error
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data web.Page) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
