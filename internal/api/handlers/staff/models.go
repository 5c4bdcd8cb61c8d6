package staff

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/catalog"
)

// PageData список сотрудников и, если открыта, форма
type PageData struct {
	Items     []domain.Staff
	FormOpen  bool
	EditingID string
	Form      catalog.StaffForm
}

// ConfirmDeleteData страница подтверждения удаления
type ConfirmDeleteData struct {
	Kind      string
	Name      string
	Action    string
	CancelURL string
}

func parseForm(r *http.Request) (editingID string, form catalog.StaffForm) {
	return strings.TrimSpace(r.PostFormValue("editingId")), catalog.StaffForm{
		Name:  strings.TrimSpace(r.PostFormValue("name")),
		Email: strings.TrimSpace(r.PostFormValue("email")),
		Phone: strings.TrimSpace(r.PostFormValue("phone")),
	}
}
