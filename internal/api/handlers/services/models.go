package services

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/catalog"
)

// PageData сетка услуг и, если открыта, форма
type PageData struct {
	Items     []domain.Service
	FormOpen  bool
	EditingID string
	Form      catalog.ServiceForm
}

// ConfirmDeleteData страница подтверждения удаления
type ConfirmDeleteData struct {
	Kind      string
	Name      string
	Action    string
	CancelURL string
}

func parseForm(r *http.Request) (editingID string, form catalog.ServiceForm) {
	return strings.TrimSpace(r.PostFormValue("editingId")), catalog.ServiceForm{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Category:    strings.TrimSpace(r.PostFormValue("category")),
		Duration:    strings.TrimSpace(r.PostFormValue("duration")),
		Price:       strings.TrimSpace(r.PostFormValue("price")),
	}
}
