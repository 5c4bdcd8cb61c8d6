package services

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/catalog"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

const (
	pageTitle       = "Services"
	listPath        = "/services"
	msgFillRequired = "Name, duration and price are required."
)

type Handler struct {
	workflow ServicesWorkflow
	renderer Renderer
	logger   Logger
}

func NewHandler(workflow ServicesWorkflow, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		workflow: workflow,
		renderer: renderer,
		logger:   logger,
	}
}

// List GET /services
// ?new=1 открывает пустую форму, ?edit={id} форму с данными услуги
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	items, err := h.workflow.List(r.Context(), sess.Token)
	if err != nil {
		h.logger.Warn("GET /services - Rendering empty list: %v", err)
	}

	data := PageData{Items: items}
	query := r.URL.Query()
	switch {
	case query.Get("edit") != "":
		service, err := h.workflow.Find(items, query.Get("edit"))
		if err != nil {
			h.logger.Warn("GET /services - Cannot open edit form: %v", err)
			break
		}
		data.FormOpen = true
		data.EditingID = service.ID
		data.Form = catalog.ServiceFormFrom(service)
	case query.Get("new") != "":
		data.FormOpen = true
	}

	h.render(w, r, http.StatusOK, web.PageServices, data, "")
}

// Save POST /services
// Создание, если editingId пуст, иначе обновление
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	editingID, form := parseForm(r)
	err := h.workflow.Save(r.Context(), sess.Token, editingID, form)
	if err == nil {
		handlers.SeeOther(w, r, listPath)
		return
	}

	// Форма остается открытой с введенными значениями
	banner := ""
	status := http.StatusOK
	if errors.Is(err, catalog.ErrInvalidInput) {
		banner = msgFillRequired
		status = http.StatusBadRequest
	}
	h.logger.Warn("POST /services - Save failed: editing_id=%s: %v", editingID, err)

	items, listErr := h.workflow.List(r.Context(), sess.Token)
	if listErr != nil {
		h.logger.Warn("POST /services - Rendering empty list: %v", listErr)
	}
	h.render(w, r, status, web.PageServices, PageData{
		Items:     items,
		FormOpen:  true,
		EditingID: editingID,
		Form:      form,
	}, banner)
}

// ConfirmDelete GET /services/{id}/delete
func (h *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	id := mux.Vars(r)["id"]
	data := ConfirmDeleteData{
		Kind:      "service",
		Action:    listPath + "/" + url.PathEscape(id) + "/delete",
		CancelURL: listPath,
	}
	if items, err := h.workflow.List(r.Context(), sess.Token); err == nil {
		if service, err := h.workflow.Find(items, id); err == nil {
			data.Name = service.Name
		}
	}

	h.render(w, r, http.StatusOK, web.PageConfirmDelete, data, "")
}

// Delete POST /services/{id}/delete
// Без confirm=yes запрос к API не отправляется
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	id := mux.Vars(r)["id"]
	confirmed := r.PostFormValue("confirm") == "yes"
	if err := h.workflow.Delete(r.Context(), sess.Token, id, confirmed); err != nil {
		h.logger.Warn("POST /services/{id}/delete - Not deleted: id=%s: %v", id, err)
	}

	handlers.SeeOther(w, r, listPath)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any, banner string) {
	page := handlers.NewPage(r, pageTitle)
	page.Error = banner
	page.Data = data
	if err := h.renderer.Render(w, status, name, page); err != nil {
		h.logger.Error("%s %s - Failed to render page: %v", r.Method, r.URL.Path, err)
		handlers.RespondInternalError(w)
	}
}
