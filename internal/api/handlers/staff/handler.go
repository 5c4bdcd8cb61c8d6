package staff

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
	pageTitle       = "Staff"
	listPath        = "/staff"
	msgFillRequired = "Name is required."
)

type Handler struct {
	workflow StaffWorkflow
	renderer Renderer
	logger   Logger
}

func NewHandler(workflow StaffWorkflow, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		workflow: workflow,
		renderer: renderer,
		logger:   logger,
	}
}

// List GET /staff
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	items, err := h.workflow.List(r.Context(), sess.Token)
	if err != nil {
		h.logger.Warn("GET /staff - Rendering empty list: %v", err)
	}

	data := PageData{Items: items}
	query := r.URL.Query()
	switch {
	case query.Get("edit") != "":
		member, err := h.workflow.Find(items, query.Get("edit"))
		if err != nil {
			h.logger.Warn("GET /staff - Cannot open edit form: %v", err)
			break
		}
		data.FormOpen = true
		data.EditingID = member.ID
		data.Form = catalog.StaffFormFrom(member)
	case query.Get("new") != "":
		data.FormOpen = true
	}

	h.render(w, r, http.StatusOK, web.PageStaff, data, "")
}

// Save POST /staff
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

	banner := ""
	status := http.StatusOK
	if errors.Is(err, catalog.ErrInvalidInput) {
		banner = msgFillRequired
		status = http.StatusBadRequest
	}
	h.logger.Warn("POST /staff - Save failed: editing_id=%s: %v", editingID, err)

	items, listErr := h.workflow.List(r.Context(), sess.Token)
	if listErr != nil {
		h.logger.Warn("POST /staff - Rendering empty list: %v", listErr)
	}
	h.render(w, r, status, web.PageStaff, PageData{
		Items:     items,
		FormOpen:  true,
		EditingID: editingID,
		Form:      form,
	}, banner)
}

// ConfirmDelete GET /staff/{id}/delete
func (h *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	id := mux.Vars(r)["id"]
	data := ConfirmDeleteData{
		Kind:      "staff member",
		Action:    listPath + "/" + url.PathEscape(id) + "/delete",
		CancelURL: listPath,
	}
	if items, err := h.workflow.List(r.Context(), sess.Token); err == nil {
		if member, err := h.workflow.Find(items, id); err == nil {
			data.Name = member.Name
		}
	}

	h.render(w, r, http.StatusOK, web.PageConfirmDelete, data, "")
}

// Delete POST /staff/{id}/delete
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	id := mux.Vars(r)["id"]
	confirmed := r.PostFormValue("confirm") == "yes"
	if err := h.workflow.Delete(r.Context(), sess.Token, id, confirmed); err != nil {
		h.logger.Warn("POST /staff/{id}/delete - Not deleted: id=%s: %v", id, err)
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
