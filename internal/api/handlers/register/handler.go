package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

const (
	pageTitle         = "Register"
	msgRegisterFailed = "Registration failed. Please try again."
	msgFillRequired   = "Please fill in all required fields."
	redirectOnSuccess = "/dashboard"
)

type Handler struct {
	service  SessionService
	boards   BoardRegistry
	renderer Renderer
	cookie   handlers.SessionCookie
	logger   Logger
}

func NewHandler(service SessionService, boards BoardRegistry, renderer Renderer, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service:  service,
		boards:   boards,
		renderer: renderer,
		cookie:   cookie,
		logger:   logger,
	}
}

// Show GET /register
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, RegisterForm{}.pageData(), "")
}

// Submit POST /register
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	form := parseForm(r)

	sess, err := h.service.Register(r.Context(), form.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("POST /register - Missing required fields")
			h.render(w, r, http.StatusBadRequest, form.pageData(), msgFillRequired)

		case errors.Is(err, session.ErrAuthFailed):
			h.logger.Warn("POST /register - Registration rejected: email=%s", form.Email)
			msg := receptionistapi.ServerMessage(err)
			if msg == "" {
				msg = msgRegisterFailed
			}
			h.render(w, r, http.StatusBadRequest, form.pageData(), msg)

		default:
			h.logger.Error("POST /register - Failed to start session: %v", err)
			h.render(w, r, http.StatusInternalServerError, form.pageData(), msgRegisterFailed)
		}
		return
	}

	h.endPrevious(r, sess.ID)
	h.cookie.Set(w, sess.ID)
	h.logger.Info("POST /register - Registered: user=%s", sess.User.ID)
	handlers.SeeOther(w, r, redirectOnSuccess)
}

// endPrevious закрывает сессию, на которую указывала прежняя cookie
func (h *Handler) endPrevious(r *http.Request, newID string) {
	previous := h.cookie.Read(r)
	if previous == "" || previous == newID {
		return
	}
	if err := h.service.Logout(r.Context(), previous); err != nil {
		h.logger.Error("POST /register - Failed to clear previous session: %v", err)
	}
	h.boards.Forget(previous)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data PageData, banner string) {
	page := handlers.NewPage(r, pageTitle)
	page.Error = banner
	page.Data = data
	if err := h.renderer.Render(w, status, web.PageRegister, page); err != nil {
		h.logger.Error("GET /register - Failed to render page: %v", err)
		handlers.RespondInternalError(w)
	}
}
