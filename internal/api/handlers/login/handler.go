package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

const (
	pageTitle       = "Login"
	msgLoginFailed  = "Login failed. Please try again."
	msgFillRequired = "Please enter your email and password."
	redirectOnLogin = "/dashboard"
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

// Show GET /login
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, PageData{}, "")
}

// Submit POST /login
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	form := parseForm(r)

	sess, err := h.service.Login(r.Context(), form.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidInput):
			h.logger.Warn("POST /login - Missing required fields")
			h.render(w, r, http.StatusBadRequest, PageData{Email: form.Email}, msgFillRequired)

		case errors.Is(err, session.ErrAuthFailed):
			h.logger.Warn("POST /login - Login rejected: email=%s", form.Email)
			h.render(w, r, http.StatusUnauthorized, PageData{Email: form.Email}, bannerMessage(err))

		default:
			h.logger.Error("POST /login - Failed to start session: %v", err)
			h.render(w, r, http.StatusInternalServerError, PageData{Email: form.Email}, msgLoginFailed)
		}
		return
	}

	h.endPrevious(r, sess.ID)
	h.cookie.Set(w, sess.ID)
	h.logger.Info("POST /login - Logged in: user=%s", sess.User.ID)
	handlers.SeeOther(w, r, redirectOnLogin)
}

// endPrevious закрывает сессию, на которую указывала прежняя cookie
func (h *Handler) endPrevious(r *http.Request, newID string) {
	previous := h.cookie.Read(r)
	if previous == "" || previous == newID {
		return
	}
	if err := h.service.Logout(r.Context(), previous); err != nil {
		h.logger.Error("POST /login - Failed to clear previous session: %v", err)
	}
	h.boards.Forget(previous)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data PageData, banner string) {
	page := handlers.NewPage(r, pageTitle)
	page.Error = banner
	page.Data = data
	if err := h.renderer.Render(w, status, web.PageLogin, page); err != nil {
		h.logger.Error("GET /login - Failed to render page: %v", err)
		handlers.RespondInternalError(w)
	}
}

// bannerMessage текст ошибки от API или общий текст
func bannerMessage(err error) string {
	if msg := receptionistapi.ServerMessage(err); msg != "" {
		return msg
	}
	return msgLoginFailed
}
