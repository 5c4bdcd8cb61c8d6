package logout

import (
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
)

const redirectOnLogout = "/login"

type Handler struct {
	service SessionService
	boards  BoardRegistry
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(service SessionService, boards BoardRegistry, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		boards:  boards,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /logout
// Cookie очищается даже если хранилище недоступно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := h.cookie.Read(r)

	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		h.logger.Error("POST /logout - Failed to clear session: %v", err)
	}
	if sessionID != "" {
		h.boards.Forget(sessionID)
	}

	h.cookie.Clear(w)
	h.logger.Info("POST /logout - Logged out")
	handlers.SeeOther(w, r, redirectOnLogout)
}
