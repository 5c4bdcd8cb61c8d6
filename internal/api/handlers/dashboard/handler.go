package dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

type Handler struct {
	service  DashboardService
	renderer Renderer
	logger   Logger
}

func NewHandler(service DashboardService, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /dashboard
// Ошибка загрузки не прерывает отрисовку: показатели остаются нулевыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		h.logger.Error("GET /dashboard - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	stats, err := h.service.Stats(r.Context(), sess.Token)
	if err != nil {
		h.logger.Warn("GET /dashboard - Rendering empty stats: %v", err)
	}

	page := handlers.NewPage(r, "Dashboard")
	page.Data = stats
	if err := h.renderer.Render(w, http.StatusOK, web.PageDashboard, page); err != nil {
		h.logger.Error("GET /dashboard - Failed to render page: %v", err)
		handlers.RespondInternalError(w)
	}
}
