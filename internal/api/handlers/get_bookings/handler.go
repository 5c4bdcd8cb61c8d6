package get_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

type Handler struct {
	service  BookingService
	renderer Renderer
	logger   Logger
}

func NewHandler(service BookingService, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /bookings?status=&q=
// Неизвестный статус трактуется как all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		h.logger.Error("GET /bookings - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	status, err := domain.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Warn("GET /bookings - Unknown status filter, showing all: %v", err)
	}

	view := h.service.List(r.Context(), models.ListRequest{
		SessionID:    sess.ID,
		Token:        sess.Token,
		StatusFilter: status,
		Query:        r.URL.Query().Get("q"),
	})

	page := handlers.NewPage(r, "Bookings")
	page.Data = newPageData(view)
	if err := h.renderer.Render(w, http.StatusOK, web.PageBookings, page); err != nil {
		h.logger.Error("GET /bookings - Failed to render page: %v", err)
		handlers.RespondInternalError(w)
	}
}
