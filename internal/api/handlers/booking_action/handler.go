package booking_action

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings/models"
)

const msgUnknownAction = "unknown booking action"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /bookings/{id}/{action}
// Результат действия не показывается отдельно: после редиректа экран отражает актуальные статусы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.CurrentSession(r)
	if !ok {
		h.logger.Error("POST /bookings/{id}/{action} - Session missing in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["id"]

	action, err := domain.ParseBookingAction(vars["action"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/{action} - Unknown action: %v", err)
		handlers.RespondNotFound(w, msgUnknownAction)
		return
	}

	err = h.service.Transition(r.Context(), models.TransitionRequest{
		SessionID: sess.ID,
		Token:     sess.Token,
		BookingID: bookingID,
		Action:    action,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound), errors.Is(err, bookings.ErrActionNotAllowed):
			h.logger.Warn("POST /bookings/{id}/{action} - Rejected: booking_id=%s, action=%s: %v", bookingID, action, err)
		default:
			h.logger.Error("POST /bookings/{id}/{action} - Failed: booking_id=%s, action=%s: %v", bookingID, action, err)
		}
	}

	status, _ := domain.ParseStatusFilter(r.PostFormValue("status"))
	handlers.SeeOther(w, r, handlers.BookingsURL(status, r.PostFormValue("q")))
}
