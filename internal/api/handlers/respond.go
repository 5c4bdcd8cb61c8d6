package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/web"
)

const msgInternalError = "Something went wrong. Please try again."

// SeeOther переадресация после POST (Post/Redirect/Get)
func SeeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusBadRequest)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusNotFound)
}

func RespondInternalError(w http.ResponseWriter) {
	http.Error(w, msgInternalError, http.StatusInternalServerError)
}

// NewPage общие данные страницы: текущий оператор и скрытое поле CSRF
func NewPage(r *http.Request, title string) web.Page {
	page := web.Page{
		Title:     title,
		CSRFField: csrf.TemplateField(r),
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		user := sess.User
		page.User = &user
	}
	return page
}

// CurrentSession сессия, положенная SessionGuard
// Отсутствие сессии на защищенном маршруте означает ошибку сборки роутера
func CurrentSession(r *http.Request) (*session.Session, bool) {
	return session.FromContext(r.Context())
}
