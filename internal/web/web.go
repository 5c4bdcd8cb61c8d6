package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Страницы дашборда
const (
	PageLogin         = "login"
	PageRegister      = "register"
	PageDashboard     = "dashboard"
	PageBookings      = "bookings"
	PageServices      = "services"
	PageStaff         = "staff"
	PageConfirmDelete = "confirm_delete"
)

var pages = []string{
	PageLogin,
	PageRegister,
	PageDashboard,
	PageBookings,
	PageServices,
	PageStaff,
	PageConfirmDelete,
}

// Page общие данные любой страницы
type Page struct {
	Title     string
	User      *domain.User
	CSRFField template.HTML
	Error     string
	Data      any
}

// Renderer отрисовывает страницы из встроенных шаблонов
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer разбирает layout вместе с каждой страницей
// loc зона, в которой показываются даты и время бронирований
func NewRenderer(loc *time.Location) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New("layout.html").
			Funcs(funcMap(loc)).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse page %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}
	return r, nil
}

// Render пишет страницу целиком; при ошибке шаблона ответ не начинается
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("web: unknown page %s", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("web: render page %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
