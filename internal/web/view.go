package web

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

const avatarBaseURL = "https://ui-avatars.com/api/"

// statusStyle оформление бейджа статуса
type statusStyle struct {
	Label string
	Class string
}

var statusStyles = map[domain.BookingStatus]statusStyle{
	domain.StatusConfirmed: {Label: "Confirmed", Class: "status-confirmed"},
	domain.StatusPending:   {Label: "Pending", Class: "status-pending"},
	domain.StatusCancelled: {Label: "Cancelled", Class: "status-cancelled"},
	domain.StatusCompleted: {Label: "Completed", Class: "status-completed"},
	domain.StatusNoShow:    {Label: "No Show", Class: "status-no-show"},
}

// categoryImages картинка карточки услуги по категории
var categoryImages = map[string]string{
	"salon":      "https://images.unsplash.com/photo-1560066984-138dadb4c035?w=400",
	"spa":        "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?w=400",
	"gym":        "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=400",
	"clinic":     "https://images.unsplash.com/photo-1631217868264-e5b90bb7e133?w=400",
	"restaurant": "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400",
	"dental":     "https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?w=400",
}

// style неизвестный статус оформляется как pending
func style(status domain.BookingStatus) statusStyle {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return statusStyles[domain.StatusPending]
}

func StatusLabel(status domain.BookingStatus) string {
	return style(status).Label
}

func StatusClass(status domain.BookingStatus) string {
	return style(status).Class
}

// AvatarURL аватар по имени; без имени используется "Customer"
func AvatarURL(name string) string {
	if name == "" {
		name = "Customer"
	}
	return avatarBaseURL + "?name=" + url.QueryEscape(name) + "&background=random&size=100"
}

// CategoryImage картинка категории услуги, по умолчанию salon
func CategoryImage(category string) string {
	if img, ok := categoryImages[strings.ToLower(category)]; ok {
		return img
	}
	return categoryImages["salon"]
}

func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

// FormatDate дата в зоне оператора; nil оставляет зону из ответа API
func FormatDate(t time.Time, loc *time.Location) string {
	return inZone(t, loc).Format(domain.DisplayDateFormat)
}

func FormatTime(t time.Time, loc *time.Location) string {
	return inZone(t, loc).Format(domain.DisplayTimeFormat)
}

func inZone(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func funcMap(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"statusLabel":   StatusLabel,
		"statusClass":   StatusClass,
		"avatarURL":     AvatarURL,
		"categoryImage": CategoryImage,
		"formatPrice":   FormatPrice,
		"formatDate":    func(t time.Time) string { return FormatDate(t, loc) },
		"formatTime":    func(t time.Time) string { return FormatTime(t, loc) },
		"orDefault":     orDefault,
		"percent": func(v float64) string {
			return decimal.NewFromFloat(v).StringFixed(0) + "%"
		},
	}
}
