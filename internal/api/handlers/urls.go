package handlers

import (
	"net/url"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

// BookingsURL адрес экрана бронирований с фильтрами; пустые значения опускаются
func BookingsURL(status domain.StatusFilter, query string) string {
	v := url.Values{}
	if status != "" && status != domain.FilterAll {
		v.Set("status", string(status))
	}
	if query != "" {
		v.Set("q", query)
	}
	if len(v) == 0 {
		return "/bookings"
	}
	return "/bookings?" + v.Encode()
}
