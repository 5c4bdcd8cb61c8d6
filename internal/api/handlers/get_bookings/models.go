package get_bookings

import (
	"time"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/bookings/models"
)

// PageData данные экрана бронирований
type PageData struct {
	Status      domain.StatusFilter
	Query       string
	Filters     []FilterOption
	Rows        []BookingRow
	EmptyReason string
}

// FilterOption кнопка фильтра по статусу
type FilterOption struct {
	Label  string
	URL    string
	Active bool
}

// BookingRow строка списка с доступными действиями
type BookingRow struct {
	ID             string
	Status         domain.BookingStatus
	CustomerName   string
	WhatsappNumber string
	ServiceName    string
	StaffName      string
	StartTime      time.Time
	EndTime        time.Time
	Actions        []domain.BookingAction
}

func newBookingRow(b domain.Booking) BookingRow {
	row := BookingRow{
		ID:           b.ID,
		Status:       b.Status,
		CustomerName: b.CustomerName(),
		ServiceName:  b.ServiceName(),
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Actions:      b.AvailableActions(),
	}
	if b.Customer != nil {
		row.WhatsappNumber = b.Customer.WhatsappNumber
	}
	if b.Staff != nil {
		row.StaffName = b.Staff.Name
	}
	return row
}

func newPageData(view *models.ListView) PageData {
	data := PageData{
		Status:      view.StatusFilter,
		Query:       view.Query,
		EmptyReason: view.EmptyReason,
		Rows:        make([]BookingRow, 0, len(view.Visible)),
	}
	for _, f := range domain.SelectableStatusFilters {
		data.Filters = append(data.Filters, FilterOption{
			Label:  f.Label(),
			URL:    handlers.BookingsURL(f, view.Query),
			Active: f == view.StatusFilter,
		})
	}
	for _, b := range view.Visible {
		data.Rows = append(data.Rows, newBookingRow(b))
	}
	return data
}
