package domain

import "fmt"

// StatusFilter значение фильтра по статусу на экране бронирований
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterConfirmed StatusFilter = StatusFilter(StatusConfirmed)
	FilterPending   StatusFilter = StatusFilter(StatusPending)
	FilterCancelled StatusFilter = StatusFilter(StatusCancelled)
	FilterCompleted StatusFilter = StatusFilter(StatusCompleted)
)

// SelectableStatusFilters фильтры, доступные оператору
// no_show намеренно не входит в набор: такие записи видны только в "all"
var SelectableStatusFilters = []StatusFilter{
	FilterAll,
	FilterConfirmed,
	FilterPending,
	FilterCancelled,
	FilterCompleted,
}

// ParseStatusFilter пустая строка трактуется как all
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range SelectableStatusFilters {
		if string(f) == s {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Matches returns true if status passes the filter (exact, case-sensitive)
func (f StatusFilter) Matches(status BookingStatus) bool {
	return f == FilterAll || string(f) == string(status)
}

// Label подпись кнопки фильтра
func (f StatusFilter) Label() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterConfirmed:
		return "Confirmed"
	case FilterPending:
		return "Pending"
	case FilterCancelled:
		return "Cancelled"
	case FilterCompleted:
		return "Completed"
	default:
		return string(f)
	}
}
