package bookings

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

const msgEmptyAll = "Bookings will appear here when customers book via WhatsApp"

// Filter возвращает видимое подмножество бронирований с сохранением порядка
// Статус сравнивается точно; запрос ищется без учета регистра в имени клиента или названии услуги
// Отсутствующие вложенные данные не совпадают ни с каким непустым запросом
func Filter(all []domain.Booking, status domain.StatusFilter, query string) []domain.Booking {
	q := strings.ToLower(query)

	visible := make([]domain.Booking, 0, len(all))
	for i := range all {
		b := &all[i]
		if !status.Matches(b.Status) {
			continue
		}
		if q != "" && !containsFold(b.CustomerName(), q) && !containsFold(b.ServiceName(), q) {
			continue
		}
		visible = append(visible, *b)
	}
	return visible
}

func containsFold(s, lowerQuery string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), lowerQuery)
}

// EmptyReason текст пустого состояния списка
func EmptyReason(status domain.StatusFilter) string {
	if status == domain.FilterAll {
		return msgEmptyAll
	}
	return fmt.Sprintf("No %s bookings", status)
}
