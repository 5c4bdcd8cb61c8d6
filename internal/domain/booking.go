package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// Customer клиент, записавшийся через WhatsApp
// Оба поля могут отсутствовать в ответе API
type Customer struct {
	Name           string `json:"name,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
}

// ServiceRef краткие данные услуги внутри бронирования
type ServiceRef struct {
	Name string `json:"name"`
}

// StaffRef назначенный сотрудник (присутствует только если назначен)
type StaffRef struct {
	Name string `json:"name"`
}

// Booking represents a booking as returned by the receptionist API
// Бронирования создаются бэкендом; дашборд их только читает и меняет status
type Booking struct {
	ID        string        `json:"id"`
	Status    BookingStatus `json:"status"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`

	Customer *Customer   `json:"customer,omitempty"`
	Service  *ServiceRef `json:"service,omitempty"`
	Staff    *StaffRef   `json:"staff,omitempty"`
}

// CustomerName имя клиента или пустая строка, если данных нет
func (b *Booking) CustomerName() string {
	if b.Customer == nil {
		return ""
	}
	return b.Customer.Name
}

// ServiceName название услуги или пустая строка, если данных нет
func (b *Booking) ServiceName() string {
	if b.Service == nil {
		return ""
	}
	return b.Service.Name
}

// AvailableActions действия оператора, доступные для текущего статуса
func (b *Booking) AvailableActions() []BookingAction {
	var actions []BookingAction
	for _, a := range AllBookingActions {
		if from, _ := a.Transition(); from == b.Status {
			actions = append(actions, a)
		}
	}
	return actions
}

// Allows returns true if action a is offered for the booking's current status
func (b *Booking) Allows(a BookingAction) bool {
	from, _ := a.Transition()
	return from != "" && from == b.Status
}

// ParseBookingStatus проверяет значение статуса из внешнего источника
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}
