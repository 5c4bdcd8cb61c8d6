package domain

import "fmt"

// BookingAction действие оператора над бронированием
// Статус меняется только через действие; произвольный целевой статус задать нельзя
type BookingAction string

const (
	ActionConfirm  BookingAction = "confirm"
	ActionCancel   BookingAction = "cancel"
	ActionComplete BookingAction = "complete"
)

// AllBookingActions в порядке отображения кнопок
var AllBookingActions = []BookingAction{ActionConfirm, ActionCancel, ActionComplete}

type transition struct {
	from BookingStatus
	to   BookingStatus
}

var actionTransitions = map[BookingAction]transition{
	ActionConfirm:  {from: StatusPending, to: StatusConfirmed},
	ActionCancel:   {from: StatusPending, to: StatusCancelled},
	ActionComplete: {from: StatusConfirmed, to: StatusCompleted},
}

// Transition исходный и целевой статусы действия; пустые значения для неизвестного действия
func (a BookingAction) Transition() (from, to BookingStatus) {
	t, ok := actionTransitions[a]
	if !ok {
		return "", ""
	}
	return t.from, t.to
}

// Target целевой статус действия
func (a BookingAction) Target() BookingStatus {
	_, to := a.Transition()
	return to
}

// Label подпись кнопки
func (a BookingAction) Label() string {
	switch a {
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionComplete:
		return "Mark Complete"
	default:
		return string(a)
	}
}

func ParseBookingAction(s string) (BookingAction, error) {
	a := BookingAction(s)
	if _, ok := actionTransitions[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}
