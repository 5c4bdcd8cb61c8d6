package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирования нет в загруженном списке
	ErrBookingNotFound = errors.New("booking not found")

	// ErrActionNotAllowed возвращается, когда действие не предусмотрено для текущего статуса
	ErrActionNotAllowed = errors.New("action is not allowed for booking status")

	// ErrLoadFailed возвращается, когда не удалось получить список бронирований
	ErrLoadFailed = errors.New("failed to load bookings")

	// ErrTransitionFailed возвращается, когда API отклонил смену статуса
	ErrTransitionFailed = errors.New("failed to update booking status")
)
