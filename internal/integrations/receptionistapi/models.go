package receptionistapi

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

// LoginRequest тело POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest тело POST /auth/register
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
}

// AuthResponse ответ login/register
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// ServiceInput поля услуги для создания и редактирования
type ServiceInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Duration    int             `json:"duration"`
	Price       decimal.Decimal `json:"price"`
}

// StaffInput поля сотрудника для создания и редактирования
type StaffInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Error string `json:"error"`
}

type updateStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

type bookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

type businessResponse struct {
	Business *domain.Business `json:"business"`
}

type servicesResponse struct {
	Services []domain.Service `json:"services"`
}

type staffResponse struct {
	Staff []domain.Staff `json:"staff"`
}
