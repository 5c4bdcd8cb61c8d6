package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
)

// ServiceForm поля формы услуги в том виде, как они пришли из браузера
type ServiceForm struct {
	Name        string `validate:"required"`
	Description string
	Category    string
	Duration    string `validate:"required"`
	Price       string `validate:"required"`
}

// Input разбирает длительность и цену
func (f ServiceForm) Input() (receptionistapi.ServiceInput, error) {
	duration, err := strconv.Atoi(strings.TrimSpace(f.Duration))
	if err != nil {
		return receptionistapi.ServiceInput{}, fmt.Errorf("duration %q is not a number", f.Duration)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		return receptionistapi.ServiceInput{}, fmt.Errorf("price %q is not a number", f.Price)
	}
	return receptionistapi.ServiceInput{
		Name:        f.Name,
		Description: f.Description,
		Category:    f.Category,
		Duration:    duration,
		Price:       price,
	}, nil
}

// ServiceFormFrom заполняет форму редактирования из существующей услуги
func ServiceFormFrom(s domain.Service) ServiceForm {
	return ServiceForm{
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Duration:    strconv.Itoa(s.Duration),
		Price:       s.Price.StringFixed(2),
	}
}

// StaffForm поля формы сотрудника
type StaffForm struct {
	Name  string `validate:"required"`
	Email string
	Phone string
}

func (f StaffForm) Input() (receptionistapi.StaffInput, error) {
	return receptionistapi.StaffInput{Name: f.Name, Email: f.Email, Phone: f.Phone}, nil
}

func StaffFormFrom(s domain.Staff) StaffForm {
	return StaffForm{Name: s.Name, Email: s.Email, Phone: s.Phone}
}
