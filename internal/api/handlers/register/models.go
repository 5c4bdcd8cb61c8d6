package register

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
)

// PageData данные формы регистрации
type PageData struct {
	Name          string
	Email         string
	BusinessName  string
	BusinessType  string
	BusinessTypes []domain.BusinessType
}

// RegisterForm HTTP form model
type RegisterForm struct {
	Name         string
	Email        string
	Password     string
	BusinessName string
	BusinessType string
}

func parseForm(r *http.Request) RegisterForm {
	return RegisterForm{
		Name:         strings.TrimSpace(r.PostFormValue("name")),
		Email:        strings.TrimSpace(r.PostFormValue("email")),
		Password:     r.PostFormValue("password"),
		BusinessName: strings.TrimSpace(r.PostFormValue("businessName")),
		BusinessType: r.PostFormValue("businessType"),
	}
}

// ToServiceInput конвертирует форму в модель сервиса
func (f RegisterForm) ToServiceInput() session.RegisterInput {
	return session.RegisterInput{
		Name:         f.Name,
		Email:        f.Email,
		Password:     f.Password,
		BusinessName: f.BusinessName,
		BusinessType: f.BusinessType,
	}
}

// pageData возвращает введенные значения обратно в форму; пароль не возвращается
func (f RegisterForm) pageData() PageData {
	businessType := f.BusinessType
	if !domain.IsKnownBusinessType(businessType) {
		businessType = domain.BusinessTypes[0].Value
	}
	return PageData{
		Name:          f.Name,
		Email:         f.Email,
		BusinessName:  f.BusinessName,
		BusinessType:  businessType,
		BusinessTypes: domain.BusinessTypes,
	}
}
