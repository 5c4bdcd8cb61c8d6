package login

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/service/session"
)

// PageData поля формы входа, которые возвращаются в форму после ошибки
type PageData struct {
	Email string
}

// LoginForm HTTP form model
type LoginForm struct {
	Email    string
	Password string
}

func parseForm(r *http.Request) LoginForm {
	return LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
}

// ToServiceInput конвертирует форму в модель сервиса
func (f LoginForm) ToServiceInput() session.LoginInput {
	return session.LoginInput{Email: f.Email, Password: f.Password}
}
