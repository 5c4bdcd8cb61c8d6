package catalog

import (
	"context"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
)

// Entity запись каталога с идентификатором, выданным API
type Entity interface {
	GetID() string
}

// Backend операции API над одним видом записей каталога
type Backend[T Entity, In any] interface {
	List(ctx context.Context, token string) ([]T, error)
	Create(ctx context.Context, token string, in In) error
	Update(ctx context.Context, token, id string, in In) error
	Delete(ctx context.Context, token, id string) error
}

// Form данные формы, из которых получается тело запроса
type Form[In any] interface {
	Input() (In, error)
}

// ServicesClient интерфейс клиента API для услуг
type ServicesClient interface {
	ListServices(ctx context.Context, token string) ([]domain.Service, error)
	CreateService(ctx context.Context, token string, in receptionistapi.ServiceInput) error
	UpdateService(ctx context.Context, token, id string, in receptionistapi.ServiceInput) error
	DeleteService(ctx context.Context, token, id string) error
}

// StaffClient интерфейс клиента API для сотрудников
type StaffClient interface {
	ListStaff(ctx context.Context, token string) ([]domain.Staff, error)
	CreateStaff(ctx context.Context, token string, in receptionistapi.StaffInput) error
	UpdateStaff(ctx context.Context, token, id string, in receptionistapi.StaffInput) error
	DeleteStaff(ctx context.Context, token, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
