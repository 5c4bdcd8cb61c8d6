package catalog

import (
	"context"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
	"github.com/m04kA/SMC-ReceptionistDashboard/internal/integrations/receptionistapi"
)

// ServicesWorkflow сценарий экрана услуг (/business/services)
type ServicesWorkflow = Workflow[domain.Service, receptionistapi.ServiceInput]

// StaffWorkflow сценарий экрана сотрудников (/business/staff)
type StaffWorkflow = Workflow[domain.Staff, receptionistapi.StaffInput]

func NewServicesWorkflow(client ServicesClient, logger Logger) *ServicesWorkflow {
	return NewWorkflow[domain.Service, receptionistapi.ServiceInput]("service", servicesBackend{client: client}, logger)
}

func NewStaffWorkflow(client StaffClient, logger Logger) *StaffWorkflow {
	return NewWorkflow[domain.Staff, receptionistapi.StaffInput]("staff", staffBackend{client: client}, logger)
}

type servicesBackend struct {
	client ServicesClient
}

func (b servicesBackend) List(ctx context.Context, token string) ([]domain.Service, error) {
	return b.client.ListServices(ctx, token)
}

func (b servicesBackend) Create(ctx context.Context, token string, in receptionistapi.ServiceInput) error {
	return b.client.CreateService(ctx, token, in)
}

func (b servicesBackend) Update(ctx context.Context, token, id string, in receptionistapi.ServiceInput) error {
	return b.client.UpdateService(ctx, token, id, in)
}

func (b servicesBackend) Delete(ctx context.Context, token, id string) error {
	return b.client.DeleteService(ctx, token, id)
}

type staffBackend struct {
	client StaffClient
}

func (b staffBackend) List(ctx context.Context, token string) ([]domain.Staff, error) {
	return b.client.ListStaff(ctx, token)
}

func (b staffBackend) Create(ctx context.Context, token string, in receptionistapi.StaffInput) error {
	return b.client.CreateStaff(ctx, token, in)
}

func (b staffBackend) Update(ctx context.Context, token, id string, in receptionistapi.StaffInput) error {
	return b.client.UpdateStaff(ctx, token, id, in)
}

func (b staffBackend) Delete(ctx context.Context, token, id string) error {
	return b.client.DeleteStaff(ctx, token, id)
}
