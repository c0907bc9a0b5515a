package shared

import (
	"context"

	"event-portal/internal/domain/event"
	"event-portal/internal/domain/registration"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/dataservice/mock_dataservice.go -package=dataservicemock

// DataService is the remote REST service owning events and registrations.
// Implementations mark failures with errs.ErrUnauthenticated, errs.ErrConflict,
// errs.ErrValidation or errs.ErrTransient.
type DataService interface {
	GetEvents(ctx context.Context) ([]event.Event, error)
	GetAdminRegistrations(ctx context.Context) ([]event.AdminRegistration, error)
	CreateEvent(ctx context.Context, draft event.Draft) (*event.Event, error)
	UpdateEvent(ctx context.Context, uuid string, draft event.Draft) (*event.Event, error)
	DeleteEvent(ctx context.Context, uuid string) error
	// RegisterToEvent returns the confirmation message from the server, possibly empty.
	RegisterToEvent(ctx context.Context, submission registration.Submission) (string, error)
	DeleteRegistration(ctx context.Context, uuid string) error
	LoginAdmin(ctx context.Context, password string) error
}

// DataServiceFactory builds one client per visitor session so credentials are not shared.
type DataServiceFactory interface {
	New() (DataService, error)
}
