package commands

import (
	"context"

	"event-portal/internal/domain/registration"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/shared"
)

const DefaultRegisteredMessage = "Registration successful!"

type RegistrationCommands struct {
	ds shared.DataService
}

func NewRegistrationCommands(ds shared.DataService) *RegistrationCommands {
	return &RegistrationCommands{ds: ds}
}

// Submit validates the form and registers the visitor. An invalid form returns a
// *registration.ValidationError without contacting the server.
func (c *RegistrationCommands) Submit(ctx context.Context, eventUUID string, form registration.Form) (string, error) {
	if err := registration.Validate(form).Err(); err != nil {
		return "", err
	}

	message, err := c.ds.RegisterToEvent(ctx, form.Submission(eventUUID))
	if err != nil {
		return "", errs.Wrapf(err, "register to event %s", eventUUID)
	}
	if message == "" {
		return DefaultRegisteredMessage, nil
	}
	return message, nil
}
