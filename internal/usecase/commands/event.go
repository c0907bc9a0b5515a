package commands

import (
	"context"

	"event-portal/internal/domain/event"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/shared"
)

// Editor collects a draft from the administrator. current is nil when creating.
// A nil draft with a nil error means the edit was cancelled.
type Editor interface {
	Edit(ctx context.Context, current *event.Event) (*event.Draft, error)
}

// Submitted is an Editor that returns a draft already filled in by the client.
type Submitted event.Draft

func (d Submitted) Edit(context.Context, *event.Event) (*event.Draft, error) {
	draft := event.Draft(d)
	return &draft, nil
}

type EventCommands struct {
	ds      shared.DataService
	updater *Updater
}

func NewEventCommands(ds shared.DataService, updater *Updater) *EventCommands {
	return &EventCommands{ds: ds, updater: updater}
}

// Save creates the event when uuid is empty and updates it otherwise. The draft is
// validated before any request is made. The result is nil when the editor cancelled.
func (c *EventCommands) Save(ctx context.Context, current *event.Event, editor Editor) (*event.Event, error) {
	draft, err := editor.Edit(ctx, current)
	if err != nil {
		return nil, errs.Wrap(err, "edit event")
	}
	if draft == nil {
		return nil, nil
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	normalized := draft.Normalized()

	if current == nil {
		created, err := c.ds.CreateEvent(ctx, normalized)
		if err != nil {
			return nil, errs.Wrap(err, "create event")
		}
		c.updater.Created(*created)
		return created, nil
	}

	updated, err := c.ds.UpdateEvent(ctx, current.UUID, normalized)
	if err != nil {
		return nil, errs.Wrapf(err, "update event %s", current.UUID)
	}
	c.updater.Updated(current.UUID, *updated)
	return updated, nil
}

func (c *EventCommands) Delete(ctx context.Context, uuid string) error {
	if err := c.ds.DeleteEvent(ctx, uuid); err != nil {
		return errs.Wrapf(err, "delete event %s", uuid)
	}
	c.updater.Deleted(uuid)
	return nil
}

func (c *EventCommands) DeleteRegistration(ctx context.Context, uuid string) error {
	if err := c.ds.DeleteRegistration(ctx, uuid); err != nil {
		return errs.Wrapf(err, "delete registration %s", uuid)
	}
	return errs.Wrap(c.updater.RegistrationDeleted(ctx), "reload after registration delete")
}
