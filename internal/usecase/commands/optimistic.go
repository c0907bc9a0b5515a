package commands

import (
	"context"

	"event-portal/internal/domain/event"
	"event-portal/internal/usecase/store"
)

// Loader refetches the admin data set and replaces the store content.
type Loader interface {
	Load(ctx context.Context) error
}

// Updater patches the local store after a mutation the server has accepted.
// It is only called on success; a failed request leaves the store as it was.
type Updater struct {
	store  *store.EventStore
	loader Loader
}

func NewUpdater(s *store.EventStore, loader Loader) *Updater {
	return &Updater{store: s, loader: loader}
}

func (u *Updater) Created(e event.Event) {
	u.store.Insert(e)
}

// Updated merges the canonical server record into the event with uuid.
func (u *Updater) Updated(uuid string, e event.Event) {
	u.store.Replace(uuid, event.PatchFrom(e))
}

func (u *Updater) Deleted(uuid string) {
	u.store.Remove(uuid)
}

// RegistrationDeleted reloads events and registrations instead of patching:
// slot counts change on the server side.
func (u *Updater) RegistrationDeleted(ctx context.Context) error {
	return u.loader.Load(ctx)
}
