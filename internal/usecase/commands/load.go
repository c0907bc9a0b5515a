package commands

import (
	"context"

	"event-portal/internal/domain/event"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/shared"
	"event-portal/internal/usecase/store"

	"golang.org/x/sync/errgroup"
)

// AdminLoader fetches events and registrations concurrently and fills the store
// only when both requests succeed.
type AdminLoader struct {
	ds    shared.DataService
	store *store.EventStore
}

func NewAdminLoader(ds shared.DataService, s *store.EventStore) *AdminLoader {
	return &AdminLoader{ds: ds, store: s}
}

func (l *AdminLoader) Load(ctx context.Context) error {
	var (
		events        []event.Event
		registrations []event.AdminRegistration
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = l.ds.GetEvents(gctx)
		return errs.Wrap(err, "get events")
	})
	g.Go(func() error {
		var err error
		registrations, err = l.ds.GetAdminRegistrations(gctx)
		return errs.Wrap(err, "get registrations")
	})
	if err := g.Wait(); err != nil {
		return err
	}

	l.store.LoadAdmin(events, registrations)
	return nil
}

// LoadEvents is the public bootstrap: events only.
func LoadEvents(ctx context.Context, ds shared.DataService, s *store.EventStore) error {
	events, err := ds.GetEvents(ctx)
	if err != nil {
		return errs.Wrap(err, "get events")
	}
	s.Load(events)
	return nil
}
