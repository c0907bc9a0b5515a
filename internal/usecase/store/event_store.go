package store

import (
	"sync"

	"event-portal/internal/domain/event"
	"event-portal/internal/pkg/observable"
)

// Snapshot is the state held by an EventStore.
type Snapshot struct {
	Events        []event.Event
	Registrations []event.AdminRegistration
}

// EventStore is the single source of truth for the UI. Every change replaces the
// snapshot and notifies subscribers synchronously.
type EventStore struct {
	// serializes read-modify-write cycles; readers go straight to state
	mu    sync.Mutex
	state *observable.Value[Snapshot]
}

func NewEventStore() *EventStore {
	return &EventStore{
		state: observable.New(Snapshot{
			Events:        []event.Event{},
			Registrations: []event.AdminRegistration{},
		}),
	}
}

// Load replaces the events; registrations are kept.
func (s *EventStore) Load(events []event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.state.Get()
	s.state.Set(Snapshot{Events: nonNil(events), Registrations: cur.Registrations})
}

// LoadAdmin replaces both collections at once so subscribers see them together.
func (s *EventStore) LoadAdmin(events []event.Event, registrations []event.AdminRegistration) {
	if registrations == nil {
		registrations = []event.AdminRegistration{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Set(Snapshot{Events: nonNil(events), Registrations: registrations})
}

// ClearRegistrations drops the admin registrations, e.g. on logout.
func (s *EventStore) ClearRegistrations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.state.Get()
	s.state.Set(Snapshot{Events: cur.Events, Registrations: []event.AdminRegistration{}})
}

func (s *EventStore) Insert(e event.Event) []event.Event {
	return s.update(func(events []event.Event) []event.Event { return Insert(events, e) })
}

func (s *EventStore) Replace(uuid string, p event.Patch) []event.Event {
	return s.update(func(events []event.Event) []event.Event { return Replace(events, uuid, p) })
}

func (s *EventStore) Remove(uuid string) []event.Event {
	return s.update(func(events []event.Event) []event.Event { return Remove(events, uuid) })
}

func (s *EventStore) Events() []event.Event {
	return s.state.Get().Events
}

func (s *EventStore) Registrations() []event.AdminRegistration {
	return s.state.Get().Registrations
}

func (s *EventStore) Snapshot() Snapshot {
	return s.state.Get()
}

// Find looks an event up by uuid.
func (s *EventStore) Find(uuid string) (event.Event, bool) {
	for _, e := range s.state.Get().Events {
		if e.UUID == uuid {
			return e, true
		}
	}
	return event.Event{}, false
}

// Subscribe registers fn to run after every change and returns its cancel func.
// Listeners must not mutate the store.
func (s *EventStore) Subscribe(fn func(Snapshot)) func() {
	return s.state.Subscribe(fn)
}

func (s *EventStore) update(fn func([]event.Event) []event.Event) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.state.Get()
	next := fn(cur.Events)
	s.state.Set(Snapshot{Events: next, Registrations: cur.Registrations})
	return next
}

func nonNil(events []event.Event) []event.Event {
	if events == nil {
		return []event.Event{}
	}
	return events
}
