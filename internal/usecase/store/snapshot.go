// Package store keeps the client-side snapshot of events and admin registrations.
package store

import "event-portal/internal/domain/event"

// Insert returns a new snapshot with e in front of events.
func Insert(events []event.Event, e event.Event) []event.Event {
	out := make([]event.Event, 0, len(events)+1)
	out = append(out, e)
	return append(out, events...)
}

// Replace merges p into the event with the given uuid. Positions and length are kept;
// an unknown uuid yields an unchanged copy.
func Replace(events []event.Event, uuid string, p event.Patch) []event.Event {
	out := make([]event.Event, len(events))
	for i, e := range events {
		if e.UUID == uuid {
			out[i] = p.Apply(e)
			continue
		}
		out[i] = e
	}
	return out
}

// Remove returns a new snapshot without the event carrying uuid.
func Remove(events []event.Event, uuid string) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.UUID != uuid {
			out = append(out, e)
		}
	}
	return out
}
