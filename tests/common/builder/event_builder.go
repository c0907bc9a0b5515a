//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"event-portal/internal/domain/event"
)

type EventBuilder struct {
	ID             int64
	UUID           string
	Name           string
	Description    string
	Start          time.Time
	End            time.Time
	AvailableSlots int
	Registrations  []event.Registration
}

func NewEventBuilder() *EventBuilder {
	start := time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)
	return &EventBuilder{
		ID:             1,
		UUID:           "u1",
		Name:           "Spring concert",
		Description:    "Open rehearsal followed by the concert",
		Start:          start,
		End:            start.Add(2 * time.Hour),
		AvailableSlots: 20,
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) WithID(id int64) *EventBuilder {
	b.ID = id
	b.UUID = fmt.Sprintf("u%d", id)
	b.Name = fmt.Sprintf("Event %d", id)
	return b
}

func (b *EventBuilder) WithStart(start time.Time) *EventBuilder {
	duration := b.End.Sub(b.Start)
	b.Start = start
	b.End = start.Add(duration)
	return b
}

func (b *EventBuilder) WithRegistrations(regs ...event.Registration) *EventBuilder {
	b.Registrations = regs
	return b
}

func (b *EventBuilder) Build() event.Event {
	return event.Event{
		ID:             b.ID,
		UUID:           b.UUID,
		Name:           b.Name,
		Description:    b.Description,
		Start:          b.Start,
		End:            b.End,
		AvailableSlots: b.AvailableSlots,
		Registrations:  b.Registrations,
	}
}

func (b *EventBuilder) BuildDraft() event.Draft {
	return event.Draft{
		Name:           b.Name,
		Description:    b.Description,
		Start:          b.Start,
		End:            b.End,
		AvailableSlots: b.AvailableSlots,
	}
}

// Events builds one event per id, in the given order.
func Events(ids ...int64) []event.Event {
	events := make([]event.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, NewEventBuilder().WithID(id).Build())
	}
	return events
}
