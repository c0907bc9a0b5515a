package event

import "time"

type Event struct {
	ID             int64
	UUID           string
	Name           string
	Description    string
	Start          time.Time
	End            time.Time
	AvailableSlots int
	Registrations  []Registration
}

type Registration struct {
	ID          int64
	UUID        string
	CreatedAt   time.Time
	FirstName   string
	LastName    string
	Email       *string
	PhoneNumber *string
}

// EventSummary is the event as nested in an admin registration listing.
type EventSummary struct {
	ID             int64
	Name           string
	Start          time.Time
	End            time.Time
	AvailableSlots int
}

// AdminRegistration is a registration joined with the event it belongs to.
type AdminRegistration struct {
	Registration
	Event EventSummary
}

// HasSchedule reports whether the event satisfies Start < End.
func (e Event) HasSchedule() bool {
	return e.Start.Before(e.End)
}

func (e Event) Summary() EventSummary {
	return EventSummary{
		ID:             e.ID,
		Name:           e.Name,
		Start:          e.Start,
		End:            e.End,
		AvailableSlots: e.AvailableSlots,
	}
}
