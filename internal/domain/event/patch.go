package event

import (
	"time"

	"event-portal/internal/pkg/patch"
)

// Patch carries the fields to overwrite on an existing event; nil keeps the current value.
type Patch struct {
	ID             *int64
	Name           *string
	Description    *string
	Start          *time.Time
	End            *time.Time
	AvailableSlots *int
	Registrations  []Registration
}

// PatchFrom turns a canonical server record into a patch covering every field.
// UUID is never patched: it is the lookup key.
func PatchFrom(e Event) Patch {
	return Patch{
		ID:             &e.ID,
		Name:           &e.Name,
		Description:    &e.Description,
		Start:          &e.Start,
		End:            &e.End,
		AvailableSlots: &e.AvailableSlots,
		Registrations:  e.Registrations,
	}
}

// Apply returns a copy of e with p merged over it.
func (p Patch) Apply(e Event) Event {
	return Event{
		ID:             patch.Coalesce(p.ID, e.ID),
		UUID:           e.UUID,
		Name:           patch.Coalesce(p.Name, e.Name),
		Description:    patch.Coalesce(p.Description, e.Description),
		Start:          patch.Coalesce(p.Start, e.Start),
		End:            patch.Coalesce(p.End, e.End),
		AvailableSlots: patch.Coalesce(p.AvailableSlots, e.AvailableSlots),
		Registrations:  patch.CoalesceSlice(p.Registrations, e.Registrations),
	}
}
