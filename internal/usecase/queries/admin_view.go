package queries

import (
	"time"

	"event-portal/internal/domain/event"
)

// GroupedAdminView is one event row of the admin screen with its registrations.
type GroupedAdminView struct {
	EventID        int64                `json:"event_id"`
	EventName      string               `json:"event_name"`
	EventDate      time.Time            `json:"event_date"`
	AvailableSlots int                  `json:"available_slots"`
	Registrations  []event.Registration `json:"registrations"`
}

// Aggregate groups registrations under their events. One view is produced per event,
// in event order, each holding its registrations in input order. Registrations whose
// event is not in events are dropped.
func Aggregate(events []event.Event, registrations []event.AdminRegistration) []GroupedAdminView {
	views := make([]GroupedAdminView, len(events))
	index := make(map[int64]int, len(events))
	for i, e := range events {
		views[i] = GroupedAdminView{
			EventID:        e.ID,
			EventName:      e.Name,
			EventDate:      e.Start,
			AvailableSlots: e.AvailableSlots,
			Registrations:  []event.Registration{},
		}
		if _, seen := index[e.ID]; !seen {
			index[e.ID] = i
		}
	}

	for _, r := range registrations {
		i, ok := index[r.Event.ID]
		if !ok {
			continue
		}
		views[i].Registrations = append(views[i].Registrations, r.Registration)
	}

	return views
}
