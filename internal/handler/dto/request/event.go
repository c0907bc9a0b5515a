package request

import (
	"time"

	"event-portal/internal/domain/event"
)

// EventRequest is the editor submission. Content rules are checked by event.Draft.
type EventRequest struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	AvailableSlots int       `json:"available_slots"`
}

func (r EventRequest) ToDraft() event.Draft {
	return event.Draft{
		Name:           r.Name,
		Description:    r.Description,
		Start:          r.StartDate,
		End:            r.EndDate,
		AvailableSlots: r.AvailableSlots,
	}
}
