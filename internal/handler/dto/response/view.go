package response

import (
	"time"

	"event-portal/internal/usecase/queries"
	"event-portal/internal/usecase/session"
)

type MetaResponse struct {
	Description    string                 `json:"description"`
	AvailableSlots int                    `json:"available_slots"`
	UUID           string                 `json:"uuid"`
	Registrations  []RegistrationResponse `json:"registrations"`
}

type OccurrenceResponse struct {
	EventID int64         `json:"event_id"`
	Start   time.Time     `json:"start"`
	End     time.Time     `json:"end"`
	Title   string        `json:"title"`
	Color   queries.Color `json:"color"`
	Meta    MetaResponse  `json:"meta"`
}

type GroupResponse struct {
	EventID        int64                  `json:"event_id"`
	EventName      string                 `json:"event_name"`
	EventDate      time.Time              `json:"event_date"`
	AvailableSlots int                    `json:"available_slots"`
	Registrations  []RegistrationResponse `json:"registrations"`
}

type CalendarResponse struct {
	Calendar  queries.CalendarState `json:"calendar"`
	ActiveDay []OccurrenceResponse  `json:"active_day"`
}

type DayClickedResponse struct {
	Fired bool `json:"fired"`
	CalendarResponse
}

// EventsResponse is the public page state.
type EventsResponse struct {
	Events      []EventResponse      `json:"events"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
	CalendarResponse
	InFlight session.InFlight  `json:"in_flight"`
	Feedback *session.Feedback `json:"feedback"`
}

// DashboardResponse is the admin page state.
type DashboardResponse struct {
	Groups      []GroupResponse      `json:"groups"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
	CalendarResponse
	InFlight session.InFlight  `json:"in_flight"`
	Feedback *session.Feedback `json:"feedback"`
}

func FromOccurrences(occurrences []queries.Occurrence) []OccurrenceResponse {
	out := make([]OccurrenceResponse, len(occurrences))
	for i, o := range occurrences {
		out[i] = OccurrenceResponse{
			EventID: o.EventID,
			Start:   o.Start,
			End:     o.End,
			Title:   o.Title,
			Color:   o.Color,
			Meta: MetaResponse{
				Description:    o.Meta.Description,
				AvailableSlots: o.Meta.AvailableSlots,
				UUID:           o.Meta.UUID,
				Registrations:  FromRegistrations(o.Meta.Registrations),
			},
		}
	}
	return out
}

func FromGroups(groups []queries.GroupedAdminView) []GroupResponse {
	out := make([]GroupResponse, len(groups))
	for i, g := range groups {
		out[i] = GroupResponse{
			EventID:        g.EventID,
			EventName:      g.EventName,
			EventDate:      g.EventDate,
			AvailableSlots: g.AvailableSlots,
			Registrations:  FromRegistrations(g.Registrations),
		}
	}
	return out
}

func FromCalendar(st session.State) CalendarResponse {
	return CalendarResponse{
		Calendar:  st.Calendar,
		ActiveDay: FromOccurrences(st.ActiveDay),
	}
}

func FromEventsState(st session.State) EventsResponse {
	return EventsResponse{
		Events:           FromEvents(st.Events),
		Occurrences:      FromOccurrences(st.Occurrences),
		CalendarResponse: FromCalendar(st),
		InFlight:         st.InFlight,
		Feedback:         st.Feedback,
	}
}

func FromDashboardState(st session.State) DashboardResponse {
	return DashboardResponse{
		Groups:           FromGroups(st.Groups),
		Occurrences:      FromOccurrences(st.Occurrences),
		CalendarResponse: FromCalendar(st),
		InFlight:         st.InFlight,
		Feedback:         st.Feedback,
	}
}
