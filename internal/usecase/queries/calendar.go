package queries

import (
	"time"

	"event-portal/internal/domain/event"
)

type Color struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

var (
	Red    = Color{Primary: "#ad2121", Secondary: "#FAE3E3"}
	Blue   = Color{Primary: "#1e90ff", Secondary: "#D1E8FF"}
	Yellow = Color{Primary: "#e3bc08", Secondary: "#FDF1BA"}
)

// Palette is cycled by position when projecting events.
var Palette = [3]Color{Red, Blue, Yellow}

type Meta struct {
	Description    string               `json:"description"`
	AvailableSlots int                  `json:"available_slots"`
	UUID           string               `json:"uuid"`
	Registrations  []event.Registration `json:"registrations"`
}

// Occurrence is an event placed on the calendar.
type Occurrence struct {
	EventID int64     `json:"event_id"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Title   string    `json:"title"`
	Color   Color     `json:"color"`
	Meta    Meta      `json:"meta"`
}

func ColorAt(i int) Color {
	return Palette[i%len(Palette)]
}

// Project maps events to occurrences, preserving order. The color depends only on the
// position of the event in the slice.
func Project(events []event.Event) []Occurrence {
	out := make([]Occurrence, len(events))
	for i, e := range events {
		regs := e.Registrations
		if regs == nil {
			regs = []event.Registration{}
		}
		out[i] = Occurrence{
			EventID: e.ID,
			Start:   e.Start,
			End:     e.End,
			Title:   e.Name,
			Color:   ColorAt(i),
			Meta: Meta{
				Description:    e.Description,
				AvailableSlots: e.AvailableSlots,
				UUID:           e.UUID,
				Registrations:  regs,
			},
		}
	}
	return out
}

// OccurrencesOn returns the occurrences overlapping the calendar day of day in loc.
func OccurrencesOn(day time.Time, occurrences []Occurrence, loc *time.Location) []Occurrence {
	if loc == nil {
		loc = time.UTC
	}
	from := startOfDay(day, loc)
	to := from.AddDate(0, 0, 1)

	out := []Occurrence{}
	for _, o := range occurrences {
		if overlaps(o, from, to) {
			out = append(out, o)
		}
	}
	return out
}

func overlaps(o Occurrence, from, to time.Time) bool {
	if !o.End.After(o.Start) {
		return !o.Start.Before(from) && o.Start.Before(to)
	}
	return o.Start.Before(to) && o.End.After(from)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
