package event

import (
	"strings"
	"time"

	"event-portal/internal/pkg/errs"
)

const (
	DefaultAvailableSlots = 10
	DefaultDuration       = time.Hour
)

var (
	ErrEmptyName       = errs.New("event name is required")
	ErrInvalidSchedule = errs.New("event end must be after its start")
	ErrNegativeSlots   = errs.New("available slots cannot be negative")
)

// Draft is what the event editor submits for create and update.
type Draft struct {
	Name           string
	Description    string
	Start          time.Time
	End            time.Time
	AvailableSlots int
}

func NewDraft(now time.Time) Draft {
	start := now.Truncate(time.Hour)
	return Draft{
		Start:          start,
		End:            start.Add(DefaultDuration),
		AvailableSlots: DefaultAvailableSlots,
	}
}

func DraftFrom(e Event) Draft {
	return Draft{
		Name:           e.Name,
		Description:    e.Description,
		Start:          e.Start,
		End:            e.End,
		AvailableSlots: e.AvailableSlots,
	}
}

// Validate checks the draft locally; failures are marked errs.ErrValidation.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errs.Mark(ErrEmptyName, errs.ErrValidation)
	}
	if !d.Start.Before(d.End) {
		return errs.Mark(ErrInvalidSchedule, errs.ErrValidation)
	}
	if d.AvailableSlots < 0 {
		return errs.Mark(ErrNegativeSlots, errs.ErrValidation)
	}
	return nil
}

// Normalized trims text fields before the draft is sent.
func (d Draft) Normalized() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	return d
}
