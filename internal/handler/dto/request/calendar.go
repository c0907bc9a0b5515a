package request

import (
	"time"

	"event-portal/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

type DayRequest struct {
	// Date is either a calendar date (2026-03-14) or an RFC 3339 timestamp.
	Date string `json:"date" binding:"required"`
}

// Day parses Date, reading plain dates in loc.
func (r DayRequest) Day(loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, r.Date, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "date %q", r.Date), errs.ErrValidation)
	}
	return t, nil
}

type ViewRequest struct {
	Mode string `json:"mode" binding:"required,oneof=month week day"`
}

type NavigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=previous next today"`
}
