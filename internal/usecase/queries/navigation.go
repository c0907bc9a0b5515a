package queries

import (
	"time"

	"event-portal/internal/pkg/errs"
)

type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

var ErrUnknownViewMode = errs.New("unknown calendar view mode")

func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(s); m {
	case ViewMonth, ViewWeek, ViewDay:
		return m, nil
	default:
		return "", errs.Mark(errs.Wrapf(ErrUnknownViewMode, "mode %q", s), errs.ErrValidation)
	}
}

type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
	DirectionToday    Direction = "today"
)

// CalendarState is what the calendar widget renders from.
type CalendarState struct {
	ViewDate      time.Time `json:"view_date"`
	ActiveDayOpen bool      `json:"active_day_open"`
	ViewMode      ViewMode  `json:"view_mode"`
}

// Navigator is the calendar navigation state machine. It is not safe for concurrent
// use; the owning session serializes access.
type Navigator struct {
	state CalendarState
	loc   *time.Location
}

// NewNavigator starts in month view on now with the day panel closed.
func NewNavigator(now time.Time, loc *time.Location) *Navigator {
	if loc == nil {
		loc = time.UTC
	}
	return &Navigator{
		state: CalendarState{ViewDate: now.In(loc), ViewMode: ViewMonth},
		loc:   loc,
	}
}

func (n *Navigator) State() CalendarState {
	return n.state
}

func (n *Navigator) Location() *time.Location {
	return n.loc
}

// DayClicked handles a click on a month cell. Clicks outside the month of the current
// view date are ignored and reported as false. Otherwise the view date moves to date
// and the day panel toggles: it closes when the open day is clicked again or the day
// has nothing on it, and opens in every other case.
func (n *Navigator) DayClicked(date time.Time, occurrencesOnDate []Occurrence) bool {
	if !n.sameMonth(date, n.state.ViewDate) {
		return false
	}

	if (n.sameDay(n.state.ViewDate, date) && n.state.ActiveDayOpen) || len(occurrencesOnDate) == 0 {
		n.state.ActiveDayOpen = false
	} else {
		n.state.ActiveDayOpen = true
	}
	n.state.ViewDate = date.In(n.loc)
	return true
}

func (n *Navigator) SetView(mode ViewMode) error {
	if _, err := ParseViewMode(string(mode)); err != nil {
		return err
	}
	n.state.ViewMode = mode
	return nil
}

func (n *Navigator) CloseDay() {
	n.state.ActiveDayOpen = false
}

// Previous moves the view date back by one unit of the current view mode.
func (n *Navigator) Previous() {
	n.state.ViewDate = shift(n.state.ViewDate, n.state.ViewMode, -1)
	n.state.ActiveDayOpen = false
}

// Next moves the view date forward by one unit of the current view mode.
func (n *Navigator) Next() {
	n.state.ViewDate = shift(n.state.ViewDate, n.state.ViewMode, 1)
	n.state.ActiveDayOpen = false
}

func (n *Navigator) Today(now time.Time) {
	n.state.ViewDate = now.In(n.loc)
	n.state.ActiveDayOpen = false
}

func (n *Navigator) Navigate(dir Direction, now time.Time) error {
	switch dir {
	case DirectionPrevious:
		n.Previous()
	case DirectionNext:
		n.Next()
	case DirectionToday:
		n.Today(now)
	default:
		return errs.Mark(errs.Newf("unknown direction %q", dir), errs.ErrValidation)
	}
	return nil
}

func (n *Navigator) sameMonth(a, b time.Time) bool {
	ay, am, _ := a.In(n.loc).Date()
	by, bm, _ := b.In(n.loc).Date()
	return ay == by && am == bm
}

func (n *Navigator) sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(n.loc).Date()
	by, bm, bd := b.In(n.loc).Date()
	return ay == by && am == bm && ad == bd
}

func shift(t time.Time, mode ViewMode, step int) time.Time {
	switch mode {
	case ViewWeek:
		return t.AddDate(0, 0, 7*step)
	case ViewDay:
		return t.AddDate(0, 0, step)
	default:
		return addMonths(t, step)
	}
}

// addMonths clamps to the last day of the target month, so Jan 31 + 1 is Feb 28/29.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}
