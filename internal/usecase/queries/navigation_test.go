//go:build unit

package queries_test

import (
	"testing"
	"time"

	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/queries"
	"event-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func march(d int) time.Time {
	return time.Date(2026, time.March, d, 10, 0, 0, 0, time.UTC)
}

func TestNavigator_DayClicked(t *testing.T) {
	some := queries.Project(builder.Events(1))

	cases := []struct {
		name        string
		open        bool
		viewDate    time.Time
		clicked     time.Time
		occurrences []queries.Occurrence
		fired       bool
		expectOpen  bool
		expectDate  time.Time
	}{
		{
			name:        "other day with events opens",
			viewDate:    march(10),
			clicked:     march(14),
			occurrences: some,
			fired:       true,
			expectOpen:  true,
			expectDate:  march(14),
		},
		{
			name:        "same open day closes",
			open:        true,
			viewDate:    march(14),
			clicked:     march(14),
			occurrences: some,
			fired:       true,
			expectOpen:  false,
			expectDate:  march(14),
		},
		{
			name:        "same closed day with events opens",
			viewDate:    march(14),
			clicked:     march(14),
			occurrences: some,
			fired:       true,
			expectOpen:  true,
			expectDate:  march(14),
		},
		{
			name:       "day without events closes",
			open:       true,
			viewDate:   march(10),
			clicked:    march(20),
			fired:      true,
			expectOpen: false,
			expectDate: march(20),
		},
		{
			name:        "other month is ignored",
			open:        true,
			viewDate:    march(10),
			clicked:     time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
			occurrences: some,
			fired:       false,
			expectOpen:  true,
			expectDate:  march(10),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := queries.NewNavigator(c.viewDate, time.UTC)
			if c.open {
				// reach the open state through a click on the view date
				require.True(t, n.DayClicked(c.viewDate, some))
				require.True(t, n.State().ActiveDayOpen)
			}

			fired := n.DayClicked(c.clicked, c.occurrences)

			assert.Equal(t, c.fired, fired)
			assert.Equal(t, c.expectOpen, n.State().ActiveDayOpen)
			assert.True(t, c.expectDate.Equal(n.State().ViewDate))
		})
	}
}

func TestNavigator_SetView(t *testing.T) {
	n := queries.NewNavigator(march(1), time.UTC)
	assert.Equal(t, queries.ViewMonth, n.State().ViewMode)

	require.NoError(t, n.SetView(queries.ViewWeek))
	assert.Equal(t, queries.ViewWeek, n.State().ViewMode)

	require.NoError(t, n.SetView(queries.ViewWeek))
	assert.Equal(t, queries.ViewWeek, n.State().ViewMode)

	err := n.SetView("year")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.Equal(t, queries.ViewWeek, n.State().ViewMode)
}

func TestNavigator_CloseDay(t *testing.T) {
	n := queries.NewNavigator(march(14), time.UTC)
	n.DayClicked(march(14), queries.Project(builder.Events(1)))
	require.True(t, n.State().ActiveDayOpen)

	n.CloseDay()
	assert.False(t, n.State().ActiveDayOpen)
	n.CloseDay()
	assert.False(t, n.State().ActiveDayOpen)
}

func TestNavigator_Move(t *testing.T) {
	cases := []struct {
		mode     queries.ViewMode
		start    time.Time
		previous time.Time
		next     time.Time
	}{
		{
			mode:     queries.ViewMonth,
			start:    time.Date(2026, time.January, 31, 10, 0, 0, 0, time.UTC),
			previous: time.Date(2025, time.December, 31, 10, 0, 0, 0, time.UTC),
			next:     time.Date(2026, time.February, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			mode:     queries.ViewWeek,
			start:    march(14),
			previous: march(7),
			next:     march(21),
		},
		{
			mode:     queries.ViewDay,
			start:    time.Date(2026, time.March, 31, 10, 0, 0, 0, time.UTC),
			previous: march(30),
			next:     time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, c := range cases {
		t.Run(string(c.mode), func(t *testing.T) {
			n := queries.NewNavigator(c.start, time.UTC)
			require.NoError(t, n.SetView(c.mode))

			n.Previous()
			assert.True(t, c.previous.Equal(n.State().ViewDate), "previous: %s", n.State().ViewDate)

			n = queries.NewNavigator(c.start, time.UTC)
			require.NoError(t, n.SetView(c.mode))
			n.Next()
			assert.True(t, c.next.Equal(n.State().ViewDate), "next: %s", n.State().ViewDate)
		})
	}

	t.Run("moving closes the day panel", func(t *testing.T) {
		n := queries.NewNavigator(march(14), time.UTC)
		n.DayClicked(march(14), queries.Project(builder.Events(1)))

		require.NoError(t, n.Navigate(queries.DirectionNext, march(1)))
		assert.False(t, n.State().ActiveDayOpen)
	})

	t.Run("today jumps to now", func(t *testing.T) {
		n := queries.NewNavigator(march(14), time.UTC)
		now := time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC)

		require.NoError(t, n.Navigate(queries.DirectionToday, now))
		assert.True(t, now.Equal(n.State().ViewDate))
	})

	t.Run("unknown direction", func(t *testing.T) {
		n := queries.NewNavigator(march(14), time.UTC)
		err := n.Navigate("sideways", march(1))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
