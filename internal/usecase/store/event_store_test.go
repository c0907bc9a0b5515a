//go:build unit

package store_test

import (
	"testing"

	"event-portal/internal/domain/event"
	"event-portal/internal/usecase/store"
	"event-portal/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uuids(events []event.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.UUID)
	}
	return out
}

func TestInsert(t *testing.T) {
	events := builder.Events(1, 2)
	created := builder.NewEventBuilder().WithID(3).Build()

	actual := store.Insert(events, created)

	assert.Equal(t, []string{"u3", "u1", "u2"}, uuids(actual))
	assert.Equal(t, []string{"u1", "u2"}, uuids(events), "input is not mutated")
}

func TestReplace(t *testing.T) {
	t.Run("merges only the matching element", func(t *testing.T) {
		events := builder.Events(1, 2, 3)
		name := "Renamed"

		actual := store.Replace(events, "u2", event.Patch{Name: &name})

		require.Len(t, actual, 3)
		assert.Equal(t, []string{"u1", "u2", "u3"}, uuids(actual))
		assert.Equal(t, "Renamed", actual[1].Name)
		assert.Equal(t, events[0], actual[0])
		assert.Equal(t, events[2], actual[2])
		assert.Equal(t, "Event 2", events[1].Name, "input is not mutated")
	})

	t.Run("unknown uuid returns an equal copy", func(t *testing.T) {
		events := builder.Events(1, 2)
		name := "x"

		actual := store.Replace(events, "missing", event.Patch{Name: &name})

		if diff := cmp.Diff(events, actual); diff != "" {
			t.Errorf("Replace() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRemove(t *testing.T) {
	events := builder.Events(1, 2, 3)

	assert.Equal(t, []string{"u1", "u3"}, uuids(store.Remove(events, "u2")))
	assert.Equal(t, []string{"u1", "u2", "u3"}, uuids(store.Remove(events, "missing")))
	assert.Len(t, events, 3)
}

func TestEventStore(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		s := store.NewEventStore()
		assert.NotNil(t, s.Events())
		assert.Empty(t, s.Events())
		assert.NotNil(t, s.Registrations())
	})

	t.Run("load keeps registrations, load admin replaces both", func(t *testing.T) {
		s := store.NewEventStore()
		regs := []event.AdminRegistration{builder.AdminRegistration(100, 1)}
		s.LoadAdmin(builder.Events(1), regs)

		s.Load(builder.Events(1, 2))

		assert.Len(t, s.Events(), 2)
		assert.Equal(t, regs, s.Registrations())

		s.LoadAdmin(nil, nil)
		assert.Empty(t, s.Events())
		assert.NotNil(t, s.Registrations())
		assert.Empty(t, s.Registrations())
	})

	t.Run("mutations return the new snapshot", func(t *testing.T) {
		s := store.NewEventStore()
		s.Load(builder.Events(1))

		after := s.Insert(builder.NewEventBuilder().WithID(2).Build())
		assert.Equal(t, []string{"u2", "u1"}, uuids(after))

		slots := 0
		after = s.Replace("u1", event.Patch{AvailableSlots: &slots})
		assert.Equal(t, 0, after[1].AvailableSlots)

		after = s.Remove("u2")
		assert.Equal(t, []string{"u1"}, uuids(after))
		assert.Equal(t, after, s.Events())

		found, ok := s.Find("u1")
		require.True(t, ok)
		assert.Equal(t, int64(1), found.ID)
		_, ok = s.Find("u2")
		assert.False(t, ok)
	})

	t.Run("subscribers see every change synchronously", func(t *testing.T) {
		s := store.NewEventStore()
		var seen [][]string
		cancel := s.Subscribe(func(snap store.Snapshot) {
			seen = append(seen, uuids(snap.Events))
		})

		s.Load(builder.Events(1))
		s.Insert(builder.NewEventBuilder().WithID(2).Build())
		cancel()
		s.Remove("u1")

		assert.Equal(t, [][]string{{"u1"}, {"u2", "u1"}}, seen)
	})

	t.Run("clear registrations keeps events", func(t *testing.T) {
		s := store.NewEventStore()
		s.LoadAdmin(builder.Events(1), []event.AdminRegistration{builder.AdminRegistration(100, 1)})

		s.ClearRegistrations()

		assert.Len(t, s.Events(), 1)
		assert.Empty(t, s.Registrations())
	})
}
