//go:build unit

package patch_test

import (
	"testing"

	"event-portal/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	zero := 0
	assert.Equal(t, 7, patch.Coalesce(nil, 7))
	assert.Equal(t, 0, patch.Coalesce(&zero, 7), "explicit zero overrides fallback")
}

func TestCoalesceSlice(t *testing.T) {
	fallback := []string{"a"}
	assert.Equal(t, fallback, patch.CoalesceSlice(nil, fallback))
	assert.Empty(t, patch.CoalesceSlice([]string{}, fallback))
	assert.Equal(t, []string{"b"}, patch.CoalesceSlice([]string{"b"}, fallback))
}
