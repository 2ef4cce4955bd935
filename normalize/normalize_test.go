package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPickStringWalksCandidates(t *testing.T) {
	payload := map[string]any{"b": "second", "c": "third"}
	assert.Equal(t, "second", pickString(payload, "a", "b", "c"))
	assert.Equal(t, "", pickString(payload, "missing"))

	// Empty strings and non-strings are skipped.
	payload = map[string]any{"a": "", "b": 42, "c": "  padded  "}
	assert.Equal(t, "padded", pickString(payload, "a", "b", "c"))
}

func TestPickFloatAcceptsNumbersAndStrings(t *testing.T) {
	assert.Equal(t, 12.5, pickFloat(map[string]any{"v": 12.5}, "v"))
	assert.Equal(t, 12.5, pickFloat(map[string]any{"v": "12.5"}, "v"))
	assert.Equal(t, 0.0, pickFloat(map[string]any{"v": "not a number"}, "v"))
	assert.Equal(t, 0.0, pickFloat(map[string]any{}, "v"))
}

func TestPickTimeLayouts(t *testing.T) {
	want := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, pickTime(map[string]any{"d": "2025-10-05"}, "d"))
	assert.Equal(t, want.Add(10*time.Hour),
		pickTime(map[string]any{"d": "2025-10-05T10:00:00Z"}, "d").UTC())
	assert.True(t, pickTime(map[string]any{"d": "n/a"}, "d").IsZero())
}
