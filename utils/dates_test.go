package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-10-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2025-10-05T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 14, got.UTC().Hour())

	_, err = ParseDate("05/10/2025")
	assert.Error(t, err)
}

func TestParseDateEndExtendsPlainDates(t *testing.T) {
	got, err := ParseDateEnd("2025-10-05")
	require.NoError(t, err)
	assert.True(t, got.After(time.Date(2025, 10, 5, 23, 59, 59, 0, time.UTC)))
	assert.True(t, got.Before(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)))

	// Explicit timestamps are taken as-is.
	got, err = ParseDateEnd("2025-10-05T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 14, got.UTC().Hour())
}
