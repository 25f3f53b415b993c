package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayFirst(t *testing.T) {
	got, ok := Parse("05-03-2025")
	require.True(t, ok)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestParseISO(t *testing.T) {
	got, ok := Parse("2025-03-05")
	require.True(t, ok)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestParseBothShapesAgree(t *testing.T) {
	dayFirst, ok := Parse("05-03-2025")
	require.True(t, ok)
	iso, ok := Parse("2025-03-05")
	require.True(t, ok)
	assert.True(t, dayFirst.Equal(iso))
}

func TestParseRejectsJunk(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "05/03/2025", "05-03", "a-b-c", "2025-13-45"} {
		_, ok := Parse(input)
		assert.False(t, ok, "input %q should not parse", input)
	}
}

func TestParseUnpaddedSegments(t *testing.T) {
	got, ok := Parse("5-3-2025")
	require.True(t, ok)
	assert.Equal(t, 5, got.Day())
	assert.Equal(t, time.March, got.Month())
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2025, time.March, 5, 17, 42, 9, 123, time.UTC)
	got := Midnight(ts)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 5, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 5, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestEndOfWeek(t *testing.T) {
	// Wednesday 12 March 2025 -> Sunday 16 March
	wed := time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), EndOfWeek(wed))

	// a Sunday reference extends a full seven days
	sun := time.Date(2025, time.March, 9, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), EndOfWeek(sun))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "05-03-2025", Display("2025-03-05"))
	assert.Equal(t, "05-03-2025", Display("05-03-2025"))
	assert.Equal(t, "garbage", Display("garbage"))
}
