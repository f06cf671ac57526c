package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISO(t *testing.T) {
	d, err := ParseISO("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2025-6-1", "01.06.2025", "2025-06-01T00:00:00Z", "2025-13-40"} {
		_, err := ParseISO(bad)
		assert.Error(t, err, bad)
	}
}

func TestDatesBetween(t *testing.T) {
	start, _ := ParseISO("2025-06-01")
	end, _ := ParseISO("2025-06-03")

	days, err := DatesBetween(start, end)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2025-06-01", FormatISO(days[0]))
	assert.Equal(t, "2025-06-03", FormatISO(days[2]))

	// один день — валидный диапазон
	days, err = DatesBetween(start, start)
	require.NoError(t, err)
	assert.Len(t, days, 1)

	_, err = DatesBetween(end, start)
	require.Error(t, err)
}

func TestDayOnly(t *testing.T) {
	d, ok := DayOnly("2025-06-01T00:00:00.000Z")
	require.True(t, ok)
	assert.Equal(t, "2025-06-01", FormatISO(d))

	d, ok = DayOnly("2025-06-01")
	require.True(t, ok)
	assert.Equal(t, "2025-06-01", FormatISO(d))

	_, ok = DayOnly("junk")
	assert.False(t, ok)
	_, ok = DayOnly("")
	assert.False(t, ok)
}
