package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aperture/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	converted := timezone.ToAppTime(utc)

	assert.True(t, utc.Equal(converted), "conversion must not change the instant")
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
}

func TestFormat(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(ts, "2006-01-02")

	assert.Equal(t, "2025-06-01", formatted)
}
