package alveare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDailySeed(t *testing.T) {
	require.Equal(t, int64(100000), DailySeed(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, int64(100001), DailySeed(time.Date(2024, 1, 2, 23, 59, 59, 0, time.UTC)))

	// 01:00 at +02:00 is still the 29th of February in UTC.
	zone := time.FixedZone("EET", 2*60*60)
	require.Equal(t, int64(100059), DailySeed(time.Date(2024, 3, 1, 1, 0, 0, 0, zone)))
}
