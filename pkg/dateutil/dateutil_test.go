package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_TruncateToDate(t *testing.T) {
	morning := time.Date(2024, 2, 21, 9, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 2, 21, 23, 59, 59, 0, time.UTC)

	require.Equal(t, TruncateToDate(morning), TruncateToDate(evening))
	require.Equal(t, time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC), TruncateToDate(morning))
}

func Test_StartOfTrailingWindow(t *testing.T) {
	now := time.Date(2024, 2, 21, 15, 4, 5, 0, time.UTC)
	require.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), StartOfTrailingWindow(now, 7))

	// A window of one day starts today.
	require.Equal(t, time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC), StartOfTrailingWindow(now, 1))

	// The window crosses month boundaries.
	now = time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), StartOfTrailingWindow(now, 7))
}

func Test_CountDistinctDates(t *testing.T) {
	require.Zero(t, CountDistinctDates(nil))

	times := []time.Time{
		time.Date(2024, 2, 21, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 21, 21, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 22, 0, 0, 0, 0, time.UTC),
	}
	require.Equal(t, 2, CountDistinctDates(times))
}

func Test_Anniversary(t *testing.T) {
	createdAt := time.Date(2023, 3, 15, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), Anniversary(createdAt, 1))

	// Leap day normalizes forward.
	createdAt = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Anniversary(createdAt, 1))
}
