package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	t.Run("loads a valid timezone", func(t *testing.T) {
		loc, err := GetLocation("Europe/Paris")

		require.NoError(t, err)
		assert.Equal(t, "Europe/Paris", loc.String())
	})

	t.Run("returns the cached location on second call", func(t *testing.T) {
		ClearLocationCache()

		first, err := GetLocation("Europe/Paris")
		require.NoError(t, err)

		second, err := GetLocation("Europe/Paris")
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("fails on unknown timezone", func(t *testing.T) {
		_, err := GetLocation("Mars/Olympus")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Mars/Olympus")
	})
}

func TestMustGetLocation(t *testing.T) {
	t.Run("returns location for valid name", func(t *testing.T) {
		loc := MustGetLocation("UTC")
		assert.NotNil(t, loc)
	})

	t.Run("panics on invalid name", func(t *testing.T) {
		assert.Panics(t, func() {
			MustGetLocation("Not/AZone")
		})
	})
}

func TestReferenceLocation(t *testing.T) {
	loc := ReferenceLocation()
	assert.Equal(t, ReferenceZone, loc.String())
}

func TestCurrentYear(t *testing.T) {
	t.Run("uses the reference timezone, not the instant's", func(t *testing.T) {
		// 2026-12-31 23:30 UTC is already 2027-01-01 00:30 in Paris.
		instant := time.Date(2026, 12, 31, 23, 30, 0, 0, time.UTC)

		assert.Equal(t, 2027, CurrentYear(instant))
	})

	t.Run("plain daytime instant", func(t *testing.T) {
		instant := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

		assert.Equal(t, 2026, CurrentYear(instant))
	})
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "07/03/2026", FormatDate(d))
}

func TestFormatTime(t *testing.T) {
	tm := time.Date(2026, 3, 7, 9, 5, 0, 0, time.UTC)

	assert.Equal(t, "09:05", FormatTime(tm))
}

func TestStartOfDay(t *testing.T) {
	loc := MustGetLocation("Europe/Paris")
	instant := time.Date(2026, 6, 15, 14, 30, 45, 123, loc)

	start := StartOfDay(instant)

	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, loc), start)
}

func TestEndOfDay(t *testing.T) {
	loc := MustGetLocation("Europe/Paris")
	instant := time.Date(2026, 6, 15, 14, 30, 0, 0, loc)

	end := EndOfDay(instant)

	assert.Equal(t, time.Date(2026, 6, 15, 23, 59, 59, 999999999, loc), end)
}

func TestNextDay(t *testing.T) {
	loc := MustGetLocation("Europe/Paris")

	t.Run("starts at midnight of the following day", func(t *testing.T) {
		instant := time.Date(2026, 6, 15, 18, 45, 0, 0, loc)

		next := NextDay(instant)

		assert.Equal(t, time.Date(2026, 6, 16, 0, 0, 0, 0, loc), next)
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		instant := time.Date(2026, 6, 30, 8, 0, 0, 0, loc)

		next := NextDay(instant)

		assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, loc), next)
	})

	t.Run("crosses year boundary", func(t *testing.T) {
		instant := time.Date(2026, 12, 31, 8, 0, 0, 0, loc)

		next := NextDay(instant)

		assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, loc), next)
	})
}
