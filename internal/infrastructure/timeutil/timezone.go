// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// ReferenceZone is the timezone every search date is anchored to.
// "Current year" and "today" comparisons use this zone, not the server's.
const ReferenceZone = "Europe/Paris"

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ReferenceLocation returns the reference timezone location.
func ReferenceLocation() *time.Location {
	return MustGetLocation(ReferenceZone)
}

// CurrentYear returns the year of the given instant in the reference timezone.
func CurrentYear(now time.Time) int {
	return now.In(ReferenceLocation()).Year()
}

// FormatDate formats a time as DD/MM/YYYY, the client-facing date layout.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTime formats a time as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the end of the day (23:59:59.999999999) for the given time.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// NextDay returns the start of the day after the given time.
// The future-fallback search begins here.
func NextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
