// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/infrastructure/timeutil"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format as midnight in the
// reference timezone. It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", dateStr, timeutil.ReferenceLocation())
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseClock parses an HH:MM time-of-day string.
// It fails the test if parsing fails.
func MustParseClock(t *testing.T, clockStr string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("15:04", clockStr, timeutil.ReferenceLocation())
	if err != nil {
		t.Fatalf("Failed to parse time of day %s: %v", clockStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for filter option tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to an int.
// Convenience function for filter option tests.
func IntPtr(i int) *int {
	return &i
}

// BoolPtr returns a pointer to a bool.
// Convenience function for filter option tests.
func BoolPtr(b bool) *bool {
	return &b
}

// RideBuilder builds domain.Ride values for tests with sensible defaults.
// Every ride it produces is bookable unless overridden.
type RideBuilder struct {
	ride domain.Ride
}

// NewRide creates a builder seeded with a realistic bookable ride between
// Paris and Lyon departing on the given day.
func NewRide(t *testing.T, id int64, day string) *RideBuilder {
	t.Helper()

	departure := MustParseDate(t, day)
	return &RideBuilder{
		ride: domain.Ride{
			ID: id,
			Driver: domain.DriverInfo{
				ID:        id * 10,
				Nickname:  "driver" + string(rune('a'+id%26)),
				AvgRating: 4.2,
			},
			Vehicle: domain.VehicleInfo{
				Brand:    "Renault",
				Model:    "Clio",
				Electric: false,
			},
			OriginCity:        "Paris",
			PickPoint:         "Gare de Lyon",
			DestinyCity:       "Lyon",
			DropPoint:         "Part-Dieu",
			DepartureDate:     departure,
			DepartureTime:     departure.Add(9 * time.Hour),
			ArrivalDate:       departure,
			ArrivalTime:       departure.Add(13*time.Hour + 30*time.Minute),
			SeatsOffered:      3,
			SeatsAvailable:    3,
			PricePerSeat:      25.0,
			SmokersAllowed:    false,
			AnimalsAllowed:    true,
			OtherPreferences:  "music ok",
			EstimatedDuration: 270,
		},
	}
}

// Between overrides the origin and destiny cities.
func (b *RideBuilder) Between(origin, destiny string) *RideBuilder {
	b.ride.OriginCity = origin
	b.ride.DestinyCity = destiny
	return b
}

// At overrides the departure time of day, keeping the departure day.
func (b *RideBuilder) At(hour, minute int) *RideBuilder {
	day := b.ride.DepartureDate
	b.ride.DepartureTime = day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return b
}

// Price overrides the price per seat.
func (b *RideBuilder) Price(price float64) *RideBuilder {
	b.ride.PricePerSeat = price
	return b
}

// Duration overrides the estimated duration in minutes.
func (b *RideBuilder) Duration(minutes int) *RideBuilder {
	b.ride.EstimatedDuration = minutes
	return b
}

// Electric marks the vehicle as electric.
func (b *RideBuilder) Electric() *RideBuilder {
	b.ride.Vehicle.Electric = true
	return b
}

// Rating overrides the driver's average rating.
func (b *RideBuilder) Rating(rating float64) *RideBuilder {
	b.ride.Driver.AvgRating = rating
	return b
}

// Seats overrides both offered and available seats.
func (b *RideBuilder) Seats(offered, available int) *RideBuilder {
	b.ride.SeatsOffered = offered
	b.ride.SeatsAvailable = available
	return b
}

// Cancelled marks the ride as cancelled at the given time.
func (b *RideBuilder) Cancelled(at time.Time) *RideBuilder {
	b.ride.CancelledAt = &at
	return b
}

// Photo attaches raw photo bytes to the driver.
func (b *RideBuilder) Photo(data []byte) *RideBuilder {
	b.ride.Driver.Photo = data
	return b
}

// Build returns the assembled ride.
func (b *RideBuilder) Build() domain.Ride {
	return b.ride
}
