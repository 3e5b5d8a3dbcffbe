// Package domain contains the core business entities and rules for the ride search system.
// These entities are storage-agnostic and form the foundation upon which all other components are built.
package domain

import "time"

// Ride represents a single published carpool ride.
// It carries everything the search core needs to filter, order and present a ride.
type Ride struct {
	// ID is the ride's stable identifier
	ID int64

	// Driver contains the publishing driver's summary
	Driver DriverInfo

	// Vehicle contains the vehicle used for this ride
	Vehicle VehicleInfo

	// OriginCity is the departure city as entered by the driver
	OriginCity string

	// PickPoint is the meeting point within the origin city
	PickPoint string

	// DestinyCity is the arrival city as entered by the driver
	DestinyCity string

	// DropPoint is the drop-off point within the destiny city
	DropPoint string

	// DepartureDate is the departure day at midnight in the reference timezone
	DepartureDate time.Time

	// DepartureTime carries the intended departure time of day
	DepartureTime time.Time

	// ArrivalDate is the estimated arrival day at midnight in the reference timezone
	ArrivalDate time.Time

	// ArrivalTime carries the estimated arrival time of day
	ArrivalTime time.Time

	// SeatsOffered is the number of seats the driver published
	SeatsOffered int

	// SeatsAvailable is always derived as SeatsOffered minus booked passengers.
	// Stores compute it per query; it is never persisted on its own.
	SeatsAvailable int

	// PricePerSeat is the price per passenger
	PricePerSeat float64

	// SmokersAllowed indicates whether smoking is tolerated on board
	SmokersAllowed bool

	// AnimalsAllowed indicates whether animals are tolerated on board
	AnimalsAllowed bool

	// OtherPreferences is the driver's free-text preference note
	OtherPreferences string

	// EstimatedDuration is the trip duration in minutes
	EstimatedDuration int

	// CancelledAt is set when the driver cancelled the ride.
	// Cancelled rides never appear in search results.
	CancelledAt *time.Time
}

// DriverInfo is the driver summary attached to a ride.
type DriverInfo struct {
	// ID is the driver's user identifier
	ID int64

	// Nickname is the driver's display name
	Nickname string

	// Photo holds the raw profile photo bytes, nil when the driver has none
	Photo []byte

	// AvgRating is the driver's pre-aggregated average rating.
	// It is the single source of truth; stores never recompute it from evaluations.
	AvgRating float64
}

// VehicleInfo describes the vehicle attached to a ride.
type VehicleInfo struct {
	// Brand is the vehicle brand name
	Brand string

	// Model is the vehicle model name
	Model string

	// Electric reports whether the vehicle is electric
	Electric bool
}

// Bookable reports whether the ride is eligible for search results:
// it still has free seats and has not been cancelled.
func (r *Ride) Bookable() bool {
	return r.SeatsAvailable > 0 && r.CancelledAt == nil
}

// DurationMinutes returns the trip duration in minutes.
// When the stored estimate is missing it is derived from the departure and
// arrival timestamps; both representations describe the same trip.
func (r *Ride) DurationMinutes() int {
	if r.EstimatedDuration > 0 {
		return r.EstimatedDuration
	}

	dep := combineDateTime(r.DepartureDate, r.DepartureTime)
	arr := combineDateTime(r.ArrivalDate, r.ArrivalTime)
	if !arr.After(dep) {
		return 0
	}
	return int(arr.Sub(dep).Minutes())
}

// DepartureAt returns the full departure timestamp (date plus time of day).
// It is the second component of the canonical result order.
func (r *Ride) DepartureAt() time.Time {
	return combineDateTime(r.DepartureDate, r.DepartureTime)
}

// combineDateTime merges a date-only value with a time-of-day value.
func combineDateTime(date, tod time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0,
		date.Location(),
	)
}
