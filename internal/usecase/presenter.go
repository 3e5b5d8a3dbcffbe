package usecase

import (
	"encoding/base64"

	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/infrastructure/timeutil"
)

// PresentedRide is the client-facing shape of a ride result.
type PresentedRide struct {
	ID                int64                `json:"id"`
	Driver            PresentedDriver      `json:"driver"`
	Date              string               `json:"date"`
	DepartureTime     string               `json:"departureTime"`
	AvailableSeats    int                  `json:"availableSeats"`
	Origin            PresentedOrigin      `json:"origin"`
	Destiny           PresentedDestiny     `json:"destiny"`
	EstimatedDuration int                  `json:"estimatedDuration"`
	Vehicle           PresentedVehicle     `json:"vehicle"`
	Preferences       PresentedPreferences `json:"preferences"`
	PricePerPerson    float64              `json:"pricePerPerson"`
}

// PresentedDriver is the driver summary on a presented ride.
type PresentedDriver struct {
	ID             int64   `json:"id"`
	Nickname       string  `json:"nickname"`
	PhotoThumbnail *string `json:"photoThumbnail"`
	AvgRating      float64 `json:"avgRating"`
}

// PresentedOrigin pairs the origin city with its pickup point.
type PresentedOrigin struct {
	City      string `json:"city"`
	PickPoint string `json:"pickPoint"`
}

// PresentedDestiny pairs the destiny city with its drop-off point.
type PresentedDestiny struct {
	City      string `json:"city"`
	DropPoint string `json:"dropPoint"`
}

// PresentedVehicle is the vehicle summary on a presented ride.
type PresentedVehicle struct {
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	IsElectric bool   `json:"isElectric"`
}

// PresentedPreferences carries the driver's on-board preferences.
type PresentedPreferences struct {
	Smoker  bool   `json:"smoker"`
	Animals bool   `json:"animals"`
	Other   string `json:"other"`
}

// RidePresenter maps ride entities to their client-facing shape.
// It is a deterministic function of its input: no store access, no mutation.
type RidePresenter struct {
	thumbnailer Thumbnailer
}

// NewRidePresenter creates a presenter using the given thumbnailer for
// driver photos.
func NewRidePresenter(thumbnailer Thumbnailer) *RidePresenter {
	return &RidePresenter{thumbnailer: thumbnailer}
}

// PresentRides maps a slice of rides. The result is non-nil even for empty input.
func (p *RidePresenter) PresentRides(rides []domain.Ride) []PresentedRide {
	out := make([]PresentedRide, 0, len(rides))
	for _, ride := range rides {
		out = append(out, p.PresentRide(ride))
	}
	return out
}

// PresentRide maps a single ride.
func (p *RidePresenter) PresentRide(ride domain.Ride) PresentedRide {
	return PresentedRide{
		ID: ride.ID,
		Driver: PresentedDriver{
			ID:             ride.Driver.ID,
			Nickname:       ride.Driver.Nickname,
			PhotoThumbnail: p.photoDataURI(ride.Driver.Photo),
			AvgRating:      ride.Driver.AvgRating,
		},
		Date:           timeutil.FormatDate(ride.DepartureDate),
		DepartureTime:  timeutil.FormatTime(ride.DepartureTime),
		AvailableSeats: ride.SeatsAvailable,
		Origin: PresentedOrigin{
			City:      ride.OriginCity,
			PickPoint: ride.PickPoint,
		},
		Destiny: PresentedDestiny{
			City:      ride.DestinyCity,
			DropPoint: ride.DropPoint,
		},
		EstimatedDuration: ride.DurationMinutes(),
		Vehicle: PresentedVehicle{
			Brand:      ride.Vehicle.Brand,
			Model:      ride.Vehicle.Model,
			IsElectric: ride.Vehicle.Electric,
		},
		Preferences: PresentedPreferences{
			Smoker:  ride.SmokersAllowed,
			Animals: ride.AnimalsAllowed,
			Other:   ride.OtherPreferences,
		},
		PricePerPerson: ride.PricePerSeat,
	}
}

// photoDataURI encodes a driver photo as a base64 JPEG data URI.
// Nil or empty photos present as null.
func (p *RidePresenter) photoDataURI(photo []byte) *string {
	if len(photo) == 0 {
		return nil
	}

	data := photo
	if p.thumbnailer != nil {
		data = p.thumbnailer.Thumbnail(photo)
	}

	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
	return &uri
}
