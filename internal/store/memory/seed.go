package memory

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/infrastructure/timeutil"
)

// seedRide is the JSON shape of one ride in a seed file.
type seedRide struct {
	ID     int64 `json:"id"`
	Driver struct {
		ID          int64   `json:"id"`
		Nickname    string  `json:"nickname"`
		AvgRating   float64 `json:"avgRating"`
		PhotoBase64 string  `json:"photoBase64,omitempty"`
	} `json:"driver"`
	Vehicle struct {
		Brand    string `json:"brand"`
		Model    string `json:"model"`
		Electric bool   `json:"electric"`
	} `json:"vehicle"`
	OriginCity        string  `json:"originCity"`
	PickPoint         string  `json:"pickPoint"`
	DestinyCity       string  `json:"destinyCity"`
	DropPoint         string  `json:"dropPoint"`
	DepartureDate     string  `json:"departureDate"` // YYYY-MM-DD
	DepartureTime     string  `json:"departureTime"` // HH:MM
	ArrivalDate       string  `json:"arrivalDate"`
	ArrivalTime       string  `json:"arrivalTime"`
	SeatsOffered      int     `json:"seatsOffered"`
	Passengers        int     `json:"passengers"`
	PricePerSeat      float64 `json:"pricePerSeat"`
	SmokersAllowed    bool    `json:"smokersAllowed"`
	AnimalsAllowed    bool    `json:"animalsAllowed"`
	OtherPreferences  string  `json:"otherPreferences"`
	EstimatedDuration int     `json:"estimatedDuration"`
	CancelledAt       string  `json:"cancelledAt,omitempty"` // RFC3339
}

// LoadSeedFile populates the store from a JSON seed file, the development
// substitute for a real database.
func (s *Store) LoadSeedFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seeds []seedRide
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	loc := timeutil.ReferenceLocation()
	for i, sr := range seeds {
		ride, err := sr.toRide(loc)
		if err != nil {
			return fmt.Errorf("seed ride %d: %w", i, err)
		}
		s.Add(ride)
		if sr.Passengers > 0 {
			s.Book(ride.ID, sr.Passengers)
		}
	}
	return nil
}

// toRide converts the seed shape to a domain ride.
func (sr *seedRide) toRide(loc *time.Location) (domain.Ride, error) {
	depDate, err := time.ParseInLocation("2006-01-02", sr.DepartureDate, loc)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("departureDate: %w", err)
	}
	depTime, err := time.ParseInLocation("15:04", sr.DepartureTime, loc)
	if err != nil {
		return domain.Ride{}, fmt.Errorf("departureTime: %w", err)
	}

	arrDate := depDate
	if sr.ArrivalDate != "" {
		arrDate, err = time.ParseInLocation("2006-01-02", sr.ArrivalDate, loc)
		if err != nil {
			return domain.Ride{}, fmt.Errorf("arrivalDate: %w", err)
		}
	}
	arrTime := depTime
	if sr.ArrivalTime != "" {
		arrTime, err = time.ParseInLocation("15:04", sr.ArrivalTime, loc)
		if err != nil {
			return domain.Ride{}, fmt.Errorf("arrivalTime: %w", err)
		}
	}

	var photo []byte
	if sr.Driver.PhotoBase64 != "" {
		photo, err = base64.StdEncoding.DecodeString(sr.Driver.PhotoBase64)
		if err != nil {
			return domain.Ride{}, fmt.Errorf("driver photo: %w", err)
		}
	}

	var cancelledAt *time.Time
	if sr.CancelledAt != "" {
		t, err := time.Parse(time.RFC3339, sr.CancelledAt)
		if err != nil {
			return domain.Ride{}, fmt.Errorf("cancelledAt: %w", err)
		}
		cancelledAt = &t
	}

	return domain.Ride{
		ID: sr.ID,
		Driver: domain.DriverInfo{
			ID:        sr.Driver.ID,
			Nickname:  sr.Driver.Nickname,
			Photo:     photo,
			AvgRating: sr.Driver.AvgRating,
		},
		Vehicle: domain.VehicleInfo{
			Brand:    sr.Vehicle.Brand,
			Model:    sr.Vehicle.Model,
			Electric: sr.Vehicle.Electric,
		},
		OriginCity:        sr.OriginCity,
		PickPoint:         sr.PickPoint,
		DestinyCity:       sr.DestinyCity,
		DropPoint:         sr.DropPoint,
		DepartureDate:     depDate,
		DepartureTime:     depTime,
		ArrivalDate:       arrDate,
		ArrivalTime:       arrTime,
		SeatsOffered:      sr.SeatsOffered,
		PricePerSeat:      sr.PricePerSeat,
		SmokersAllowed:    sr.SmokersAllowed,
		AnimalsAllowed:    sr.AnimalsAllowed,
		OtherPreferences:  sr.OtherPreferences,
		EstimatedDuration: sr.EstimatedDuration,
		CancelledAt:       cancelledAt,
	}, nil
}
