package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRide_Bookable(t *testing.T) {
	cancelled := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ride Ride
		want bool
	}{
		{
			name: "free seats and not cancelled",
			ride: Ride{SeatsAvailable: 2},
			want: true,
		},
		{
			name: "no free seats",
			ride: Ride{SeatsAvailable: 0},
			want: false,
		},
		{
			name: "cancelled ride",
			ride: Ride{SeatsAvailable: 2, CancelledAt: &cancelled},
			want: false,
		},
		{
			name: "fully booked and cancelled",
			ride: Ride{SeatsAvailable: 0, CancelledAt: &cancelled},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ride.Bookable())
		})
	}
}

func TestRide_DurationMinutes(t *testing.T) {
	day := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("stored estimate wins", func(t *testing.T) {
		ride := Ride{
			EstimatedDuration: 200,
			DepartureDate:     day,
			DepartureTime:     day.Add(9 * time.Hour),
			ArrivalDate:       day,
			ArrivalTime:       day.Add(12 * time.Hour),
		}

		assert.Equal(t, 200, ride.DurationMinutes())
	})

	t.Run("derived from timestamps when estimate missing", func(t *testing.T) {
		ride := Ride{
			DepartureDate: day,
			DepartureTime: day.Add(9 * time.Hour),
			ArrivalDate:   day,
			ArrivalTime:   day.Add(13*time.Hour + 30*time.Minute),
		}

		assert.Equal(t, 270, ride.DurationMinutes())
	})

	t.Run("overnight trip spans the day boundary", func(t *testing.T) {
		ride := Ride{
			DepartureDate: day,
			DepartureTime: day.Add(22 * time.Hour),
			ArrivalDate:   day.AddDate(0, 0, 1),
			ArrivalTime:   day.Add(6 * time.Hour),
		}

		assert.Equal(t, 480, ride.DurationMinutes())
	})

	t.Run("arrival before departure yields zero", func(t *testing.T) {
		ride := Ride{
			DepartureDate: day,
			DepartureTime: day.Add(10 * time.Hour),
			ArrivalDate:   day,
			ArrivalTime:   day.Add(8 * time.Hour),
		}

		assert.Equal(t, 0, ride.DurationMinutes())
	})
}

func TestRide_DepartureAt(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Paris")
	day := time.Date(2026, 6, 15, 0, 0, 0, 0, loc)

	ride := Ride{
		DepartureDate: day,
		DepartureTime: time.Date(0, 1, 1, 14, 45, 0, 0, loc),
	}

	at := ride.DepartureAt()

	assert.Equal(t, 2026, at.Year())
	assert.Equal(t, time.June, at.Month())
	assert.Equal(t, 15, at.Day())
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 45, at.Minute())
	assert.Equal(t, loc, at.Location())
}
