package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoFilters(t *testing.T) {
	t.Run("nil filters produce an empty echo", func(t *testing.T) {
		echo := EchoFilters(nil)

		require.NotNil(t, echo)
		assert.False(t, echo.Electric)
		assert.Nil(t, echo.Price.Min)
		assert.Nil(t, echo.Price.Max)
		assert.Nil(t, echo.Duration.Min)
		assert.Nil(t, echo.Duration.Max)
		assert.Nil(t, echo.RatingMin)
	})

	t.Run("bounds carry over verbatim", func(t *testing.T) {
		f := &Filters{
			ElectricOnly: boolPtr(true),
			PriceMin:     floatPtr(10),
			PriceMax:     floatPtr(40),
			DurationMin:  intPtr(90),
			DurationMax:  intPtr(300),
			RatingMin:    floatPtr(4.0),
		}

		echo := EchoFilters(f)

		require.NotNil(t, echo)
		assert.True(t, echo.Electric)
		assert.Equal(t, 10.0, *echo.Price.Min)
		assert.Equal(t, 40.0, *echo.Price.Max)
		assert.Equal(t, 90, *echo.Duration.Min)
		assert.Equal(t, 300, *echo.Duration.Max)
		assert.Equal(t, 4.0, *echo.RatingMin)
	})

	t.Run("unset bounds serialize as null", func(t *testing.T) {
		echo := EchoFilters(&Filters{PriceMax: floatPtr(30)})

		data, err := json.Marshal(echo)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"electric": false,
			"price": {"min": null, "max": 30},
			"duration": {"min": null, "max": null},
			"ratingMin": null
		}`, string(data))
	})
}

func TestPagination_JSON(t *testing.T) {
	p := Pagination{Page: 2, Limit: 18, TotalResults: 40}

	data, err := json.Marshal(p)

	require.NoError(t, err)
	assert.JSONEq(t, `{"page": 2, "limit": 18, "totalResults": 40}`, string(data))
}

func TestFiltersMeta_JSON(t *testing.T) {
	meta := FiltersMeta{
		Electric:           true,
		HasZeroRatedDriver: false,
		Price:              FloatRange{Min: 12.5, Max: 45},
		Duration:           IntRange{Min: 120, Max: 300},
	}

	data, err := json.Marshal(meta)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"electric": true,
		"hasZeroRatedDriver": false,
		"price": {"min": 12.5, "max": 45},
		"duration": {"min": 120, "max": 300}
	}`, string(data))
}
