package domain

// Status is the terminal outcome class of a search.
type Status string

// Search outcome statuses.
const (
	// StatusExactMatch means at least one ride departs on the requested day
	StatusExactMatch Status = "EXACT_MATCH"

	// StatusFutureMatch means no exact match existed but later rides were found
	StatusFutureMatch Status = "FUTURE_MATCH"

	// StatusNoMatch means the search completed with no rides to suggest
	StatusNoMatch Status = "NO_MATCH"

	// StatusInvalidRequest means a required field was missing or unusable
	StatusInvalidRequest Status = "INVALID_REQUEST"

	// StatusInvalidCity means a city name failed validation
	StatusInvalidCity Status = "INVALID_CITY"

	// StatusInvalidDate means the date struct failed validation
	StatusInvalidDate Status = "INVALID_DATE"
)

// SearchResult is the windowed outcome of an exact-date store query.
type SearchResult struct {
	// Rides is the page of matching rides, already ordered
	Rides []Ride

	// Total is the number of matches before pagination truncation
	Total int
}

// Pagination describes the window a result page was cut from.
type Pagination struct {
	// Page is the 1-based page number that was served
	Page int `json:"page"`

	// Limit is the fixed page size
	Limit int `json:"limit"`

	// TotalResults is the match count before pagination
	TotalResults int `json:"totalResults"`
}

// FiltersMeta reports the observed range of filterable attributes across a
// candidate set. It bounds UI range controls; it never filters further.
type FiltersMeta struct {
	// Electric reports whether at least one candidate has an electric vehicle
	Electric bool `json:"electric"`

	// HasZeroRatedDriver reports whether some candidate's driver has no rating yet
	HasZeroRatedDriver bool `json:"hasZeroRatedDriver"`

	// Price is the observed price-per-seat range, zero bounds when no candidates
	Price FloatRange `json:"price"`

	// Duration is the observed duration range in minutes, zero bounds when no candidates
	Duration IntRange `json:"duration"`
}

// FloatRange is an observed inclusive min/max pair.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IntRange is an observed inclusive min/max pair.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterEcho restates the bounds a client asked for. It is returned with an
// empty filtered result so the UI can show which constraints found nothing.
type FilterEcho struct {
	Electric bool `json:"electric"`

	Price struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	} `json:"price"`

	Duration struct {
		Min *int `json:"min"`
		Max *int `json:"max"`
	} `json:"duration"`

	RatingMin *float64 `json:"ratingMin"`
}

// EchoFilters builds the requested-bounds echo for a sanitized filter set.
func EchoFilters(f *Filters) *FilterEcho {
	echo := &FilterEcho{}
	if f == nil {
		return echo
	}

	echo.Electric = f.ElectricOnly != nil && *f.ElectricOnly
	echo.Price.Min = f.PriceMin
	echo.Price.Max = f.PriceMax
	echo.Duration.Min = f.DurationMin
	echo.Duration.Max = f.DurationMax
	echo.RatingMin = f.RatingMin
	return echo
}
