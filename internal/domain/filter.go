package domain

// OrderOption defines the available orderings for exact-date search results.
type OrderOption string

// Available order options.
const (
	// OrderDefault sorts by departure date then departure time, both ascending.
	// This is the canonical stable order for every unordered listing.
	OrderDefault OrderOption = ""

	// OrderPriceAsc sorts by price per seat ascending (cheapest first)
	OrderPriceAsc OrderOption = "PRICE_ASC"

	// OrderPriceDesc sorts by price per seat descending
	OrderPriceDesc OrderOption = "PRICE_DESC"

	// OrderDurationAsc sorts by estimated duration ascending (shortest first)
	OrderDurationAsc OrderOption = "DURATION_ASC"

	// OrderDurationDesc sorts by estimated duration descending
	OrderDurationDesc OrderOption = "DURATION_DESC"
)

// IsValid checks if the order option is a recognized value.
func (o OrderOption) IsValid() bool {
	switch o {
	case OrderDefault, OrderPriceAsc, OrderPriceDesc, OrderDurationAsc, OrderDurationDesc:
		return true
	default:
		return false
	}
}

// ParseOrderOption converts a raw ordering key to an OrderOption.
// Unrecognized keys fall back to the canonical departure order.
func ParseOrderOption(s string) OrderOption {
	option := OrderOption(s)
	if option.IsValid() {
		return option
	}
	return OrderDefault
}

// Filters defines optional predicates to apply to exact-date searches.
// A nil pointer means the filter is unset; unset is distinct from the zero
// value, so callers must never coerce an absent filter to 0 or false.
type Filters struct {
	// ElectricOnly keeps only rides with an electric vehicle
	ElectricOnly *bool `json:"electricOnly,omitempty"`

	// PriceMin is the inclusive lower bound on price per seat
	PriceMin *float64 `json:"priceMin,omitempty"`

	// PriceMax is the inclusive upper bound on price per seat
	PriceMax *float64 `json:"priceMax,omitempty"`

	// DurationMin is the inclusive lower bound on estimated duration in minutes
	DurationMin *int `json:"durationMin,omitempty"`

	// DurationMax is the inclusive upper bound on estimated duration in minutes
	DurationMax *int `json:"durationMax,omitempty"`

	// RatingMin keeps only rides whose driver's average rating meets the threshold
	RatingMin *float64 `json:"ratingMin,omitempty"`
}

// Sanitize returns a copy with neutral entries dropped, or nil when nothing
// remains. ElectricOnly set to false is neutral: it requests nothing.
func (f *Filters) Sanitize() *Filters {
	if f == nil {
		return nil
	}

	clean := Filters{
		PriceMin:    f.PriceMin,
		PriceMax:    f.PriceMax,
		DurationMin: f.DurationMin,
		DurationMax: f.DurationMax,
		RatingMin:   f.RatingMin,
	}
	if f.ElectricOnly != nil && *f.ElectricOnly {
		clean.ElectricOnly = f.ElectricOnly
	}

	if clean.isEmpty() {
		return nil
	}
	return &clean
}

// isEmpty reports whether no filter is set.
func (f *Filters) isEmpty() bool {
	return f.ElectricOnly == nil &&
		f.PriceMin == nil && f.PriceMax == nil &&
		f.DurationMin == nil && f.DurationMax == nil &&
		f.RatingMin == nil
}

// MatchesRide checks if a ride satisfies every set filter.
// Unset filters match everything.
func (f *Filters) MatchesRide(ride Ride) bool {
	if f == nil {
		return true
	}

	if f.ElectricOnly != nil && *f.ElectricOnly && !ride.Vehicle.Electric {
		return false
	}
	if f.PriceMin != nil && ride.PricePerSeat < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && ride.PricePerSeat > *f.PriceMax {
		return false
	}
	if f.DurationMin != nil && ride.DurationMinutes() < *f.DurationMin {
		return false
	}
	if f.DurationMax != nil && ride.DurationMinutes() > *f.DurationMax {
		return false
	}
	if f.RatingMin != nil && ride.Driver.AvgRating < *f.RatingMin {
		return false
	}

	return true
}
