package domain

import "time"

// DefaultPageSize is the fixed number of rides per result page.
const DefaultPageSize = 18

// DefaultFutureLimit caps the number of future-date fallback suggestions.
const DefaultFutureLimit = 6

// SearchQuery defines the parameters for a ride search request.
// City strings arrive raw from the client and are validated and normalized
// by the orchestrator before any store query runs.
type SearchQuery struct {
	// OriginCity is the requested departure city
	OriginCity string

	// DestinyCity is the requested arrival city
	DestinyCity string

	// Date is the requested departure day; nil means the client omitted it
	Date *DateStruct

	// Page is the 1-based result page (default: 1)
	Page int

	// Filters contains optional filtering criteria, nil pointers meaning unset
	Filters *Filters

	// OrderBy is the raw ordering key; unrecognized values fall back to the
	// canonical departure order
	OrderBy string
}

// DateStruct is a calendar date as three separate fields, matching the shape
// the frontend date picker sends.
type DateStruct struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Validate reports whether the date struct describes a real, forward-looking
// calendar date. currentYear is the year in the reference timezone; past years
// are always rejected. Ambiguous or partially filled structs are invalid.
func (d *DateStruct) Validate(currentYear int) bool {
	if d == nil {
		return false
	}
	if d.Year == 0 || d.Month == 0 || d.Day == 0 {
		return false
	}
	if d.Year < currentYear {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	if d.Day < 1 || d.Day > daysInMonth(d.Year, time.Month(d.Month)) {
		return false
	}
	return true
}

// Date converts the struct to a calendar date at midnight in loc.
// ok is false when the struct does not pass Validate for currentYear.
func (d *DateStruct) Date(currentYear int, loc *time.Location) (time.Time, bool) {
	if !d.Validate(currentYear) {
		return time.Time{}, false
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc), true
}

// daysInMonth returns the number of days in the given month, leap-year aware.
func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Page describes an offset/limit window over a result set.
type Page struct {
	// Limit is the maximum number of rides to return
	Limit int

	// Offset is the number of rides to skip before the window starts
	Offset int
}

// NewPage builds the store window for a 1-based page number.
// Page numbers below 1 are clamped to the first page.
func NewPage(pageNumber, pageSize int) Page {
	if pageNumber < 1 {
		pageNumber = 1
	}
	return Page{
		Limit:  pageSize,
		Offset: (pageNumber - 1) * pageSize,
	}
}
