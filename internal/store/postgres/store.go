package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridepool/ride-search-service/internal/domain"
	"github.com/ridepool/ride-search-service/internal/infrastructure/timeutil"
)

// Store is the PostgreSQL implementation of domain.RideStore.
//
// Expected schema:
//
//	rides(id, driver_id, vehicle_id, origin_city, origin_city_norm, pick_point,
//	      destiny_city, destiny_city_norm, drop_point, departure_date,
//	      departure_at, arrival_date, arrival_at, seats_offered, price_per_seat,
//	      smokers_allowed, animals_allowed, other_preferences,
//	      estimated_duration, cancelled_at)
//	users(id, nickname, photo, avg_rating)
//	vehicles(id, brand, model, electric)
//	bookings(ride_id, passenger_id)
//
// The *_norm columns hold the lower-cased, accent-stripped city names that
// every search compares against. Available seats are derived from bookings;
// there is no stored seat counter to drift.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store on the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// rideColumns lists every column SearchExact and SearchFuture scan, in order.
const rideColumns = `
	r.id, r.origin_city, r.pick_point, r.destiny_city, r.drop_point,
	r.departure_date, r.departure_at, r.arrival_date, r.arrival_at,
	r.seats_offered, r.seats_offered - COALESCE(b.booked, 0) AS seats_available,
	r.price_per_seat, r.smokers_allowed, r.animals_allowed, r.other_preferences,
	r.estimated_duration, r.cancelled_at,
	u.id, u.nickname, u.photo, u.avg_rating,
	v.brand, v.model, v.electric`

// rideFrom joins driver, vehicle and the booked-passenger counts.
const rideFrom = `
	FROM rides r
	JOIN users u ON u.id = r.driver_id
	JOIN vehicles v ON v.id = r.vehicle_id
	LEFT JOIN (
		SELECT ride_id, COUNT(*) AS booked FROM bookings GROUP BY ride_id
	) b ON b.ride_id = r.id`

// predicateList accumulates WHERE conditions and their positional arguments.
// Search, count and metadata queries all build from the same list so the
// predicate set has exactly one definition.
type predicateList struct {
	conds []string
	args  []any
}

// add appends a condition without arguments.
func (p *predicateList) add(cond string) {
	p.conds = append(p.conds, cond)
}

// addArg appends a condition with one argument. format must contain a single
// $%d placeholder, which receives the argument's position.
func (p *predicateList) addArg(format string, arg any) {
	p.args = append(p.args, arg)
	p.conds = append(p.conds, fmt.Sprintf(format, len(p.args)))
}

// where renders the accumulated conditions.
func (p *predicateList) where() string {
	return " WHERE " + strings.Join(p.conds, " AND ")
}

// basePredicates builds the city and eligibility conditions shared by every
// query on this store.
func basePredicates(origin, destiny string) *predicateList {
	p := &predicateList{}
	p.addArg("r.origin_city_norm = $%d", origin)
	p.addArg("r.destiny_city_norm = $%d", destiny)
	p.add("r.cancelled_at IS NULL")
	p.add("r.seats_offered - COALESCE(b.booked, 0) > 0")
	return p
}

// applyFilters appends one condition per set filter. Unset filters add nothing.
func applyFilters(p *predicateList, filters *domain.Filters) {
	if filters == nil {
		return
	}
	if filters.ElectricOnly != nil && *filters.ElectricOnly {
		p.add("v.electric = TRUE")
	}
	if filters.RatingMin != nil {
		p.addArg("u.avg_rating >= $%d", *filters.RatingMin)
	}
	if filters.PriceMin != nil {
		p.addArg("r.price_per_seat >= $%d", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		p.addArg("r.price_per_seat <= $%d", *filters.PriceMax)
	}
	if filters.DurationMin != nil {
		p.addArg("r.estimated_duration >= $%d", *filters.DurationMin)
	}
	if filters.DurationMax != nil {
		p.addArg("r.estimated_duration <= $%d", *filters.DurationMax)
	}
}

// orderClause maps an order option to its ORDER BY expression.
// The canonical departure order doubles as the tie-break everywhere.
func orderClause(order domain.OrderOption) string {
	switch order {
	case domain.OrderPriceAsc:
		return "r.price_per_seat ASC, r.departure_date ASC, r.departure_at ASC"
	case domain.OrderPriceDesc:
		return "r.price_per_seat DESC, r.departure_date ASC, r.departure_at ASC"
	case domain.OrderDurationAsc:
		return "r.estimated_duration ASC, r.departure_date ASC, r.departure_at ASC"
	case domain.OrderDurationDesc:
		return "r.estimated_duration DESC, r.departure_date ASC, r.departure_at ASC"
	default:
		return "r.departure_date ASC, r.departure_at ASC"
	}
}

// SearchExact implements domain.RideStore.
func (s *Store) SearchExact(ctx context.Context, origin, destiny string, day time.Time, page domain.Page, filters *domain.Filters, order domain.OrderOption) (domain.SearchResult, error) {
	p := basePredicates(origin, destiny)
	p.addArg("r.departure_date >= $%d", timeutil.StartOfDay(day))
	p.addArg("r.departure_date <= $%d", timeutil.EndOfDay(day))
	applyFilters(p, filters)

	// Unpaginated count over identical predicates, so Total reflects the
	// filtered set before truncation.
	countQuery := "SELECT COUNT(*)" + rideFrom + p.where()
	var total int
	if err := s.pool.QueryRow(ctx, countQuery, p.args...).Scan(&total); err != nil {
		return domain.SearchResult{}, domain.NewStoreError("searchExact", err)
	}

	query := "SELECT" + rideColumns + rideFrom + p.where() +
		" ORDER BY " + orderClause(order) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(p.args)+1, len(p.args)+2)
	args := append(p.args, page.Limit, page.Offset)

	rides, err := s.queryRides(ctx, query, args)
	if err != nil {
		return domain.SearchResult{}, domain.NewStoreError("searchExact", err)
	}

	return domain.SearchResult{Rides: rides, Total: total}, nil
}

// SearchFuture implements domain.RideStore.
func (s *Store) SearchFuture(ctx context.Context, origin, destiny string, from time.Time, limit int) ([]domain.Ride, error) {
	p := basePredicates(origin, destiny)
	p.addArg("r.departure_date >= $%d", timeutil.StartOfDay(from))

	query := "SELECT" + rideColumns + rideFrom + p.where() +
		" ORDER BY " + orderClause(domain.OrderDefault) +
		fmt.Sprintf(" LIMIT $%d", len(p.args)+1)
	args := append(p.args, limit)

	rides, err := s.queryRides(ctx, query, args)
	if err != nil {
		return nil, domain.NewStoreError("searchFuture", err)
	}
	return rides, nil
}

// FiltersMeta implements domain.RideStore.
func (s *Store) FiltersMeta(ctx context.Context, origin, destiny string, day time.Time, filters *domain.Filters) (domain.FiltersMeta, error) {
	p := basePredicates(origin, destiny)
	p.addArg("r.departure_date >= $%d", timeutil.StartOfDay(day))
	p.addArg("r.departure_date <= $%d", timeutil.EndOfDay(day))
	applyFilters(p, filters)

	query := `SELECT
		COALESCE(BOOL_OR(v.electric), FALSE),
		COALESCE(BOOL_OR(u.avg_rating = 0), FALSE),
		COALESCE(MIN(r.price_per_seat), 0), COALESCE(MAX(r.price_per_seat), 0),
		COALESCE(MIN(r.estimated_duration), 0), COALESCE(MAX(r.estimated_duration), 0)` +
		rideFrom + p.where()

	var meta domain.FiltersMeta
	err := s.pool.QueryRow(ctx, query, p.args...).Scan(
		&meta.Electric,
		&meta.HasZeroRatedDriver,
		&meta.Price.Min, &meta.Price.Max,
		&meta.Duration.Min, &meta.Duration.Max,
	)
	if err != nil {
		return domain.FiltersMeta{}, domain.NewStoreError("filtersMeta", err)
	}
	return meta, nil
}

// queryRides runs a rideColumns query and scans the result rows.
func (s *Store) queryRides(ctx context.Context, query string, args []any) ([]domain.Ride, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rides: %w", err)
	}
	defer rows.Close()

	rides := []domain.Ride{}
	for rows.Next() {
		var r domain.Ride
		err := rows.Scan(
			&r.ID, &r.OriginCity, &r.PickPoint, &r.DestinyCity, &r.DropPoint,
			&r.DepartureDate, &r.DepartureTime, &r.ArrivalDate, &r.ArrivalTime,
			&r.SeatsOffered, &r.SeatsAvailable,
			&r.PricePerSeat, &r.SmokersAllowed, &r.AnimalsAllowed, &r.OtherPreferences,
			&r.EstimatedDuration, &r.CancelledAt,
			&r.Driver.ID, &r.Driver.Nickname, &r.Driver.Photo, &r.Driver.AvgRating,
			&r.Vehicle.Brand, &r.Vehicle.Model, &r.Vehicle.Electric,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ride: %w", err)
		}
		rides = append(rides, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rides: %w", err)
	}

	return rides, nil
}

// Ensure Store implements domain.RideStore at compile time.
var _ domain.RideStore = (*Store)(nil)
