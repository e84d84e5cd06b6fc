package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightCounts carries the raw aggregates behind the per-flight reports.
// A flight that does not exist scans as the zero value with Found=false;
// callers substitute defaults instead of failing.
type FlightCounts struct {
	Found     bool
	Capacity  int
	Tickets   int
	Baggage   int
	CheckedIn int
}

type PassengerFlightCount struct {
	PassengerID int64
	FullName    string
	Flights     int
}

// RouteTotals sums capacity and tickets over every flight on a route
// within the lookback window. Tickets is counted through an outer join,
// so flights without a single ticket still add their capacity.
type RouteTotals struct {
	Flights  int
	Capacity int
	Tickets  int
}

type ReportRepository interface {
	FlightCounts(ctx context.Context, flightID int64) (FlightCounts, error)
	PassengerFlightCounts(ctx context.Context, minFlights int) ([]PassengerFlightCount, error)
	RouteTotals(ctx context.Context, originID, destinationID int64, since time.Time) (RouteTotals, error)
}

type PGReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepository {
	return &PGReportRepository{db: db}
}

func (r *PGReportRepository) FlightCounts(ctx context.Context, flightID int64) (FlightCounts, error) {
	row := r.db.QueryRow(ctx, `
		SELECT f.capacity,
		       (SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.id),
		       (SELECT COUNT(*) FROM baggage b WHERE b.flight_id = f.id),
		       (SELECT COUNT(*) FROM tickets t JOIN passengers p ON p.id = t.passenger_id
		        WHERE t.flight_id = f.id AND p.checked_in)
		FROM flights f WHERE f.id = $1`, flightID)

	var c FlightCounts
	if err := row.Scan(&c.Capacity, &c.Tickets, &c.Baggage, &c.CheckedIn); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return FlightCounts{}, nil
		}
		return FlightCounts{}, err
	}
	c.Found = true
	return c, nil
}

func (r *PGReportRepository) PassengerFlightCounts(ctx context.Context, minFlights int) ([]PassengerFlightCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.full_name, COUNT(t.id) AS flights
		FROM passengers p
		JOIN tickets t ON t.passenger_id = p.id
		GROUP BY p.id, p.full_name
		HAVING COUNT(t.id) >= $1
		ORDER BY flights DESC, p.full_name`, minFlights)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]PassengerFlightCount, 0)
	for rows.Next() {
		var c PassengerFlightCount
		if err := rows.Scan(&c.PassengerID, &c.FullName, &c.Flights); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *PGReportRepository) RouteTotals(ctx context.Context, originID, destinationID int64, since time.Time) (RouteTotals, error) {
	row := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(per.capacity), 0), COALESCE(SUM(per.tickets), 0)
		FROM (
			SELECT f.id, f.capacity, COUNT(t.id) AS tickets
			FROM flights f
			LEFT JOIN tickets t ON t.flight_id = f.id
			WHERE f.origin_id = $1 AND f.destination_id = $2 AND f.date >= $3
			GROUP BY f.id, f.capacity
		) per`, originID, destinationID, since)

	var t RouteTotals
	if err := row.Scan(&t.Flights, &t.Capacity, &t.Tickets); err != nil {
		return RouteTotals{}, err
	}
	return t, nil
}

var _ ReportRepository = (*PGReportRepository)(nil)
