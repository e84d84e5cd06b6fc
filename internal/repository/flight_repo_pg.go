package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateFlight is returned by Create when a flight with the same
// number and date already exists. The transaction is rolled back and
// nothing is written, including the change-log entry.
var ErrDuplicateFlight = errors.New("flight with this number and date already exists")

type CreateFlightParams struct {
	Number        string
	Date          time.Time
	DepartureTime time.Time
	ArrivalTime   time.Time
	AircraftID    int64
	AirlineID     int64
	OriginID      int64
	DestinationID int64
	Actor         string
}

type FlightRepository interface {
	Search(ctx context.Context, airlineID int64, from, to time.Time) ([]domain.FlightSummary, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, params CreateFlightParams) (int64, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Search(ctx context.Context, airlineID int64, from, to time.Time) ([]domain.FlightSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.number, f.date, f.departure_time, f.arrival_time,
		       o.id, o.iata, o.name, o.city, o.country,
		       d.id, d.iata, d.name, d.city, d.country,
		       COALESCE(f.status, '')
		FROM flights f
		JOIN airports o ON o.id = f.origin_id
		JOIN airports d ON d.id = f.destination_id
		WHERE f.airline_id = $1 AND f.date BETWEEN $2 AND $3
		ORDER BY f.date, f.departure_time`, airlineID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightSummary, 0)
	for rows.Next() {
		var f domain.FlightSummary
		if err := rows.Scan(&f.ID, &f.Number, &f.Date, &f.DepartureTime, &f.ArrivalTime,
			&f.Origin.ID, &f.Origin.IATA, &f.Origin.Name, &f.Origin.City, &f.Origin.Country,
			&f.Destination.ID, &f.Destination.IATA, &f.Destination.Name, &f.Destination.City, &f.Destination.Country,
			&f.Status); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, number, date, departure_time, arrival_time, airline_id, origin_id, destination_id, aircraft_id, capacity, COALESCE(status, ''), created_at, updated_at FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Number, &f.Date, &f.DepartureTime, &f.ArrivalTime, &f.AirlineID, &f.OriginID, &f.DestinationID, &f.AircraftID, &f.Capacity, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, params CreateFlightParams) (int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE number=$1 AND date=$2)`, params.Number, params.Date).Scan(&exists); err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrDuplicateFlight
	}

	var capacity int
	if err := tx.QueryRow(ctx, `SELECT capacity FROM aircraft WHERE id=$1`, params.AircraftID).Scan(&capacity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("aircraft %d not found", params.AircraftID)
		}
		return 0, err
	}

	var id int64
	if err := tx.QueryRow(ctx, `
		INSERT INTO flights (number, date, departure_time, arrival_time, airline_id, origin_id, destination_id, aircraft_id, capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		params.Number, params.Date, params.DepartureTime, params.ArrivalTime,
		params.AirlineID, params.OriginID, params.DestinationID, params.AircraftID, capacity).
		Scan(&id); err != nil {
		return 0, err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO change_log (actor, entity_type, entity_id, action, detail) VALUES ($1, 'flight', $2, 'REGISTER', $3)`,
		params.Actor, id, fmt.Sprintf("flight %s on %s registered with capacity %d", params.Number, params.Date.Format("2006-01-02"), capacity)); err != nil {
		return 0, err
	}

	return id, tx.Commit(ctx)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
