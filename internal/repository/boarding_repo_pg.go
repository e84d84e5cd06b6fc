package repository

import (
	"context"
	"fmt"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegisterBoardingParams struct {
	TicketID int64
	FlightID int64
	GateID   int64
	Actor    string
	// Boarded is the caller's running total after this boarding; it is
	// recorded in the change-log detail.
	Boarded int
}

type BoardingRepository interface {
	// RegisterBoarding writes the boarding row and its change-log entry
	// in one transaction and returns the inserted record. Returns nil
	// without writing anything when the ticket does not belong to the
	// flight.
	RegisterBoarding(ctx context.Context, params RegisterBoardingParams) (*domain.BoardingRecord, error)
}

type PGBoardingRepository struct {
	db *pgxpool.Pool
}

func NewBoardingRepository(db *pgxpool.Pool) BoardingRepository {
	return &PGBoardingRepository{db: db}
}

func (r *PGBoardingRepository) RegisterBoarding(ctx context.Context, params RegisterBoardingParams) (*domain.BoardingRecord, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var belongs bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE id=$1 AND flight_id=$2)`, params.TicketID, params.FlightID).Scan(&belongs); err != nil {
		return nil, err
	}
	if !belongs {
		return nil, nil
	}

	record := domain.BoardingRecord{
		FlightID: params.FlightID,
		TicketID: params.TicketID,
		GateID:   params.GateID,
		State:    "OK",
	}
	if err := tx.QueryRow(ctx, `
		INSERT INTO boardings (flight_id, ticket_id, gate_id, boarding_time, state)
		VALUES ($1, $2, $3, now(), 'OK')
		RETURNING id, boarding_time`, params.FlightID, params.TicketID, params.GateID).Scan(&record.ID, &record.BoardingTime); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO change_log (actor, entity_type, entity_id, action, detail) VALUES ($1, 'boarding', $2, 'BOARD', $3)`,
		params.Actor, record.ID, fmt.Sprintf("ticket %d boarded flight %d at gate %d, %d boarded this session", params.TicketID, params.FlightID, params.GateID, params.Boarded)); err != nil {
		return nil, err
	}

	return &record, tx.Commit(ctx)
}

var _ BoardingRepository = (*PGBoardingRepository)(nil)
