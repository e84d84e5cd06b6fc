package repository

import (
	"context"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChangeLogRepository interface {
	Recent(ctx context.Context, limit int) ([]domain.ChangeEntry, error)
}

type PGChangeLogRepository struct {
	db *pgxpool.Pool
}

func NewChangeLogRepository(db *pgxpool.Pool) ChangeLogRepository {
	return &PGChangeLogRepository{db: db}
}

func (r *PGChangeLogRepository) Recent(ctx context.Context, limit int) ([]domain.ChangeEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, actor, entity_type, entity_id, action, detail, created_at FROM change_log ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ChangeEntry, 0)
	for rows.Next() {
		var e domain.ChangeEntry
		if err := rows.Scan(&e.ID, &e.Actor, &e.EntityType, &e.EntityID, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ ChangeLogRepository = (*PGChangeLogRepository)(nil)
