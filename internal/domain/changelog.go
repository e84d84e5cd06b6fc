package domain

import "time"

// ChangeEntry is one row of the append-only audit trail. Mutating
// operations write entries; nothing ever updates or deletes them.
type ChangeEntry struct {
	ID         int64     `json:"id"`
	Actor      string    `json:"actor"`
	EntityType string    `json:"entity_type"`
	EntityID   int64     `json:"entity_id"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}
