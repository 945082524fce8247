package postgres

import "time"

type moderationLogTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	ModeratorID string    `db:"moderator_public_id"`
	RecordID    string    `db:"record_public_id"`
	Action      string    `db:"action"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
}
