package postgres

import (
	"database/sql"
	"time"
)

type recordTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	UserID            string         `db:"user_public_id"`
	CategoryID        string         `db:"category_public_id"`
	Value             float64        `db:"value"`
	ProofURL          string         `db:"proof_url"`
	Status            string         `db:"status"`
	Notes             string         `db:"notes"`
	ModeratorFeedback string         `db:"moderator_feedback"`
	VerifiedBy        sql.NullString `db:"verified_by"`
	VerifiedAt        *time.Time     `db:"verified_at"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}
