package postgres

import "time"

type gamemodeTableModel struct {
	ID          int64     `db:"id"`
	PublicID    string    `db:"public_id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Icon        string    `db:"icon"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
