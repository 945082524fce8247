package postgres

import "time"

type categoryTableModel struct {
	ID              int64     `db:"id"`
	PublicID        string    `db:"public_id"`
	GamemodeID      string    `db:"gamemode_public_id"`
	Name            string    `db:"name"`
	MetricType      string    `db:"metric_type"`
	Rules           string    `db:"rules"`
	DifficultyLevel string    `db:"difficulty_level"`
	EstimatedEffort string    `db:"estimated_effort"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
