package postgres

import "time"

type profileTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Username  string    `db:"username"`
	AvatarURL string    `db:"avatar_url"`
	Bio       string    `db:"bio"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
