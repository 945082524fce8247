package gamemode

import "context"

// Repository describes gamemode persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Gamemode, error)
	GetByID(ctx context.Context, gamemodeID string) (Gamemode, bool, error)
	Create(ctx context.Context, item Gamemode) error
	SetActive(ctx context.Context, gamemodeID string, active bool) (Gamemode, bool, error)
}
