package category

import "context"

// Repository describes category persistence needs from use cases.
type Repository interface {
	ListByGamemode(ctx context.Context, gamemodeID string) ([]Category, error)
	GetByID(ctx context.Context, categoryID string) (Category, bool, error)
	Create(ctx context.Context, item Category) error
	SetActive(ctx context.Context, categoryID string, active bool) (Category, bool, error)
}
