package profile

import "context"

// Repository describes profile persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, profileID string) (Profile, bool, error)
	GetByIDs(ctx context.Context, profileIDs []string) (map[string]Profile, error)
	Create(ctx context.Context, item Profile) error
	UpdateRole(ctx context.Context, profileID string, role Role) (Profile, bool, error)
}
