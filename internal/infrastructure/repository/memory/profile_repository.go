package memory

import (
	"context"
	"sync"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
)

type ProfileRepository struct {
	mu     sync.RWMutex
	items  map[string]profile.Profile
	orders []string
}

func NewProfileRepository(profiles []profile.Profile) *ProfileRepository {
	items := make(map[string]profile.Profile, len(profiles))
	orders := make([]string, 0, len(profiles))

	for _, p := range profiles {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &ProfileRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ProfileRepository) List(_ context.Context) ([]profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]profile.Profile, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *ProfileRepository) GetByID(_ context.Context, profileID string) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[profileID]
	if !ok {
		return profile.Profile{}, false, nil
	}

	return p, true, nil
}

func (r *ProfileRepository) GetByIDs(_ context.Context, profileIDs []string) (map[string]profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]profile.Profile, len(profileIDs))
	for _, id := range profileIDs {
		if p, ok := r.items[id]; ok {
			out[id] = p
		}
	}

	return out, nil
}

func (r *ProfileRepository) Create(_ context.Context, item profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *ProfileRepository) UpdateRole(_ context.Context, profileID string, role profile.Role) (profile.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[profileID]
	if !ok {
		return profile.Profile{}, false, nil
	}

	p.Role = role
	r.items[profileID] = p

	return p, true, nil
}
