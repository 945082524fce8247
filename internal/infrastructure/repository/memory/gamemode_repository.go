package memory

import (
	"context"
	"sync"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
)

type GamemodeRepository struct {
	mu     sync.RWMutex
	items  map[string]gamemode.Gamemode
	orders []string
}

func NewGamemodeRepository(gamemodes []gamemode.Gamemode) *GamemodeRepository {
	items := make(map[string]gamemode.Gamemode, len(gamemodes))
	orders := make([]string, 0, len(gamemodes))

	for _, g := range gamemodes {
		items[g.ID] = g
		orders = append(orders, g.ID)
	}

	return &GamemodeRepository{
		items:  items,
		orders: orders,
	}
}

func (r *GamemodeRepository) List(_ context.Context) ([]gamemode.Gamemode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gamemode.Gamemode, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *GamemodeRepository) GetByID(_ context.Context, gamemodeID string) (gamemode.Gamemode, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[gamemodeID]
	if !ok {
		return gamemode.Gamemode{}, false, nil
	}

	return g, true, nil
}

func (r *GamemodeRepository) Create(_ context.Context, item gamemode.Gamemode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *GamemodeRepository) SetActive(_ context.Context, gamemodeID string, active bool) (gamemode.Gamemode, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.items[gamemodeID]
	if !ok {
		return gamemode.Gamemode{}, false, nil
	}

	g.IsActive = active
	r.items[gamemodeID] = g

	return g, true, nil
}
