package cache

import (
	"context"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
	basecache "github.com/lifeboat-community/leaderboard-api/internal/platform/cache"
)

// Read-through decorators for the catalog repositories. The catalog changes
// rarely and is read on almost every request, so it caches aggressively and
// invalidates on any write.

type GamemodeRepository struct {
	next  gamemode.Repository
	cache *basecache.Store
}

func NewGamemodeRepository(next gamemode.Repository, cache *basecache.Store) *GamemodeRepository {
	return &GamemodeRepository{next: next, cache: cache}
}

func (r *GamemodeRepository) List(ctx context.Context) ([]gamemode.Gamemode, error) {
	v, err := r.cache.GetOrLoad(ctx, "gamemode:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]gamemode.Gamemode(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]gamemode.Gamemode)
	return append([]gamemode.Gamemode(nil), items...), nil
}

func (r *GamemodeRepository) GetByID(ctx context.Context, gamemodeID string) (gamemode.Gamemode, bool, error) {
	key := gamemodeByIDKey(gamemodeID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, gamemodeID)
		if err != nil {
			return nil, err
		}
		return cachedGamemodeByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return gamemode.Gamemode{}, false, err
	}

	cached, _ := v.(cachedGamemodeByID)
	return cached.value, cached.exists, nil
}

func (r *GamemodeRepository) Create(ctx context.Context, item gamemode.Gamemode) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}

	r.cache.Delete(ctx, "gamemode:list")
	r.cache.Delete(ctx, gamemodeByIDKey(item.ID))
	return nil
}

func (r *GamemodeRepository) SetActive(ctx context.Context, gamemodeID string, active bool) (gamemode.Gamemode, bool, error) {
	item, exists, err := r.next.SetActive(ctx, gamemodeID, active)
	if err != nil {
		return gamemode.Gamemode{}, false, err
	}

	r.cache.Delete(ctx, "gamemode:list")
	r.cache.Delete(ctx, gamemodeByIDKey(gamemodeID))
	return item, exists, nil
}

type cachedGamemodeByID struct {
	value  gamemode.Gamemode
	exists bool
}

func gamemodeByIDKey(gamemodeID string) string {
	return "gamemode:id:" + gamemodeID
}

type CategoryRepository struct {
	next  category.Repository
	cache *basecache.Store
}

func NewCategoryRepository(next category.Repository, cache *basecache.Store) *CategoryRepository {
	return &CategoryRepository{next: next, cache: cache}
}

func (r *CategoryRepository) ListByGamemode(ctx context.Context, gamemodeID string) ([]category.Category, error) {
	key := "category:list:gamemode:" + gamemodeID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByGamemode(ctx, gamemodeID)
		if err != nil {
			return nil, err
		}
		return append([]category.Category(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]category.Category)
	return append([]category.Category(nil), items...), nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID string) (category.Category, bool, error) {
	key := categoryByIDKey(categoryID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		return cachedCategoryByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return category.Category{}, false, err
	}

	cached, _ := v.(cachedCategoryByID)
	return cached.value, cached.exists, nil
}

func (r *CategoryRepository) Create(ctx context.Context, item category.Category) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}

	r.cache.Delete(ctx, "category:list:gamemode:"+item.GamemodeID)
	r.cache.Delete(ctx, categoryByIDKey(item.ID))
	return nil
}

func (r *CategoryRepository) SetActive(ctx context.Context, categoryID string, active bool) (category.Category, bool, error) {
	item, exists, err := r.next.SetActive(ctx, categoryID, active)
	if err != nil {
		return category.Category{}, false, err
	}

	r.cache.DeletePrefix(ctx, "category:list:gamemode:")
	r.cache.Delete(ctx, categoryByIDKey(categoryID))
	return item, exists, nil
}

type cachedCategoryByID struct {
	value  category.Category
	exists bool
}

func categoryByIDKey(categoryID string) string {
	return "category:id:" + categoryID
}
