package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
)

// CatalogService serves the public gamemode and category listings.
type CatalogService struct {
	gamemodeRepo gamemode.Repository
	categoryRepo category.Repository
}

func NewCatalogService(gamemodeRepo gamemode.Repository, categoryRepo category.Repository) *CatalogService {
	return &CatalogService{
		gamemodeRepo: gamemodeRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *CatalogService) ListGamemodes(ctx context.Context) ([]gamemode.Gamemode, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListGamemodes")
	defer span.End()

	items, err := s.gamemodeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gamemodes: %w", err)
	}

	active := items[:0]
	for _, item := range items {
		if item.IsActive {
			active = append(active, item)
		}
	}

	return active, nil
}

func (s *CatalogService) ListCategories(ctx context.Context, gamemodeID string) ([]category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListCategories")
	defer span.End()

	gamemodeID = strings.TrimSpace(gamemodeID)
	if gamemodeID == "" {
		return nil, fmt.Errorf("%w: gamemode id is required", ErrInvalidInput)
	}

	_, exists, err := s.gamemodeRepo.GetByID(ctx, gamemodeID)
	if err != nil {
		return nil, fmt.Errorf("get gamemode: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: gamemode=%s", ErrNotFound, gamemodeID)
	}

	items, err := s.categoryRepo.ListByGamemode(ctx, gamemodeID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	active := items[:0]
	for _, item := range items {
		if item.IsActive {
			active = append(active, item)
		}
	}

	return active, nil
}
