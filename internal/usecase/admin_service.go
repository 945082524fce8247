package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	basecache "github.com/lifeboat-community/leaderboard-api/internal/platform/cache"
	idgen "github.com/lifeboat-community/leaderboard-api/internal/platform/id"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
)

type CreateGamemodeInput struct {
	Name        string
	Slug        string
	Icon        string
	Description string
}

type CreateCategoryInput struct {
	GamemodeID      string
	Name            string
	MetricType      string
	Rules           string
	DifficultyLevel string
	EstimatedEffort string
}

// AdminService covers the catalog and role management operations gated on the
// admin role.
type AdminService struct {
	gamemodeRepo gamemode.Repository
	categoryRepo category.Repository
	profileRepo  profile.Repository
	cache        *basecache.Store
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewAdminService(
	gamemodeRepo gamemode.Repository,
	categoryRepo category.Repository,
	profileRepo profile.Repository,
	cache *basecache.Store,
	idGen idgen.Generator,
	logger *logging.Logger,
) *AdminService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AdminService{
		gamemodeRepo: gamemodeRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		cache:        cache,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *AdminService) CreateGamemode(ctx context.Context, adminID string, input CreateGamemodeInput) (gamemode.Gamemode, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateGamemode")
	defer span.End()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return gamemode.Gamemode{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return gamemode.Gamemode{}, fmt.Errorf("generate gamemode id: %w", err)
	}

	item := gamemode.Gamemode{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Slug:        strings.TrimSpace(strings.ToLower(input.Slug)),
		Icon:        strings.TrimSpace(input.Icon),
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return gamemode.Gamemode{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.gamemodeRepo.Create(ctx, item); err != nil {
		return gamemode.Gamemode{}, fmt.Errorf("create gamemode: %w", err)
	}

	s.logger.InfoContext(ctx, "gamemode created", "gamemode_id", item.ID, "slug", item.Slug, "admin_id", adminID)

	return item, nil
}

func (s *AdminService) CreateCategory(ctx context.Context, adminID string, input CreateCategoryInput) (category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateCategory")
	defer span.End()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return category.Category{}, err
	}

	metric, err := category.ParseMetricType(input.MetricType)
	if err != nil {
		return category.Category{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	gamemodeID := strings.TrimSpace(input.GamemodeID)
	_, exists, err := s.gamemodeRepo.GetByID(ctx, gamemodeID)
	if err != nil {
		return category.Category{}, fmt.Errorf("get gamemode: %w", err)
	}
	if !exists {
		return category.Category{}, fmt.Errorf("%w: gamemode=%s", ErrNotFound, gamemodeID)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return category.Category{}, fmt.Errorf("generate category id: %w", err)
	}

	item := category.Category{
		ID:              id,
		GamemodeID:      gamemodeID,
		Name:            strings.TrimSpace(input.Name),
		MetricType:      metric,
		Rules:           strings.TrimSpace(input.Rules),
		DifficultyLevel: strings.TrimSpace(input.DifficultyLevel),
		EstimatedEffort: strings.TrimSpace(input.EstimatedEffort),
		IsActive:        true,
		CreatedAt:       s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return category.Category{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.categoryRepo.Create(ctx, item); err != nil {
		return category.Category{}, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created",
		"category_id", item.ID,
		"gamemode_id", item.GamemodeID,
		"metric_type", string(item.MetricType),
		"admin_id", adminID,
	)

	return item, nil
}

// SetGamemodeActive toggles a gamemode's visibility without deleting history.
func (s *AdminService) SetGamemodeActive(ctx context.Context, adminID, gamemodeID string, active bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SetGamemodeActive")
	defer span.End()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	gamemodeID = strings.TrimSpace(gamemodeID)
	if gamemodeID == "" {
		return fmt.Errorf("%w: gamemode id is required", ErrInvalidInput)
	}

	_, exists, err := s.gamemodeRepo.SetActive(ctx, gamemodeID, active)
	if err != nil {
		return fmt.Errorf("set gamemode active: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: gamemode=%s", ErrNotFound, gamemodeID)
	}

	s.logger.InfoContext(ctx, "gamemode visibility changed", "gamemode_id", gamemodeID, "active", active, "admin_id", adminID)

	return nil
}

func (s *AdminService) SetCategoryActive(ctx context.Context, adminID, categoryID string, active bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.SetCategoryActive")
	defer span.End()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}

	_, exists, err := s.categoryRepo.SetActive(ctx, categoryID, active)
	if err != nil {
		return fmt.Errorf("set category active: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	if s.cache != nil {
		s.cache.DeletePrefix(ctx, leaderboardCachePrefix(categoryID))
	}

	s.logger.InfoContext(ctx, "category visibility changed", "category_id", categoryID, "active", active, "admin_id", adminID)

	return nil
}

func (s *AdminService) ListProfiles(ctx context.Context, adminID string) ([]profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ListProfiles")
	defer span.End()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	items, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return items, nil
}

// ChangeProfileRole promotes or demotes a profile. Admins cannot change their
// own role, which keeps at least one admin reachable.
func (s *AdminService) ChangeProfileRole(ctx context.Context, adminID, profileID string, role profile.Role) (profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ChangeProfileRole")
	defer span.End()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return profile.Profile{}, err
	}

	role, err := profile.ParseRole(string(role))
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return profile.Profile{}, fmt.Errorf("%w: profile id is required", ErrInvalidInput)
	}
	if profileID == strings.TrimSpace(adminID) {
		return profile.Profile{}, fmt.Errorf("%w: admins cannot change their own role", ErrInvalidInput)
	}

	updated, exists, err := s.profileRepo.UpdateRole(ctx, profileID, role)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("update profile role: %w", err)
	}
	if !exists {
		return profile.Profile{}, fmt.Errorf("%w: profile=%s", ErrNotFound, profileID)
	}

	s.logger.InfoContext(ctx, "profile role changed", "profile_id", profileID, "role", string(role), "admin_id", adminID)

	return updated, nil
}

func (s *AdminService) requireAdmin(ctx context.Context, adminID string) error {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return fmt.Errorf("%w: caller id is required", ErrUnauthorized)
	}

	caller, exists, err := s.profileRepo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("get caller profile: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: unknown caller profile", ErrUnauthorized)
	}
	if !caller.Role.CanAdminister() {
		return fmt.Errorf("%w: operation requires the admin role", ErrPermissionDenied)
	}

	return nil
}
