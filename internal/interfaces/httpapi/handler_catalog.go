package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
)

func (h *Handler) ListGamemodes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGamemodes")
	defer span.End()

	items, err := h.catalogService.ListGamemodes(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list gamemodes failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]gamemodeDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, gamemodeToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) ListCategoriesByGamemode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCategoriesByGamemode")
	defer span.End()

	gamemodeID := strings.TrimSpace(r.PathValue("gamemodeID"))
	items, err := h.catalogService.ListCategories(ctx, gamemodeID)
	if err != nil {
		h.logger.WarnContext(ctx, "list categories failed", "gamemode_id", gamemodeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]categoryDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, categoryToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

type gamemodeDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
}

type categoryDTO struct {
	ID              string `json:"id"`
	GamemodeID      string `json:"gamemodeId"`
	Name            string `json:"name"`
	MetricType      string `json:"metricType"`
	Rules           string `json:"rules"`
	DifficultyLevel string `json:"difficultyLevel"`
	EstimatedEffort string `json:"estimatedEffort"`
	IsActive        bool   `json:"isActive"`
	CreatedAt       string `json:"createdAt"`
}

func gamemodeToDTO(ctx context.Context, v gamemode.Gamemode) gamemodeDTO {
	ctx, span := startSpan(ctx, "httpapi.gamemodeToDTO")
	defer span.End()

	return gamemodeDTO{
		ID:          v.ID,
		Name:        v.Name,
		Slug:        v.Slug,
		Icon:        v.Icon,
		Description: v.Description,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func categoryToDTO(ctx context.Context, v category.Category) categoryDTO {
	ctx, span := startSpan(ctx, "httpapi.categoryToDTO")
	defer span.End()

	return categoryDTO{
		ID:              v.ID,
		GamemodeID:      v.GamemodeID,
		Name:            v.Name,
		MetricType:      string(v.MetricType),
		Rules:           v.Rules,
		DifficultyLevel: v.DifficultyLevel,
		EstimatedEffort: v.EstimatedEffort,
		IsActive:        v.IsActive,
		CreatedAt:       v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
