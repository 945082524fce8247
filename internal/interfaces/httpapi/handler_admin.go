package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

func (h *Handler) CreateGamemode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGamemode")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createGamemodeRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.adminService.CreateGamemode(ctx, principal.UserID, usecase.CreateGamemodeInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Icon:        req.Icon,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create gamemode failed", "admin_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gamemodeToDTO(ctx, item))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCategory")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createCategoryRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.adminService.CreateCategory(ctx, principal.UserID, usecase.CreateCategoryInput{
		GamemodeID:      req.GamemodeID,
		Name:            req.Name,
		MetricType:      req.MetricType,
		Rules:           req.Rules,
		DifficultyLevel: req.DifficultyLevel,
		EstimatedEffort: req.EstimatedEffort,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create category failed", "admin_id", principal.UserID, "gamemode_id", req.GamemodeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, categoryToDTO(ctx, item))
}

func (h *Handler) SetGamemodeActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetGamemodeActive")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	gamemodeID := strings.TrimSpace(r.PathValue("gamemodeID"))

	var req setActiveRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.IsActive == nil {
		writeError(ctx, w, fmt.Errorf("%w: isActive is required", usecase.ErrInvalidInput))
		return
	}

	if err := h.adminService.SetGamemodeActive(ctx, principal.UserID, gamemodeID, *req.IsActive); err != nil {
		h.logger.WarnContext(ctx, "set gamemode active failed", "admin_id", principal.UserID, "gamemode_id", gamemodeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"id": gamemodeID, "isActive": *req.IsActive})
}

func (h *Handler) SetCategoryActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCategoryActive")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))

	var req setActiveRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.IsActive == nil {
		writeError(ctx, w, fmt.Errorf("%w: isActive is required", usecase.ErrInvalidInput))
		return
	}

	if err := h.adminService.SetCategoryActive(ctx, principal.UserID, categoryID, *req.IsActive); err != nil {
		h.logger.WarnContext(ctx, "set category active failed", "admin_id", principal.UserID, "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"id": categoryID, "isActive": *req.IsActive})
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListProfiles")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.adminService.ListProfiles(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list profiles failed", "admin_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]profileDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, profileToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) ChangeProfileRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChangeProfileRole")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	profileID := strings.TrimSpace(r.PathValue("profileID"))

	var req changeRoleRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	role, err := profile.ParseRole(req.Role)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	updated, err := h.adminService.ChangeProfileRole(ctx, principal.UserID, profileID, role)
	if err != nil {
		h.logger.WarnContext(ctx, "change profile role failed", "admin_id", principal.UserID, "profile_id", profileID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(ctx, updated))
}

type createGamemodeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100"`
	Icon        string `json:"icon" validate:"max=2048"`
	Description string `json:"description" validate:"max=1000"`
}

type createCategoryRequest struct {
	GamemodeID      string `json:"gamemodeId" validate:"required"`
	Name            string `json:"name" validate:"required,max=100"`
	MetricType      string `json:"metricType" validate:"required"`
	Rules           string `json:"rules" validate:"max=5000"`
	DifficultyLevel string `json:"difficultyLevel" validate:"max=50"`
	EstimatedEffort string `json:"estimatedEffort" validate:"max=100"`
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type profileDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func profileToDTO(ctx context.Context, v profile.Profile) profileDTO {
	ctx, span := startSpan(ctx, "httpapi.profileToDTO")
	defer span.End()

	return profileDTO{
		ID:        v.ID,
		Username:  v.Username,
		AvatarURL: v.AvatarURL,
		Bio:       v.Bio,
		Role:      string(v.Role),
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
