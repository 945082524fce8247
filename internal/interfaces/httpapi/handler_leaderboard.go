package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	window := strings.TrimSpace(r.URL.Query().Get("window"))
	if window == "" {
		window = string(usecase.WindowAllTime)
	}

	entries, err := h.leaderboardService.GetLeaderboard(ctx, categoryID, usecase.TimeWindow(window))
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "category_id", categoryID, "window", window, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, rankedEntryToDTO(ctx, entry))
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardDTO{
		CategoryID: categoryID,
		Window:     window,
		Entries:    items,
	})
}

type leaderboardDTO struct {
	CategoryID string                `json:"categoryId"`
	Window     string                `json:"window"`
	Entries    []leaderboardEntryDTO `json:"entries"`
}

type leaderboardEntryDTO struct {
	Rank           int     `json:"rank"`
	RecordID       string  `json:"recordId"`
	UserID         string  `json:"userId"`
	Username       string  `json:"username"`
	AvatarURL      string  `json:"avatarUrl"`
	Role           string  `json:"role"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formattedValue"`
	ProofURL       string  `json:"proofUrl"`
	CreatedAt      string  `json:"createdAt"`
	PersonalBest   bool    `json:"personalBest"`
}

func rankedEntryToDTO(ctx context.Context, v usecase.RankedEntry) leaderboardEntryDTO {
	ctx, span := startSpan(ctx, "httpapi.rankedEntryToDTO")
	defer span.End()

	return leaderboardEntryDTO{
		Rank:           v.Rank,
		RecordID:       v.RecordID,
		UserID:         v.UserID,
		Username:       v.Username,
		AvatarURL:      v.AvatarURL,
		Role:           string(v.Role),
		Value:          v.Value,
		FormattedValue: v.FormattedValue,
		ProofURL:       v.ProofURL,
		CreatedAt:      v.CreatedAt.UTC().Format(time.RFC3339),
		PersonalBest:   v.PersonalBest,
	}
}
