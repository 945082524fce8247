package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/moderationlog"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

func (h *Handler) ListModerationQueue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListModerationQueue")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.moderationService.ListPendingRecords(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list moderation queue failed", "moderator_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]recordDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, recordToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) ReviewRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReviewRecord")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	recordID := strings.TrimSpace(r.PathValue("recordID"))

	var req reviewRecordRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	action, err := record.ParseReviewAction(req.Action)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	updated, err := h.moderationService.ReviewRecord(ctx, recordID, action, principal.UserID, req.Feedback)
	if err != nil {
		h.logger.WarnContext(ctx, "review record failed",
			"record_id", recordID,
			"moderator_id", principal.UserID,
			"action", req.Action,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordToDTO(ctx, updated))
}

func (h *Handler) ListAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAuditTrail")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	recordID := strings.TrimSpace(r.PathValue("recordID"))
	entries, err := h.moderationService.ListAuditTrail(ctx, principal.UserID, recordID)
	if err != nil {
		h.logger.WarnContext(ctx, "list audit trail failed", "record_id", recordID, "admin_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]auditEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, auditEntryToDTO(ctx, entry))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

type reviewRecordRequest struct {
	Action   string `json:"action" validate:"required"`
	Feedback string `json:"feedback" validate:"max=1000"`
}

type auditEntryDTO struct {
	ID          string `json:"id"`
	ModeratorID string `json:"moderatorId"`
	RecordID    string `json:"recordId"`
	Action      string `json:"action"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func auditEntryToDTO(ctx context.Context, v moderationlog.Entry) auditEntryDTO {
	ctx, span := startSpan(ctx, "httpapi.auditEntryToDTO")
	defer span.End()

	return auditEntryDTO{
		ID:          v.ID,
		ModeratorID: v.ModeratorID,
		RecordID:    v.RecordID,
		Action:      v.Action,
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
