package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

func (h *Handler) SubmitRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRecord")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req submitRecordRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.submissionService.SubmitRecord(ctx, usecase.SubmitRecordInput{
		UserID:     principal.UserID,
		CategoryID: req.CategoryID,
		Value:      req.Value,
		ProofURL:   req.ProofURL,
		Notes:      req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit record failed", "user_id", principal.UserID, "category_id", req.CategoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, recordToDTO(ctx, item))
}

func (h *Handler) ListMySubmissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMySubmissions")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.submissionService.ListUserSubmissions(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list submissions failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]recordDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, recordToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

// The API requires value > 0, stricter than the service layer's finiteness
// check: every catalog metric is a positive measurement (elapsed seconds,
// counts, scores) and the records table carries the same CHECK constraint.
type submitRecordRequest struct {
	CategoryID string  `json:"categoryId" validate:"required"`
	Value      float64 `json:"value" validate:"required,gt=0"`
	ProofURL   string  `json:"proofUrl" validate:"required,max=2048"`
	Notes      string  `json:"notes" validate:"max=1000"`
}

type recordDTO struct {
	ID                string  `json:"id"`
	UserID            string  `json:"userId"`
	CategoryID        string  `json:"categoryId"`
	Value             float64 `json:"value"`
	ProofURL          string  `json:"proofUrl"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes,omitempty"`
	ModeratorFeedback string  `json:"moderatorFeedback,omitempty"`
	VerifiedBy        string  `json:"verifiedBy,omitempty"`
	VerifiedAt        string  `json:"verifiedAt,omitempty"`
	CreatedAt         string  `json:"createdAt"`
}

func recordToDTO(ctx context.Context, v record.Record) recordDTO {
	ctx, span := startSpan(ctx, "httpapi.recordToDTO")
	defer span.End()

	verifiedAt := ""
	if v.VerifiedAt != nil {
		verifiedAt = v.VerifiedAt.UTC().Format(time.RFC3339)
	}

	return recordDTO{
		ID:                v.ID,
		UserID:            v.UserID,
		CategoryID:        v.CategoryID,
		Value:             v.Value,
		ProofURL:          v.ProofURL,
		Status:            string(v.Status),
		Notes:             v.Notes,
		ModeratorFeedback: v.ModeratorFeedback,
		VerifiedBy:        v.VerifiedBy,
		VerifiedAt:        verifiedAt,
		CreatedAt:         v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
