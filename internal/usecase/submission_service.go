package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	idgen "github.com/lifeboat-community/leaderboard-api/internal/platform/id"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
)

// SubmitRecordInput is the incoming payload for a new performance record.
type SubmitRecordInput struct {
	UserID     string
	CategoryID string
	Value      float64
	ProofURL   string
	Notes      string
}

type SubmissionService struct {
	categoryRepo category.Repository
	recordRepo   record.Repository
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewSubmissionService(
	categoryRepo category.Repository,
	recordRepo record.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *SubmissionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SubmissionService{
		categoryRepo: categoryRepo,
		recordRepo:   recordRepo,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

// SubmitRecord validates and stores a new submission. Every record enters the
// moderation queue as pending; nothing a submitter sends can pre-set
// verification fields.
func (s *SubmissionService) SubmitRecord(ctx context.Context, input SubmitRecordInput) (record.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubmissionService.SubmitRecord")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.ProofURL = strings.TrimSpace(input.ProofURL)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.UserID == "" {
		return record.Record{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.CategoryID == "" {
		return record.Record{}, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}
	if math.IsNaN(input.Value) || math.IsInf(input.Value, 0) {
		return record.Record{}, fmt.Errorf("%w: value must be a finite number", ErrInvalidInput)
	}
	if err := record.ValidateProofURL(input.ProofURL); err != nil {
		if errors.Is(err, record.ErrInvalidProofURL) {
			return record.Record{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		return record.Record{}, fmt.Errorf("validate proof url: %w", err)
	}

	cat, exists, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return record.Record{}, fmt.Errorf("get category: %w", err)
	}
	if !exists || !cat.IsActive {
		return record.Record{}, fmt.Errorf("%w: category=%s is not open for submissions", ErrInvalidInput, input.CategoryID)
	}

	recordID, err := s.idGen.NewID()
	if err != nil {
		return record.Record{}, fmt.Errorf("generate record id: %w", err)
	}

	item := record.Record{
		ID:         recordID,
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		Value:      input.Value,
		ProofURL:   input.ProofURL,
		Status:     record.StatusPending,
		Notes:      input.Notes,
		CreatedAt:  s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return record.Record{}, fmt.Errorf("validate record: %w", err)
	}

	if err := s.recordRepo.Create(ctx, item); err != nil {
		return record.Record{}, fmt.Errorf("create record: %w", err)
	}

	s.logger.InfoContext(ctx, "record submitted",
		"record_id", item.ID,
		"user_id", item.UserID,
		"category_id", item.CategoryID,
		"metric_type", string(cat.MetricType),
	)

	return item, nil
}

// ListUserSubmissions returns a user's submission history, oldest first.
func (s *SubmissionService) ListUserSubmissions(ctx context.Context, userID string) ([]record.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubmissionService.ListUserSubmissions")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.recordRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list records by user: %w", err)
	}

	return items, nil
}
