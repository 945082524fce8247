package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/moderationlog"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	basecache "github.com/lifeboat-community/leaderboard-api/internal/platform/cache"
	idgen "github.com/lifeboat-community/leaderboard-api/internal/platform/id"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
)

type ModerationService struct {
	recordRepo  record.Repository
	profileRepo profile.Repository
	auditRepo   moderationlog.Repository
	cache       *basecache.Store
	idGen       idgen.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewModerationService(
	recordRepo record.Repository,
	profileRepo profile.Repository,
	auditRepo moderationlog.Repository,
	cache *basecache.Store,
	idGen idgen.Generator,
	logger *logging.Logger,
) *ModerationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ModerationService{
		recordRepo:  recordRepo,
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
		cache:       cache,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// ListPendingRecords is the moderator queue, oldest submission first. The
// caller's role must be at least moderator.
func (s *ModerationService) ListPendingRecords(ctx context.Context, moderatorID string) ([]record.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.ListPendingRecords")
	defer span.End()

	if _, err := s.requireModerator(ctx, moderatorID); err != nil {
		return nil, err
	}

	items, err := s.recordRepo.ListByStatus(ctx, record.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending records: %w", err)
	}

	return items, nil
}

// ReviewRecord applies one moderation decision to a pending record. The
// verification fields are set together, an audit entry is appended, and the
// category's cached leaderboards are invalidated. A record already decided
// (including by a concurrent reviewer) fails with ErrInvalidTransition.
func (s *ModerationService) ReviewRecord(ctx context.Context, recordID string, action record.ReviewAction, moderatorID, feedback string) (record.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.ReviewRecord")
	defer span.End()

	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return record.Record{}, fmt.Errorf("%w: record id is required", ErrInvalidInput)
	}
	action, err := record.ParseReviewAction(string(action))
	if err != nil {
		return record.Record{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	moderator, err := s.requireModerator(ctx, moderatorID)
	if err != nil {
		return record.Record{}, err
	}

	target, exists, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return record.Record{}, fmt.Errorf("get record: %w", err)
	}
	if !exists {
		return record.Record{}, fmt.Errorf("%w: record=%s", ErrNotFound, recordID)
	}
	if !target.Status.CanTransitionTo(action.Status()) {
		return record.Record{}, fmt.Errorf("%w: record=%s is already %s", ErrInvalidTransition, recordID, target.Status)
	}

	decidedAt := s.now().UTC()
	updated, err := s.recordRepo.UpdateStatus(ctx, recordID, record.StatusUpdate{
		Status:     action.Status(),
		VerifiedBy: moderator.ID,
		Feedback:   strings.TrimSpace(feedback),
		VerifiedAt: decidedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, record.ErrNotFound):
			return record.Record{}, fmt.Errorf("%w: record=%s", ErrNotFound, recordID)
		case errors.Is(err, record.ErrStatusConflict):
			// A concurrent decision won; the store never overwrites.
			return record.Record{}, fmt.Errorf("%w: record=%s was decided concurrently", ErrInvalidTransition, recordID)
		default:
			return record.Record{}, fmt.Errorf("update record status: %w", err)
		}
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		return record.Record{}, fmt.Errorf("generate audit entry id: %w", err)
	}
	if err := s.auditRepo.Append(ctx, moderationlog.Entry{
		ID:          entryID,
		ModeratorID: moderator.ID,
		RecordID:    updated.ID,
		Action:      string(action),
		Notes:       updated.ModeratorFeedback,
		CreatedAt:   decidedAt,
	}); err != nil {
		return record.Record{}, fmt.Errorf("append audit entry: %w", err)
	}

	if s.cache != nil {
		s.cache.DeletePrefix(ctx, leaderboardCachePrefix(updated.CategoryID))
	}

	s.logger.InfoContext(ctx, "record reviewed",
		"record_id", updated.ID,
		"category_id", updated.CategoryID,
		"action", string(action),
		"moderator_id", moderator.ID,
	)

	return updated, nil
}

// ListAuditTrail returns the moderation log for one record, admin only.
func (s *ModerationService) ListAuditTrail(ctx context.Context, adminID, recordID string) ([]moderationlog.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.ListAuditTrail")
	defer span.End()

	caller, err := s.resolveCaller(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.CanAdminister() {
		return nil, fmt.Errorf("%w: audit trail requires the admin role", ErrPermissionDenied)
	}

	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return nil, fmt.Errorf("%w: record id is required", ErrInvalidInput)
	}

	entries, err := s.auditRepo.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	return entries, nil
}

func (s *ModerationService) requireModerator(ctx context.Context, moderatorID string) (profile.Profile, error) {
	caller, err := s.resolveCaller(ctx, moderatorID)
	if err != nil {
		return profile.Profile{}, err
	}
	if !caller.Role.CanModerate() {
		return profile.Profile{}, fmt.Errorf("%w: moderation requires the moderator role", ErrPermissionDenied)
	}
	return caller, nil
}

func (s *ModerationService) resolveCaller(ctx context.Context, callerID string) (profile.Profile, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return profile.Profile{}, fmt.Errorf("%w: caller id is required", ErrUnauthorized)
	}

	caller, exists, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("get caller profile: %w", err)
	}
	if !exists {
		return profile.Profile{}, fmt.Errorf("%w: unknown caller profile", ErrUnauthorized)
	}

	return caller, nil
}
