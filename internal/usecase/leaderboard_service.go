package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	basecache "github.com/lifeboat-community/leaderboard-api/internal/platform/cache"
)

// TimeWindow is a rolling period used to filter leaderboard entries.
type TimeWindow string

const (
	WindowAllTime TimeWindow = "all-time"
	WindowMonthly TimeWindow = "monthly"
	WindowWeekly  TimeWindow = "weekly"
)

func ParseTimeWindow(v string) (TimeWindow, error) {
	switch TimeWindow(strings.ToLower(strings.TrimSpace(v))) {
	case WindowAllTime, "":
		return WindowAllTime, nil
	case WindowMonthly:
		return WindowMonthly, nil
	case WindowWeekly:
		return WindowWeekly, nil
	default:
		return "", fmt.Errorf("%w: invalid time window %q, valid values are %s, %s, %s",
			ErrInvalidInput, v, WindowAllTime, WindowMonthly, WindowWeekly)
	}
}

// cutoff returns the earliest createdAt admitted by the window, relative to
// the evaluation time. The zero time means unbounded.
func (w TimeWindow) cutoff(now time.Time) time.Time {
	switch w {
	case WindowWeekly:
		return now.AddDate(0, 0, -7)
	case WindowMonthly:
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}

// RankedEntry is one leaderboard row. Ranks are dense and 1-based: records
// sharing a value share a rank, and the next distinct value takes the
// previous rank plus one.
type RankedEntry struct {
	Rank           int
	RecordID       string
	UserID         string
	Username       string
	AvatarURL      string
	Role           profile.Role
	Value          float64
	FormattedValue string
	ProofURL       string
	CreatedAt      time.Time
	PersonalBest   bool
}

type LeaderboardService struct {
	categoryRepo category.Repository
	recordRepo   record.Repository
	profileRepo  profile.Repository
	cache        *basecache.Store
	now          func() time.Time
}

func NewLeaderboardService(
	categoryRepo category.Repository,
	recordRepo record.Repository,
	profileRepo profile.Repository,
	cache *basecache.Store,
) *LeaderboardService {
	return &LeaderboardService{
		categoryRepo: categoryRepo,
		recordRepo:   recordRepo,
		profileRepo:  profileRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// GetLeaderboard computes the ranked view of approved records for a category
// and time window. Results are cached per (category, window); the moderation
// workflow invalidates the category prefix on any approve/reject decision.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, categoryID string, window TimeWindow) ([]RankedEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboard")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}
	window, err := ParseTimeWindow(string(window))
	if err != nil {
		return nil, err
	}

	cat, exists, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	if s.cache == nil {
		return s.computeLeaderboard(ctx, cat, window)
	}

	key := leaderboardCacheKey(categoryID, window)
	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		entries, err := s.computeLeaderboard(ctx, cat, window)
		if err != nil {
			return nil, err
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	entries, _ := v.([]RankedEntry)
	return append([]RankedEntry(nil), entries...), nil
}

func (s *LeaderboardService) computeLeaderboard(ctx context.Context, cat category.Category, window TimeWindow) ([]RankedEntry, error) {
	records, err := s.recordRepo.ListByCategory(ctx, cat.ID)
	if err != nil {
		return nil, fmt.Errorf("list records by category: %w", err)
	}

	approved := records[:0:0]
	for _, item := range records {
		if item.Status == record.StatusApproved {
			approved = append(approved, item)
		}
	}

	// Personal bests are judged against every approved record in the
	// category, regardless of the requested window.
	bestByUser := make(map[string]record.Record, len(approved))
	for _, item := range approved {
		best, ok := bestByUser[item.UserID]
		if !ok || betterRecord(item, best, cat.MetricType) {
			bestByUser[item.UserID] = item
		}
	}

	cutoff := window.cutoff(s.now().UTC())
	eligible := approved[:0:0]
	for _, item := range approved {
		if !cutoff.IsZero() && item.CreatedAt.Before(cutoff) {
			continue
		}
		eligible = append(eligible, item)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Value != eligible[j].Value {
			return betterValue(eligible[i].Value, eligible[j].Value, cat.MetricType)
		}
		return eligible[i].CreatedAt.Before(eligible[j].CreatedAt)
	})

	userIDs := make([]string, 0, len(eligible))
	seen := make(map[string]struct{}, len(eligible))
	for _, item := range eligible {
		if _, ok := seen[item.UserID]; ok {
			continue
		}
		seen[item.UserID] = struct{}{}
		userIDs = append(userIDs, item.UserID)
	}

	profiles, err := s.profileRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("get submitter profiles: %w", err)
	}

	entries := make([]RankedEntry, 0, len(eligible))
	rank := 0
	for i, item := range eligible {
		if i == 0 || item.Value != eligible[i-1].Value {
			rank++
		}

		submitter := profiles[item.UserID]
		entries = append(entries, RankedEntry{
			Rank:           rank,
			RecordID:       item.ID,
			UserID:         item.UserID,
			Username:       submitter.Username,
			AvatarURL:      submitter.AvatarURL,
			Role:           submitter.Role,
			Value:          item.Value,
			FormattedValue: category.FormatValue(item.Value, cat.MetricType),
			ProofURL:       item.ProofURL,
			CreatedAt:      item.CreatedAt,
			PersonalBest:   bestByUser[item.UserID].ID == item.ID,
		})
	}

	return entries, nil
}

// betterValue reports whether a beats b under the category metric.
func betterValue(a, b float64, metric category.MetricType) bool {
	if metric.LowerIsBetter() {
		return a < b
	}
	return a > b
}

// betterRecord breaks value ties by earlier submission, rewarding first
// achievement.
func betterRecord(a, b record.Record, metric category.MetricType) bool {
	if a.Value != b.Value {
		return betterValue(a.Value, b.Value, metric)
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

func leaderboardCacheKey(categoryID string, window TimeWindow) string {
	return leaderboardCachePrefix(categoryID) + string(window)
}

func leaderboardCachePrefix(categoryID string) string {
	return "leaderboard:" + categoryID + ":"
}
