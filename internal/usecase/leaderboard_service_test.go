package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	basecache "github.com/lifeboat-community/leaderboard-api/internal/platform/cache"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
)

func leaderboardFixtures() (*stubCategoryRepository, *stubProfileRepository) {
	categories := &stubCategoryRepository{
		byID: map[string]category.Category{
			"cat-speedrun": {ID: "cat-speedrun", GamemodeID: "gm-skywars", Name: "Solo Speedrun", MetricType: category.MetricTime, IsActive: true},
			"cat-wins":     {ID: "cat-wins", GamemodeID: "gm-bedwars", Name: "Lifetime Wins", MetricType: category.MetricCount, IsActive: true},
		},
	}
	profiles := &stubProfileRepository{
		byID: map[string]profile.Profile{
			"user-1": {ID: "user-1", Username: "EnderQueen", Role: profile.RolePlayer},
			"user-2": {ID: "user-2", Username: "BlockHopper", Role: profile.RolePlayer},
			"user-3": {ID: "user-3", Username: "NetherNate", Role: profile.RoleModerator},
		},
	}
	return categories, profiles
}

func TestLeaderboardService_GetLeaderboard_TimeMetricAscendingWithTieBreak(t *testing.T) {
	t.Parallel()

	categories, profiles := leaderboardFixtures()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	records := newStubRecordRepository(
		record.Record{ID: "r-slow", UserID: "user-3", CategoryID: "cat-speedrun", Value: 102.5, Status: record.StatusApproved, CreatedAt: base},
		record.Record{ID: "r-late-tie", UserID: "user-2", CategoryID: "cat-speedrun", Value: 42.5, Status: record.StatusApproved, CreatedAt: base.Add(2 * time.Hour)},
		record.Record{ID: "r-early-tie", UserID: "user-1", CategoryID: "cat-speedrun", Value: 42.5, Status: record.StatusApproved, CreatedAt: base.Add(time.Hour)},
		record.Record{ID: "r-pending", UserID: "user-1", CategoryID: "cat-speedrun", Value: 10, Status: record.StatusPending, CreatedAt: base},
		record.Record{ID: "r-rejected", UserID: "user-2", CategoryID: "cat-speedrun", Value: 11, Status: record.StatusRejected, CreatedAt: base},
	)

	service := NewLeaderboardService(categories, records, profiles, nil)

	got, err := service.GetLeaderboard(context.Background(), "cat-speedrun", WindowAllTime)
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries (approved only), got %d", len(got))
	}

	// Lower time wins; the tie goes to the earlier submission but both share
	// the same rank.
	if got[0].RecordID != "r-early-tie" || got[0].Rank != 1 || got[0].Username != "EnderQueen" {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[1].RecordID != "r-late-tie" || got[1].Rank != 1 {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
	if got[2].RecordID != "r-slow" || got[2].Rank != 2 {
		t.Fatalf("unexpected third entry: %+v", got[2])
	}

	if got[0].FormattedValue != "42.500s" {
		t.Fatalf("expected formatted value 42.500s, got %q", got[0].FormattedValue)
	}
	if got[2].FormattedValue != "1m 42.500s" {
		t.Fatalf("expected formatted value 1m 42.500s, got %q", got[2].FormattedValue)
	}
}

func TestLeaderboardService_GetLeaderboard_CountMetricDescendingDenseRanks(t *testing.T) {
	t.Parallel()

	categories, profiles := leaderboardFixtures()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	records := newStubRecordRepository(
		record.Record{ID: "r-1", UserID: "user-1", CategoryID: "cat-wins", Value: 1500, Status: record.StatusApproved, CreatedAt: base},
		record.Record{ID: "r-2", UserID: "user-2", CategoryID: "cat-wins", Value: 1500, Status: record.StatusApproved, CreatedAt: base.Add(time.Minute)},
		record.Record{ID: "r-3", UserID: "user-3", CategoryID: "cat-wins", Value: 900, Status: record.StatusApproved, CreatedAt: base},
	)

	service := NewLeaderboardService(categories, records, profiles, nil)

	got, err := service.GetLeaderboard(context.Background(), "cat-wins", WindowAllTime)
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	wantRanks := []int{1, 1, 2}
	for i, want := range wantRanks {
		if got[i].Rank != want {
			t.Fatalf("entry %d: expected rank %d, got %d", i, want, got[i].Rank)
		}
	}
	if got[0].FormattedValue != "1,500" {
		t.Fatalf("expected formatted value 1,500, got %q", got[0].FormattedValue)
	}
}

func TestLeaderboardService_GetLeaderboard_WindowFiltering(t *testing.T) {
	t.Parallel()

	categories, profiles := leaderboardFixtures()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := newStubRecordRepository(
		record.Record{ID: "r-ancient", UserID: "user-1", CategoryID: "cat-wins", Value: 2000, Status: record.StatusApproved, CreatedAt: now.AddDate(0, 0, -40)},
		record.Record{ID: "r-monthly", UserID: "user-2", CategoryID: "cat-wins", Value: 1200, Status: record.StatusApproved, CreatedAt: now.AddDate(0, 0, -20)},
		record.Record{ID: "r-weekly", UserID: "user-3", CategoryID: "cat-wins", Value: 800, Status: record.StatusApproved, CreatedAt: now.AddDate(0, 0, -3)},
	)

	service := NewLeaderboardService(categories, records, profiles, nil)
	service.now = func() time.Time { return now }

	cases := []struct {
		window  TimeWindow
		wantIDs []string
	}{
		{WindowAllTime, []string{"r-ancient", "r-monthly", "r-weekly"}},
		{WindowMonthly, []string{"r-monthly", "r-weekly"}},
		{WindowWeekly, []string{"r-weekly"}},
	}
	for _, tc := range cases {
		got, err := service.GetLeaderboard(context.Background(), "cat-wins", tc.window)
		if err != nil {
			t.Fatalf("window %s: GetLeaderboard error: %v", tc.window, err)
		}
		if len(got) != len(tc.wantIDs) {
			t.Fatalf("window %s: expected %d entries, got %d", tc.window, len(tc.wantIDs), len(got))
		}
		for i, wantID := range tc.wantIDs {
			if got[i].RecordID != wantID {
				t.Fatalf("window %s entry %d: expected %s, got %s", tc.window, i, wantID, got[i].RecordID)
			}
		}
	}
}

func TestLeaderboardService_GetLeaderboard_PersonalBestIgnoresWindow(t *testing.T) {
	t.Parallel()

	categories, profiles := leaderboardFixtures()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// user-1's all-time best is outside the weekly window, so the weekly
	// entry must not be flagged as a personal best.
	records := newStubRecordRepository(
		record.Record{ID: "r-best", UserID: "user-1", CategoryID: "cat-speedrun", Value: 40, Status: record.StatusApproved, CreatedAt: now.AddDate(0, 0, -20)},
		record.Record{ID: "r-recent", UserID: "user-1", CategoryID: "cat-speedrun", Value: 45, Status: record.StatusApproved, CreatedAt: now.AddDate(0, 0, -2)},
		record.Record{ID: "r-other", UserID: "user-2", CategoryID: "cat-speedrun", Value: 50, Status: record.StatusApproved, CreatedAt: now.AddDate(0, 0, -1)},
	)

	service := NewLeaderboardService(categories, records, profiles, nil)
	service.now = func() time.Time { return now }

	got, err := service.GetLeaderboard(context.Background(), "cat-speedrun", WindowWeekly)
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].RecordID != "r-recent" || got[0].PersonalBest {
		t.Fatalf("expected r-recent without personal best flag, got %+v", got[0])
	}
	if got[1].RecordID != "r-other" || !got[1].PersonalBest {
		t.Fatalf("expected r-other flagged as personal best, got %+v", got[1])
	}
}

func TestLeaderboardService_GetLeaderboard_UnknownCategory(t *testing.T) {
	t.Parallel()

	categories, profiles := leaderboardFixtures()
	service := NewLeaderboardService(categories, newStubRecordRepository(), profiles, nil)

	if _, err := service.GetLeaderboard(context.Background(), "cat-missing", WindowAllTime); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetLeaderboard(context.Background(), "cat-speedrun", TimeWindow("yearly")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad window, got %v", err)
	}
}

// TestLeaderboardLifecycle walks a submission through moderation and checks
// the leaderboard only ever shows approved records.
func TestLeaderboardLifecycle(t *testing.T) {
	t.Parallel()

	categories, profiles := leaderboardFixtures()
	records := newStubRecordRepository()
	audit := &stubModerationLogRepository{}
	store := basecache.NewStore(time.Minute)
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	submissions := NewSubmissionService(categories, records, &stubIDGenerator{}, logging.NewNop())
	submissions.now = func() time.Time { return now }
	moderation := NewModerationService(records, profiles, audit, store, &stubIDGenerator{}, logging.NewNop())
	moderation.now = func() time.Time { return now.Add(time.Hour) }
	leaderboards := NewLeaderboardService(categories, records, profiles, store)
	leaderboards.now = func() time.Time { return now.Add(2 * time.Hour) }

	submitted, err := submissions.SubmitRecord(context.Background(), SubmitRecordInput{
		UserID:     "user-1",
		CategoryID: "cat-speedrun",
		Value:      42.5,
		ProofURL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	if err != nil {
		t.Fatalf("SubmitRecord error: %v", err)
	}

	got, err := leaderboards.GetLeaderboard(context.Background(), "cat-speedrun", WindowAllTime)
	if err != nil {
		t.Fatalf("GetLeaderboard error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("pending record must not rank, got %+v", got)
	}

	if _, err := moderation.ReviewRecord(context.Background(), submitted.ID, record.ActionApprove, "user-3", "verified frame by frame"); err != nil {
		t.Fatalf("ReviewRecord error: %v", err)
	}

	got, err = leaderboards.GetLeaderboard(context.Background(), "cat-speedrun", WindowAllTime)
	if err != nil {
		t.Fatalf("GetLeaderboard after approval error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry after approval, got %d", len(got))
	}
	entry := got[0]
	if entry.Rank != 1 || entry.Username != "EnderQueen" || entry.FormattedValue != "42.500s" || !entry.PersonalBest {
		t.Fatalf("unexpected leaderboard entry: %+v", entry)
	}
}
