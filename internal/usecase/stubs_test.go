package usecase

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/moderationlog"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
)

type stubGamemodeRepository struct {
	byID map[string]gamemode.Gamemode
}

func (s *stubGamemodeRepository) List(_ context.Context) ([]gamemode.Gamemode, error) {
	out := make([]gamemode.Gamemode, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubGamemodeRepository) GetByID(_ context.Context, gamemodeID string) (gamemode.Gamemode, bool, error) {
	item, ok := s.byID[gamemodeID]
	return item, ok, nil
}

func (s *stubGamemodeRepository) Create(_ context.Context, item gamemode.Gamemode) error {
	if s.byID == nil {
		s.byID = map[string]gamemode.Gamemode{}
	}
	s.byID[item.ID] = item
	return nil
}

func (s *stubGamemodeRepository) SetActive(_ context.Context, gamemodeID string, active bool) (gamemode.Gamemode, bool, error) {
	item, ok := s.byID[gamemodeID]
	if !ok {
		return gamemode.Gamemode{}, false, nil
	}
	item.IsActive = active
	s.byID[gamemodeID] = item
	return item, true, nil
}

type stubCategoryRepository struct {
	byID map[string]category.Category
}

func (s *stubCategoryRepository) ListByGamemode(_ context.Context, gamemodeID string) ([]category.Category, error) {
	out := make([]category.Category, 0, len(s.byID))
	for _, item := range s.byID {
		if item.GamemodeID == gamemodeID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubCategoryRepository) GetByID(_ context.Context, categoryID string) (category.Category, bool, error) {
	item, ok := s.byID[categoryID]
	return item, ok, nil
}

func (s *stubCategoryRepository) Create(_ context.Context, item category.Category) error {
	if s.byID == nil {
		s.byID = map[string]category.Category{}
	}
	s.byID[item.ID] = item
	return nil
}

func (s *stubCategoryRepository) SetActive(_ context.Context, categoryID string, active bool) (category.Category, bool, error) {
	item, ok := s.byID[categoryID]
	if !ok {
		return category.Category{}, false, nil
	}
	item.IsActive = active
	s.byID[categoryID] = item
	return item, true, nil
}

type stubProfileRepository struct {
	byID map[string]profile.Profile
}

func (s *stubProfileRepository) List(_ context.Context) ([]profile.Profile, error) {
	out := make([]profile.Profile, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubProfileRepository) GetByID(_ context.Context, profileID string) (profile.Profile, bool, error) {
	item, ok := s.byID[profileID]
	return item, ok, nil
}

func (s *stubProfileRepository) GetByIDs(_ context.Context, profileIDs []string) (map[string]profile.Profile, error) {
	out := make(map[string]profile.Profile, len(profileIDs))
	for _, id := range profileIDs {
		if item, ok := s.byID[id]; ok {
			out[id] = item
		}
	}
	return out, nil
}

func (s *stubProfileRepository) Create(_ context.Context, item profile.Profile) error {
	if s.byID == nil {
		s.byID = map[string]profile.Profile{}
	}
	s.byID[item.ID] = item
	return nil
}

func (s *stubProfileRepository) UpdateRole(_ context.Context, profileID string, role profile.Role) (profile.Profile, bool, error) {
	item, ok := s.byID[profileID]
	if !ok {
		return profile.Profile{}, false, nil
	}
	item.Role = role
	s.byID[profileID] = item
	return item, true, nil
}

// stubRecordRepository mirrors the compare-and-set contract of the real
// stores, including ErrStatusConflict on a second decision.
type stubRecordRepository struct {
	mu   sync.Mutex
	byID map[string]record.Record
}

func newStubRecordRepository(items ...record.Record) *stubRecordRepository {
	repo := &stubRecordRepository{byID: map[string]record.Record{}}
	for _, item := range items {
		repo.byID[item.ID] = item
	}
	return repo
}

func (s *stubRecordRepository) Create(_ context.Context, item record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[item.ID] = item
	return nil
}

func (s *stubRecordRepository) GetByID(_ context.Context, recordID string) (record.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.byID[recordID]
	return item, ok, nil
}

func (s *stubRecordRepository) ListByCategory(_ context.Context, categoryID string) ([]record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]record.Record, 0, len(s.byID))
	for _, item := range s.byID {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	sortRecordsByCreatedAt(out)
	return out, nil
}

func (s *stubRecordRepository) ListByStatus(_ context.Context, status record.Status) ([]record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]record.Record, 0, len(s.byID))
	for _, item := range s.byID {
		if item.Status == status {
			out = append(out, item)
		}
	}
	sortRecordsByCreatedAt(out)
	return out, nil
}

func (s *stubRecordRepository) ListByUser(_ context.Context, userID string) ([]record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]record.Record, 0, len(s.byID))
	for _, item := range s.byID {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sortRecordsByCreatedAt(out)
	return out, nil
}

func (s *stubRecordRepository) UpdateStatus(_ context.Context, recordID string, update record.StatusUpdate) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[recordID]
	if !ok {
		return record.Record{}, record.ErrNotFound
	}
	if item.Status != record.StatusPending {
		return record.Record{}, record.ErrStatusConflict
	}

	verifiedAt := update.VerifiedAt
	item.Status = update.Status
	item.VerifiedBy = update.VerifiedBy
	item.VerifiedAt = &verifiedAt
	item.ModeratorFeedback = update.Feedback
	s.byID[recordID] = item
	return item, nil
}

func sortRecordsByCreatedAt(items []record.Record) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

type stubModerationLogRepository struct {
	mu      sync.Mutex
	entries []moderationlog.Entry
}

func (s *stubModerationLogRepository) Append(_ context.Context, entry moderationlog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubModerationLogRepository) ListByRecord(_ context.Context, recordID string) ([]moderationlog.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]moderationlog.Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.RecordID == recordID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type stubIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (s *stubIDGenerator) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return "stub-id-" + strconv.Itoa(s.next), nil
}
