package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
)

type RecordRepository struct {
	mu    sync.RWMutex
	items map[string]record.Record
}

func NewRecordRepository(records []record.Record) *RecordRepository {
	items := make(map[string]record.Record, len(records))
	for _, r := range records {
		items[r.ID] = r
	}

	return &RecordRepository{items: items}
}

func (r *RecordRepository) Create(_ context.Context, item record.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item

	return nil
}

func (r *RecordRepository) GetByID(_ context.Context, recordID string) (record.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[recordID]
	if !ok {
		return record.Record{}, false, nil
	}

	return item, true, nil
}

func (r *RecordRepository) ListByCategory(_ context.Context, categoryID string) ([]record.Record, error) {
	return r.list(func(item record.Record) bool { return item.CategoryID == categoryID }), nil
}

func (r *RecordRepository) ListByStatus(_ context.Context, status record.Status) ([]record.Record, error) {
	return r.list(func(item record.Record) bool { return item.Status == status }), nil
}

func (r *RecordRepository) ListByUser(_ context.Context, userID string) ([]record.Record, error) {
	return r.list(func(item record.Record) bool { return item.UserID == userID }), nil
}

// UpdateStatus is the compare-and-set against pending. The whole operation
// runs under the write lock, so concurrent decisions serialize and the loser
// observes ErrStatusConflict.
func (r *RecordRepository) UpdateStatus(_ context.Context, recordID string, update record.StatusUpdate) (record.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[recordID]
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
	r.items[recordID] = item

	return item, nil
}

func (r *RecordRepository) list(match func(record.Record) bool) []record.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]record.Record, 0, len(r.items))
	for _, item := range r.items {
		if match(item) {
			out = append(out, item)
		}
	}

	// List queries promise createdAt ascending regardless of map order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}
