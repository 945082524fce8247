package memory

import (
	"context"
	"sync"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/moderationlog"
)

type ModerationLogRepository struct {
	mu      sync.RWMutex
	entries []moderationlog.Entry
}

func NewModerationLogRepository() *ModerationLogRepository {
	return &ModerationLogRepository{}
}

func (r *ModerationLogRepository) Append(_ context.Context, entry moderationlog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)

	return nil
}

func (r *ModerationLogRepository) ListByRecord(_ context.Context, recordID string) ([]moderationlog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]moderationlog.Entry, 0, 4)
	for _, entry := range r.entries {
		if entry.RecordID == recordID {
			out = append(out, entry)
		}
	}

	return out, nil
}
