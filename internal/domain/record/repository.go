package record

import (
	"context"
	"errors"
	"time"
)

// Repository-level failures for the status compare-and-set. Use cases
// translate these into their own error taxonomy.
var (
	ErrNotFound       = errors.New("record not found")
	ErrStatusConflict = errors.New("record status already decided")
)

// StatusUpdate carries the verification fields that are set together by a
// single moderation decision.
type StatusUpdate struct {
	Status     Status
	VerifiedBy string
	Feedback   string
	VerifiedAt time.Time
}

// Repository describes record persistence needs from use cases. All list
// queries return results ordered by CreatedAt ascending; that ordering is a
// documented default, not an accident of storage order.
//
// UpdateStatus is an atomic compare-and-set against StatusPending: when two
// moderation decisions race, exactly one wins and the loser observes
// ErrStatusConflict.
type Repository interface {
	Create(ctx context.Context, item Record) error
	GetByID(ctx context.Context, recordID string) (Record, bool, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Record, error)
	ListByStatus(ctx context.Context, status Status) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	UpdateStatus(ctx context.Context, recordID string, update StatusUpdate) (Record, error)
}
