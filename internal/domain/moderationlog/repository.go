package moderationlog

import "context"

// Repository is the append-only audit trail. Entries are never updated or
// deleted.
type Repository interface {
	Append(ctx context.Context, entry Entry) error
	ListByRecord(ctx context.Context, recordID string) ([]Entry, error)
}
