package moderationlog

import "time"

// Entry is one append-only audit line for a moderation decision.
type Entry struct {
	ID          string
	ModeratorID string
	RecordID    string
	Action      string
	Notes       string
	CreatedAt   time.Time
}
