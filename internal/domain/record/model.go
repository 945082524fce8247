package record

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Status is the verification state of a submission. pending is the only
// non-terminal state: a moderation decision moves a record to approved,
// rejected or changes_requested and nothing moves it back. Resubmission after
// changes_requested is a brand-new record, never a reopening.
type Status string

const (
	StatusPending          Status = "pending"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusChangesRequested Status = "changes_requested"
)

func ParseStatus(v string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(v))) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	case StatusChangesRequested:
		return StatusChangesRequested, nil
	default:
		return "", fmt.Errorf("invalid status %q", v)
	}
}

func (s Status) Terminal() bool {
	return s != StatusPending
}

// CanTransitionTo reports whether the verification state machine permits the
// move. Only pending records may be decided.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected || next == StatusChangesRequested
}

// ReviewAction is a moderation decision; each maps 1:1 to a terminal status.
type ReviewAction string

const (
	ActionApprove        ReviewAction = "approve"
	ActionReject         ReviewAction = "reject"
	ActionRequestChanges ReviewAction = "request_changes"
)

func ParseReviewAction(v string) (ReviewAction, error) {
	switch ReviewAction(strings.ToLower(strings.TrimSpace(v))) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	case ActionRequestChanges:
		return ActionRequestChanges, nil
	default:
		return "", fmt.Errorf("invalid review action %q: valid values are %s, %s, %s", v, ActionApprove, ActionReject, ActionRequestChanges)
	}
}

func (a ReviewAction) Status() Status {
	switch a {
	case ActionApprove:
		return StatusApproved
	case ActionReject:
		return StatusRejected
	case ActionRequestChanges:
		return StatusChangesRequested
	default:
		return ""
	}
}

// Record is a submitted performance claim. UserID, CategoryID and Value are
// immutable after creation; the verification fields are set together by a
// single moderation decision.
type Record struct {
	ID                string
	UserID            string
	CategoryID        string
	Value             float64
	ProofURL          string
	Status            Status
	Notes             string
	ModeratorFeedback string
	VerifiedBy        string
	VerifiedAt        *time.Time
	CreatedAt         time.Time
}

func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record id is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("record user id is required")
	}
	if r.CategoryID == "" {
		return fmt.Errorf("record category id is required")
	}
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return fmt.Errorf("record value must be a finite number")
	}
	if _, err := ParseStatus(string(r.Status)); err != nil {
		return err
	}

	return nil
}
