package record

import (
	"errors"
	"testing"
)

func TestValidateProofURL(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"http://m.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?feature=shared&v=dQw4w9WgXcQ",
	}
	for _, raw := range valid {
		if err := ValidateProofURL(raw); err != nil {
			t.Errorf("ValidateProofURL(%q) = %v, want nil", raw, err)
		}
	}

	invalid := []string{
		"",
		"https://example.com/video",
		"https://vimeo.com/12345678",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/",
		"ftp://youtu.be/dQw4w9WgXcQ",
		"not a url at all",
	}
	for _, raw := range invalid {
		err := ValidateProofURL(raw)
		if !errors.Is(err, ErrInvalidProofURL) {
			t.Errorf("ValidateProofURL(%q) = %v, want ErrInvalidProofURL", raw, err)
		}
	}
}

func TestExtractVideoID(t *testing.T) {
	t.Parallel()

	id, ok := ExtractVideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30s")
	if !ok || id != "dQw4w9WgXcQ" {
		t.Fatalf("unexpected video id: %q ok=%t", id, ok)
	}

	if _, ok := ExtractVideoID("https://example.com/watch?v=x"); ok {
		t.Fatal("expected no video id for foreign url")
	}
}

func TestStatusTransitions(t *testing.T) {
	t.Parallel()

	terminals := []Status{StatusApproved, StatusRejected, StatusChangesRequested}
	for _, next := range terminals {
		if !StatusPending.CanTransitionTo(next) {
			t.Errorf("pending should transition to %s", next)
		}
	}

	for _, from := range terminals {
		for _, next := range append(terminals, StatusPending) {
			if from.CanTransitionTo(next) {
				t.Errorf("%s should not transition to %s", from, next)
			}
		}
	}
}

func TestReviewActionStatus(t *testing.T) {
	t.Parallel()

	pairs := map[ReviewAction]Status{
		ActionApprove:        StatusApproved,
		ActionReject:         StatusRejected,
		ActionRequestChanges: StatusChangesRequested,
	}
	for action, want := range pairs {
		if got := action.Status(); got != want {
			t.Errorf("%s.Status() = %s, want %s", action, got, want)
		}
	}

	if _, err := ParseReviewAction("escalate"); err == nil {
		t.Fatal("expected error for unknown action")
	}
}
