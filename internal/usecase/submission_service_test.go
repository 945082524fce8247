package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
)

func TestSubmissionService_SubmitRecord_EntersQueueAsPending(t *testing.T) {
	t.Parallel()

	categories := &stubCategoryRepository{
		byID: map[string]category.Category{
			"cat-solo-speedrun": {
				ID:         "cat-solo-speedrun",
				GamemodeID: "gm-skywars",
				Name:       "Solo Speedrun",
				MetricType: category.MetricTime,
				IsActive:   true,
			},
		},
	}
	records := newStubRecordRepository()
	submittedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	service := NewSubmissionService(categories, records, &stubIDGenerator{}, logging.NewNop())
	service.now = func() time.Time { return submittedAt }

	got, err := service.SubmitRecord(context.Background(), SubmitRecordInput{
		UserID:     "user-1",
		CategoryID: "cat-solo-speedrun",
		Value:      42.5,
		ProofURL:   "https://youtu.be/dQw4w9WgXcQ",
		Notes:      "  clean run  ",
	})
	if err != nil {
		t.Fatalf("SubmitRecord error: %v", err)
	}

	if got.Status != record.StatusPending {
		t.Fatalf("expected pending status, got %s", got.Status)
	}
	if !got.CreatedAt.Equal(submittedAt) {
		t.Fatalf("expected createdAt %v, got %v", submittedAt, got.CreatedAt)
	}
	if got.VerifiedBy != "" || got.VerifiedAt != nil || got.ModeratorFeedback != "" {
		t.Fatalf("submitter must not pre-set verification fields: %+v", got)
	}
	if got.Notes != "clean run" {
		t.Fatalf("expected trimmed notes, got %q", got.Notes)
	}

	stored, exists, err := records.GetByID(context.Background(), got.ID)
	if err != nil || !exists {
		t.Fatalf("expected record persisted, exists=%v err=%v", exists, err)
	}
	if stored.Value != 42.5 {
		t.Fatalf("expected stored value 42.5, got %v", stored.Value)
	}
}

func TestSubmissionService_SubmitRecord_RejectsBadProofURL(t *testing.T) {
	t.Parallel()

	categories := &stubCategoryRepository{
		byID: map[string]category.Category{
			"cat-1": {ID: "cat-1", GamemodeID: "gm-1", Name: "Wins", MetricType: category.MetricCount, IsActive: true},
		},
	}
	service := NewSubmissionService(categories, newStubRecordRepository(), &stubIDGenerator{}, logging.NewNop())

	for _, proofURL := range []string{
		"",
		"https://example.com/video",
		"https://youtube.com/watch?v=short",
		"ftp://youtube.com/watch?v=dQw4w9WgXcQ",
	} {
		_, err := service.SubmitRecord(context.Background(), SubmitRecordInput{
			UserID:     "user-1",
			CategoryID: "cat-1",
			Value:      10,
			ProofURL:   proofURL,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("proofURL=%q: expected ErrInvalidInput, got %v", proofURL, err)
		}
	}
}

func TestSubmissionService_SubmitRecord_RejectsClosedCategory(t *testing.T) {
	t.Parallel()

	categories := &stubCategoryRepository{
		byID: map[string]category.Category{
			"cat-retired": {ID: "cat-retired", GamemodeID: "gm-1", Name: "Retired", MetricType: category.MetricScore, IsActive: false},
		},
	}
	service := NewSubmissionService(categories, newStubRecordRepository(), &stubIDGenerator{}, logging.NewNop())

	for _, categoryID := range []string{"cat-retired", "cat-missing"} {
		_, err := service.SubmitRecord(context.Background(), SubmitRecordInput{
			UserID:     "user-1",
			CategoryID: categoryID,
			Value:      100,
			ProofURL:   "https://youtu.be/dQw4w9WgXcQ",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("categoryID=%q: expected ErrInvalidInput, got %v", categoryID, err)
		}
	}
}

func TestSubmissionService_SubmitRecord_RejectsNonFiniteValue(t *testing.T) {
	t.Parallel()

	categories := &stubCategoryRepository{
		byID: map[string]category.Category{
			"cat-1": {ID: "cat-1", GamemodeID: "gm-1", Name: "Wins", MetricType: category.MetricCount, IsActive: true},
		},
	}
	service := NewSubmissionService(categories, newStubRecordRepository(), &stubIDGenerator{}, logging.NewNop())

	nan := 0.0
	nan = nan / nan
	_, err := service.SubmitRecord(context.Background(), SubmitRecordInput{
		UserID:     "user-1",
		CategoryID: "cat-1",
		Value:      nan,
		ProofURL:   "https://youtu.be/dQw4w9WgXcQ",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for NaN value, got %v", err)
	}
}

func TestSubmissionService_ListUserSubmissions_OldestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	records := newStubRecordRepository(
		record.Record{ID: "r-new", UserID: "user-1", CategoryID: "cat-1", Status: record.StatusPending, CreatedAt: base.Add(2 * time.Hour)},
		record.Record{ID: "r-old", UserID: "user-1", CategoryID: "cat-1", Status: record.StatusApproved, CreatedAt: base},
		record.Record{ID: "r-other", UserID: "user-2", CategoryID: "cat-1", Status: record.StatusPending, CreatedAt: base.Add(time.Hour)},
	)

	service := NewSubmissionService(&stubCategoryRepository{}, records, &stubIDGenerator{}, logging.NewNop())

	got, err := service.ListUserSubmissions(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListUserSubmissions error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r-old" || got[1].ID != "r-new" {
		t.Fatalf("expected [r-old r-new], got %+v", got)
	}
}
