package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/infrastructure/repository/memory"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/cache"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/id"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

// tokenVerifier resolves bearer tokens to seeded principals without an
// account service round trip.
type tokenVerifier struct {
	principals map[string]profile.Principal
}

func (v *tokenVerifier) VerifyAccessToken(_ context.Context, token string) (profile.Principal, error) {
	principal, ok := v.principals[token]
	if !ok {
		return profile.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return principal, nil
}

func seededVerifier() *tokenVerifier {
	return &tokenVerifier{principals: map[string]profile.Principal{
		"player-token":    {UserID: "seed-player-ender", Username: "EnderQueen", Role: profile.RolePlayer},
		"moderator-token": {UserID: memory.ProfileIDModerator, Username: "VODWatcher", Role: profile.RoleModerator},
		"admin-token":     {UserID: memory.ProfileIDAdmin, Username: "HarborMaster", Role: profile.RoleAdmin},
	}}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	gamemodeRepo := memory.NewGamemodeRepository(memory.SeedGamemodes())
	categoryRepo := memory.NewCategoryRepository(memory.SeedCategories())
	profileRepo := memory.NewProfileRepository(memory.SeedProfiles())
	recordRepo := memory.NewRecordRepository(memory.SeedRecords())
	auditRepo := memory.NewModerationLogRepository()

	store := cache.NewStore(time.Minute)
	idGen := id.NewRandomGenerator()
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewCatalogService(gamemodeRepo, categoryRepo),
		usecase.NewLeaderboardService(categoryRepo, recordRepo, profileRepo, store),
		usecase.NewSubmissionService(categoryRepo, recordRepo, idGen, logger),
		usecase.NewModerationService(recordRepo, profileRepo, auditRepo, store, idGen, logger),
		usecase.NewAdminService(gamemodeRepo, categoryRepo, profileRepo, store, idGen, logger),
		nil,
		logger,
	)

	verifier := seededVerifier()
	return NewRouter(handler, verifier, logger, []string{"*"}, "job-secret")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_PublicCatalogAndLeaderboard(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/gamemodes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected seeded gamemodes, got %v", body["data"])
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/categories/"+memory.CategoryIDSkyWarsSpeedrun+"/leaderboard?window=all-time", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body = decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected leaderboard object, got %v", body["data"])
	}
	entries, ok := data["entries"].([]any)
	if !ok || len(entries) == 0 {
		t.Fatalf("expected seeded leaderboard entries, got %v", data["entries"])
	}
	first, _ := entries[0].(map[string]any)
	if got, _ := first["rank"].(float64); got != 1 {
		t.Fatalf("expected first entry rank 1, got %v", first["rank"])
	}
}

func TestRouter_LeaderboardUnknownWindow(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/categories/"+memory.CategoryIDSkyWarsSpeedrun+"/leaderboard?window=yearly", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_SubmitRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_SubmitRejectsNonPositiveValue(t *testing.T) {
	router := newTestRouter(t)

	for _, value := range []string{"0", "-12.5"} {
		payload := `{"categoryId":"` + memory.CategoryIDSkyWarsSpeedrun + `","value":` + value + `,"proofUrl":"https://youtu.be/dQw4w9WgXcQ"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader(payload))
		req.Header.Set("Authorization", "Bearer player-token")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for value %s, got %d: %s", value, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_SubmitAndModerateFlow(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"categoryId":"` + memory.CategoryIDSkyWarsSpeedrun + `","value":42.5,"proofUrl":"https://youtu.be/dQw4w9WgXcQ","notes":"clean run"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/records", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer player-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	created, _ := body["data"].(map[string]any)
	recordID, _ := created["id"].(string)
	if recordID == "" {
		t.Fatalf("expected created record id, got %v", body["data"])
	}
	if got, _ := created["status"].(string); got != "pending" {
		t.Fatalf("expected pending status, got %v", created["status"])
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/moderation/queue", nil)
	req.Header.Set("Authorization", "Bearer moderator-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	review := `{"action":"approve","feedback":"verified against the VOD"}`
	req = httptest.NewRequest(http.MethodPost, "/v1/moderation/records/"+recordID+"/review", strings.NewReader(review))
	req.Header.Set("Authorization", "Bearer moderator-token")
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body = decodeEnvelope(t, rec)
	reviewed, _ := body["data"].(map[string]any)
	if got, _ := reviewed["status"].(string); got != "approved" {
		t.Fatalf("expected approved status, got %v", reviewed["status"])
	}

	// A second decision on the same record conflicts.
	req = httptest.NewRequest(http.MethodPost, "/v1/moderation/records/"+recordID+"/review", strings.NewReader(`{"action":"reject","feedback":"late"}`))
	req.Header.Set("Authorization", "Bearer moderator-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestRouter_ModerationQueueForbiddenForPlayers(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/moderation/queue", nil)
	req.Header.Set("Authorization", "Bearer player-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestRouter_InternalJobTokenGate(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/proof-sweep", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
