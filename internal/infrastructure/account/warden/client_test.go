package warden

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/resilience"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(cfg *ClientConfig)) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		HTTPClient:     server.Client(),
		BaseURL:        server.URL,
		IntrospectPath: "/v1/auth/introspect",
		AdminKey:       "test-admin-key",
		Logger:         logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewClient(cfg), server
}

func TestVerifyAccessToken_ActiveToken(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Errorf("path = %q, want /v1/auth/introspect", r.URL.Path)
		}
		if got := r.Header.Get("x-admin-key"); got != "test-admin-key" {
			t.Errorf("x-admin-key = %q, want test-admin-key", got)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"token":"session-token"`) {
			t.Errorf("body = %s, want token field", body)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"active":true,"user_id":"user-7","username":"EnderQueen","role":"moderator"}`)
	}, nil)

	principal, err := client.VerifyAccessToken(context.Background(), "session-token")
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if principal.UserID != "user-7" {
		t.Errorf("UserID = %q, want user-7", principal.UserID)
	}
	if principal.Username != "EnderQueen" {
		t.Errorf("Username = %q, want EnderQueen", principal.Username)
	}
	if principal.Role != profile.RoleModerator {
		t.Errorf("Role = %q, want moderator", principal.Role)
	}
}

func TestVerifyAccessToken_InactiveToken(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"active":false}`)
	}, nil)

	_, err := client.VerifyAccessToken(context.Background(), "revoked-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerifyAccessToken_DeniedStatus(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	_, err := client.VerifyAccessToken(context.Background(), "bogus-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, nil)

	_, err := client.VerifyAccessToken(context.Background(), "  ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if called {
		t.Error("introspection endpoint was called for an empty token")
	}
}

func TestVerifyAccessToken_CachesByTokenHash(t *testing.T) {
	t.Parallel()

	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		io.WriteString(w, `{"active":true,"user_id":"user-7","username":"EnderQueen","role":"player"}`)
	}, func(cfg *ClientConfig) {
		cfg.CacheTTL = time.Minute
	})

	for i := 0; i < 3; i++ {
		if _, err := client.VerifyAccessToken(context.Background(), "session-token"); err != nil {
			t.Fatalf("VerifyAccessToken: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("introspection calls = %d, want 1", calls)
	}
}

func TestVerifyAccessToken_CircuitOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		}
	})

	for i := 0; i < 2; i++ {
		if _, err := client.VerifyAccessToken(context.Background(), "session-token"); err == nil {
			t.Fatal("expected introspection failure")
		}
	}

	_, err := client.VerifyAccessToken(context.Background(), "session-token")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("err = %v, want ErrDependencyUnavailable", err)
	}
}

func TestVerifyAccessToken_DeniedDoesNotTripCircuit(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		}
	})

	for i := 0; i < 5; i++ {
		_, err := client.VerifyAccessToken(context.Background(), "forbidden-token")
		if !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("call %d: err = %v, want ErrUnauthorized", i, err)
		}
	}
}
