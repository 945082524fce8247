package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/resilience"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient:     server.Client(),
		BaseURL:        server.URL,
		Timeout:        2 * time.Second,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClient_VideoAvailable_PublicVideo(t *testing.T) {
	t.Parallel()

	var gotPath atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Record Attempt","author_name":"EnderQueen","provider_name":"YouTube"}`))
	}, resilience.CircuitBreakerConfig{})

	available, err := client.VideoAvailable(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("VideoAvailable error: %v", err)
	}
	if !available {
		t.Fatal("expected video to be available")
	}

	path, _ := gotPath.Load().(string)
	want := "/oembed?format=json&url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3DdQw4w9WgXcQ"
	if path != want {
		t.Fatalf("unexpected request path:\nwant: %s\ngot:  %s", want, path)
	}
}

func TestClient_VideoAvailable_RemovedVideo(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}, resilience.CircuitBreakerConfig{})

	available, err := client.VideoAvailable(context.Background(), "AAAAAAAAAAA")
	if err != nil {
		t.Fatalf("VideoAvailable error: %v", err)
	}
	if available {
		t.Fatal("expected removed video to be unavailable")
	}
}

func TestClient_VideoAvailable_ServerErrorIsTransient(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}, resilience.CircuitBreakerConfig{})

	_, err := client.VideoAvailable(context.Background(), "dQw4w9WgXcQ")
	if err == nil {
		t.Fatal("expected error for persistent 5xx")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single call with zero retries, got %d", calls.Load())
	}
}

func TestClient_VideoAvailable_CircuitOpensAfterFailures(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		if _, err := client.VideoAvailable(context.Background(), "dQw4w9WgXcQ"); err == nil {
			t.Fatalf("attempt %d: expected error", i)
		}
	}

	_, err := client.VideoAvailable(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable once the circuit opened, got %v", err)
	}
}

func TestClient_VideoAvailable_EmptyID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected")
	}, resilience.CircuitBreakerConfig{})

	if _, err := client.VideoAvailable(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty video id")
	}
}
