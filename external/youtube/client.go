package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/lifeboat-community/leaderboard-api/internal/platform/logging"
	"github.com/lifeboat-community/leaderboard-api/internal/platform/resilience"
	"github.com/lifeboat-community/leaderboard-api/internal/usecase"
)

const defaultBaseURL = "https://www.youtube.com"

var errYouTubeTransient = crerr.New("youtube transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client checks proof videos against YouTube's oEmbed endpoint. oEmbed
// answers 200 for a public video and a 4xx for deleted, private, or
// embed-restricted ones, which is exactly the distinction the proof sweep
// needs without an API key.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) VideoAvailable(ctx context.Context, videoID string) (bool, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return false, fmt.Errorf("video id is required")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "youtube circuit breaker rejected request", "state", c.breaker.State())
			return false, fmt.Errorf("%w: video host is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.oembedURL(videoID)

	out, err, _ := c.flight.Do(videoID, func() (any, error) {
		available, reqErr := c.executeCheck(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errYouTubeTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return available, reqErr
	})
	if err != nil {
		return false, err
	}

	available, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected response payload type %T", out)
	}

	return available, nil
}

func (c *Client) executeCheck(ctx context.Context, fullURL string) (bool, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return false, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errYouTubeTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			_ = resp.Body.Close()

			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errYouTubeTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				var payload oembedResponse
				if err := sonic.Unmarshal(raw, &payload); err != nil {
					return false, fmt.Errorf("decode oembed payload: %w", err)
				}
				return true, nil
			case resp.StatusCode >= 400 && resp.StatusCode < 500:
				// Deleted, private, or embedding disabled.
				return false, nil
			default:
				lastErr = crerr.Wrapf(errYouTubeTransient, "oembed status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("oembed request failed")
	}
	c.logger.WarnContext(ctx, "youtube oembed request failed", "url", fullURL, "error", lastErr)
	return false, lastErr
}

func (c *Client) oembedURL(videoID string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString("/oembed?format=json&url=")
	_, _ = buf.WriteString(url.QueryEscape("https://www.youtube.com/watch?v=" + videoID))

	return buf.String()
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ProviderName string `json:"provider_name"`
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
