// Package feeds fetches the two upstream feeds behind the schedule page: the
// published spreadsheet export and the live-match API.
package feeds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/logging"
	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/resilience"
	"github.com/riskibarqy/jadwal-pertandingan/internal/usecase"
)

const (
	DefaultScheduleURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQoqUMApbGKBfLJOIE1jztwA5bOsiQuCx5LzexE8ip7jJK_Ue6Kkx7bqTOu8jLKUlw0sc6-zLg2kOmA/pub?gid=0&single=true&output=csv"
	DefaultLiveURL     = "https://idlive.falou.net/live/list"

	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = time.Second
	defaultMaxBodyBytes = 4 << 20
)

var (
	errFeedTransient = crerr.New("feed transient failure")
	errBodyTooLarge  = crerr.New("feed response body too large")
)

var feedTracer = otel.Tracer("jadwal-pertandingan/external/feeds")

type Config struct {
	Name           string
	URL            string
	Accept         string
	HTTPClient     *http.Client
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	MaxBodyBytes   int64
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// Client performs a GET against one feed URL and returns the raw body.
// Concurrent callers share one in-flight request.
type Client struct {
	name         string
	url          string
	accept       string
	httpClient   *http.Client
	maxRetries   int
	retryBackoff time.Duration
	loadTimeout  time.Duration
	maxBodyBytes int64
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       singleflight.Group
}

func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "feed"
	}

	return &Client{
		name:         name,
		url:          strings.TrimSpace(cfg.URL),
		accept:       cfg.Accept,
		httpClient:   httpClient,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: retryBackoff,
		loadTimeout:  loadTimeout(timeout, max(cfg.MaxRetries, 0), retryBackoff),
		maxBodyBytes: maxBody,
		logger:       logger.With("feed", name),
		breaker:      cfg.CircuitBreaker.Build(),
	}
}

// NewScheduleClient fetches the spreadsheet CSV export.
func NewScheduleClient(cfg Config) *Client {
	if cfg.Name == "" {
		cfg.Name = "schedule"
	}
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = DefaultScheduleURL
	}
	if cfg.Accept == "" {
		cfg.Accept = "text/csv"
	}
	return NewClient(cfg)
}

// NewLiveClient fetches the live-match JSON list.
func NewLiveClient(cfg Config) *Client {
	if cfg.Name == "" {
		cfg.Name = "live"
	}
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = DefaultLiveURL
	}
	if cfg.Accept == "" {
		cfg.Accept = "application/json"
	}
	return NewClient(cfg)
}

func (c *Client) Name() string {
	return c.name
}

// FetchRaw returns the feed body. The shared request runs detached from any single
// caller's cancellation; a caller that gives up stops waiting without failing the others.
func (c *Client) FetchRaw(ctx context.Context) ([]byte, error) {
	ctx, span := feedTracer.Start(ctx, "feeds.Client.FetchRaw")
	defer span.End()
	span.SetAttributes(attribute.String("feed.name", c.name))

	results := c.flight.DoChan(c.url, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(loadCtx)
			return reqErr
		}, isCircuitFailure)
		return raw, execErr
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return nil, fmt.Errorf("%w: fetch %s feed: %w", usecase.ErrDependencyUnavailable, c.name, ctx.Err())
	case res = <-results:
	}
	span.SetAttributes(attribute.Bool("feed.shared", res.Shared))

	if err := res.Err; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "feed circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %s feed is temporarily unavailable", usecase.ErrDependencyUnavailable, c.name)
		}
		return nil, fmt.Errorf("%w: fetch %s feed: %w", usecase.ErrDependencyUnavailable, c.name, err)
	}

	raw, ok := res.Val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected feed payload type %T", res.Val)
	}
	span.SetAttributes(attribute.Int("feed.bytes", len(raw)))
	return raw, nil
}

// loadTimeout bounds one shared load: every attempt plus the backoff between them.
func loadTimeout(timeout time.Duration, retries int, backoff time.Duration) time.Duration {
	total := timeout * time.Duration(retries+1)
	for attempt := 1; attempt <= retries; attempt++ {
		total += time.Duration(attempt) * backoff
	}
	return total
}

func (c *Client) executeRequest(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		if c.accept != "" {
			req.Header.Set("Accept", c.accept)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errFeedTransient, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errFeedTransient, "read response body: %v", readErr)
			case int64(len(raw)) > c.maxBodyBytes:
				c.logger.WarnContext(ctx, "feed response exceeds size limit", "limit_bytes", c.maxBodyBytes)
				return nil, crerr.Wrapf(errBodyTooLarge, "limit %d bytes", c.maxBodyBytes)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errFeedTransient, "upstream status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			default:
				lastErr = crerr.Newf("upstream status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				c.logger.WarnContext(ctx, "feed request rejected", "status", resp.StatusCode)
				return nil, lastErr
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("feed request failed")
	}
	c.logger.WarnContext(ctx, "feed request failed", "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errFeedTransient) || errors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
