package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/pkg/logger"
)

// TimeoutTier selects the per-call HTTP deadline.
type TimeoutTier int

// Timeout tiers: cheap resolves, typical enrichment, long-running analysis.
const (
	TierResolve TimeoutTier = iota
	TierDefault
	TierAnalysis
)

// CallRequest describes one provider HTTP call.
type CallRequest struct {
	Provider string // provider name, matches config endpoints key
	Action   string // short action label for telemetry, e.g. "search_similar"
	Method   string
	Path     string // joined onto the provider base URL
	Query    map[string]string
	Body     interface{} // JSON-encoded when non-nil
	Tier     TimeoutTier
}

// CallResult carries the decoded provider response plus the attempt record
// the operation appends to its envelope. Attempt is always populated, even
// on failure, so telemetry is never lost.
type CallResult struct {
	Attempt domain.Attempt
	Decoded map[string]interface{}
}

// Client is the shared provider HTTP helper. One breaker per provider keeps
// a failing upstream from burning the whole batch; credentials come from
// config and a missing key yields a skipped attempt without any network I/O.
type Client struct {
	cfg      config.ProvidersConfig
	http     *http.Client
	metrics  *metrics.Metrics
	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewClient creates the provider client.
func NewClient(cfg config.ProvidersConfig, m *metrics.Metrics) *Client {
	return &Client{
		cfg:      cfg,
		http:     &http.Client{}, // per-call deadlines via context
		metrics:  m,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

func (c *Client) breaker(provider string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cb, ok := c.breakers[provider]; ok {
		return cb
	}
	maxFailures := c.cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openFor := c.cfg.BreakerOpenFor
	if openFor <= 0 {
		openFor = time.Minute
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    provider,
		Timeout: openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("provider breaker state change",
				zap.String("provider", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	c.breakers[provider] = cb
	return cb
}

func (c *Client) timeout(tier TimeoutTier) time.Duration {
	switch tier {
	case TierResolve:
		if c.cfg.ResolveTimeout > 0 {
			return c.cfg.ResolveTimeout
		}
		return 15 * time.Second
	case TierAnalysis:
		if c.cfg.AnalysisTimeout > 0 {
			return c.cfg.AnalysisTimeout
		}
		return 300 * time.Second
	default:
		if c.cfg.DefaultTimeout > 0 {
			return c.cfg.DefaultTimeout
		}
		return 30 * time.Second
	}
}

// Call executes one provider HTTP request. The returned error is non-nil
// only for fatal outcomes (timeout, transport error, HTTP >= 400, decode
// failure); the attempt inside the result records the outcome either way.
// A missing API key or an open breaker returns a skipped attempt and no
// error, so the operation can decide to continue with a fallback.
func (c *Client) Call(ctx context.Context, req CallRequest) (*CallResult, error) {
	attempt := domain.Attempt{Provider: req.Provider, Action: req.Action}

	endpoint, ok := c.cfg.Endpoint(req.Provider)
	if !ok || strings.TrimSpace(endpoint.APIKey) == "" {
		attempt.Status = domain.StatusSkipped
		attempt.SkipReason = "missing_api_key"
		c.count(req.Provider, attempt.Status)
		return &CallResult{Attempt: attempt}, nil
	}

	cb := c.breaker(req.Provider)
	if cb.State() == gobreaker.StateOpen {
		attempt.Status = domain.StatusSkipped
		attempt.SkipReason = "circuit_open"
		c.count(req.Provider, attempt.Status)
		return &CallResult{Attempt: attempt}, nil
	}

	start := time.Now()
	raw, err := cb.Execute(func() (interface{}, error) {
		return c.do(ctx, endpoint, req)
	})
	attempt.DurationMS = time.Since(start).Milliseconds()

	if err != nil {
		attempt.Status = domain.StatusFailed
		var httpErr *httpStatusError
		switch {
		case errors.As(err, &httpErr):
			attempt.HTTPStatus = httpErr.status
			attempt.Error = httpErr.Error()
		case errors.Is(err, context.DeadlineExceeded):
			attempt.Error = "timeout"
		case errors.Is(err, gobreaker.ErrOpenState):
			attempt.Status = domain.StatusSkipped
			attempt.SkipReason = "circuit_open"
			c.count(req.Provider, attempt.Status)
			return &CallResult{Attempt: attempt}, nil
		default:
			attempt.Error = err.Error()
		}
		c.count(req.Provider, attempt.Status)
		return &CallResult{Attempt: attempt}, err
	}

	resp := raw.(*httpResponse)
	attempt.HTTPStatus = resp.status
	attempt.RawResponse = resp.decoded
	if resp.empty {
		attempt.Status = domain.StatusNotFound
	} else {
		attempt.Status = domain.StatusFound
	}
	c.count(req.Provider, attempt.Status)
	return &CallResult{Attempt: attempt, Decoded: resp.decoded}, nil
}

type httpResponse struct {
	status  int
	decoded map[string]interface{}
	empty   bool
}

type httpStatusError struct {
	status int
	body   string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("provider returned HTTP %d: %s", e.status, e.body)
}

func (c *Client) do(ctx context.Context, endpoint config.ProviderEndpoint, req CallRequest) (*httpResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout(req.Tier))
	defer cancel()

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	url := strings.TrimSuffix(endpoint.BaseURL, "/") + "/" + strings.TrimPrefix(req.Path, "/")
	httpReq, err := http.NewRequestWithContext(callCtx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+endpoint.APIKey)
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return nil, context.DeadlineExceeded
		}
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &httpStatusError{status: resp.StatusCode, body: truncate(string(payload), 512)}
	}

	decoded := map[string]interface{}{}
	if len(bytes.TrimSpace(payload)) > 0 {
		if err := json.Unmarshal(payload, &decoded); err != nil {
			return nil, fmt.Errorf("decode response body: %w", err)
		}
	}
	return &httpResponse{
		status:  resp.StatusCode,
		decoded: decoded,
		empty:   responseEmpty(decoded),
	}, nil
}

// responseEmpty treats a body with no records as not_found. Providers in
// the corpus signal emptiness either with an empty object or an empty
// top-level collection.
func responseEmpty(decoded map[string]interface{}) bool {
	if len(decoded) == 0 {
		return true
	}
	for _, key := range []string{"results", "data", "records", "items"} {
		if raw, ok := decoded[key]; ok {
			if items, ok := raw.([]interface{}); ok {
				return len(items) == 0
			}
		}
	}
	return false
}

func (c *Client) count(provider string, status domain.ResultStatus) {
	if c.metrics != nil {
		c.metrics.ProviderAttempts.WithLabelValues(provider, string(status)).Inc()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
