package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"cityweather.app/internal/ports"
	"cityweather.app/pkg/errors"
	"github.com/sony/gobreaker"
)

// Upstream sources, each guarded by its own circuit breaker
const (
	SourceGeocoding  = "geocoding"
	SourceForecast   = "forecast"
	SourceWikipedia  = "wikipedia"
	SourceWikivoyage = "wikivoyage"
	SourceNews       = "news"
	SourceVideo      = "video"
)

const (
	defaultUserAgent = "cityweather/1.0 (+https://github.com/cityweather)"
	maxBodyBytes     = 4 << 20
)

var errServerStatus = stderrors.New("upstream server error")

// UpstreamClientConfig configures the shared outbound HTTP client
type UpstreamClientConfig struct {
	HTTPTimeout        time.Duration
	BrowserUserAgent   string
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// UpstreamResponse is a fully read upstream response
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status
func (r *UpstreamResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RequestOption adjusts an outbound request
type RequestOption func(req *http.Request, browserUA string)

// WithBrowserUserAgent sends the configured browser-like User-Agent
func WithBrowserUserAgent() RequestOption {
	return func(req *http.Request, browserUA string) {
		req.Header.Set("User-Agent", browserUA)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	}
}

// WithAccept sets the Accept header
func WithAccept(accept string) RequestOption {
	return func(req *http.Request, _ string) {
		req.Header.Set("Accept", accept)
	}
}

// UpstreamClient performs GET requests against the public APIs. Transport
// failures and 5xx responses count against the source's breaker; there are no retries.
type UpstreamClient struct {
	httpClient *http.Client
	config     UpstreamClientConfig
	metrics    ports.MetricsCollector
	callLogger ports.Logger

	mutex    sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewUpstreamClient creates the client. callLogger may be nil to disable call logging.
func NewUpstreamClient(cfg UpstreamClientConfig, metrics ports.MetricsCollector, callLogger ports.Logger) (*UpstreamClient, error) {
	if metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, errors.NewConfigurationError("upstream HTTP timeout must be positive", nil)
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = 5
	}

	c := &UpstreamClient{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		config:     cfg,
		metrics:    metrics,
		callLogger: callLogger,
		breakers:   make(map[string]*gobreaker.CircuitBreaker),
	}

	for _, source := range []string{SourceGeocoding, SourceForecast, SourceWikipedia, SourceWikivoyage, SourceNews, SourceVideo} {
		c.breaker(source)
	}

	return c, nil
}

func (c *UpstreamClient) breaker(source string) *gobreaker.CircuitBreaker {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if cb, ok := c.breakers[source]; ok {
		return cb
	}

	maxFailures := c.config.BreakerMaxFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        source,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     c.config.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.metrics.RecordBreakerState(name, to.String())
			if c.callLogger != nil {
				c.callLogger.Warn("Upstream circuit breaker state changed",
					ports.F("source", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})
	c.breakers[source] = cb
	c.metrics.RecordBreakerState(source, cb.State().String())
	return cb
}

// Get fetches rawURL on behalf of source. Any status code is returned as a
// response; only transport failures and open breakers produce an error.
func (c *UpstreamClient) Get(ctx context.Context, source, rawURL string, opts ...RequestOption) (*UpstreamResponse, error) {
	start := time.Now()

	result, err := c.breaker(source).Execute(func() (interface{}, error) {
		resp, err := c.send(ctx, rawURL, opts)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})
	duration := time.Since(start)

	if err != nil && !stderrors.Is(err, errServerStatus) {
		outcome := ports.OutcomeError
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = ports.OutcomeRejected
		}
		c.metrics.RecordUpstreamCall(source, outcome, duration)
		c.logCall(source, rawURL, 0, outcome, duration, err)
		return nil, errors.NewExternalAPIError(fmt.Sprintf("%s request failed", source), err)
	}

	resp := result.(*UpstreamResponse)
	outcome := ports.OutcomeSuccess
	switch {
	case resp.StatusCode == http.StatusNotFound:
		outcome = ports.OutcomeNotFound
	case !resp.OK():
		outcome = ports.OutcomeError
	}
	c.metrics.RecordUpstreamCall(source, outcome, duration)
	c.logCall(source, rawURL, resp.StatusCode, outcome, duration, nil)

	return resp, nil
}

func (c *UpstreamClient) send(ctx context.Context, rawURL string, opts []RequestOption) (*UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	for _, opt := range opts {
		opt(req, c.config.BrowserUserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && c.callLogger != nil {
			c.callLogger.Warn("Failed to close upstream response body", ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &UpstreamResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *UpstreamClient) logCall(source, rawURL string, status int, outcome string, duration time.Duration, err error) {
	if c.callLogger == nil {
		return
	}

	fields := []ports.Field{
		ports.F("source", source),
		ports.F("url", rawURL),
		ports.F("status", status),
		ports.F("outcome", outcome),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if err != nil {
		fields = append(fields, ports.F("error", err.Error()))
		c.callLogger.Warn("Upstream call failed", fields...)
		return
	}
	c.callLogger.Info("Upstream call", fields...)
}

// BreakerStates returns the breaker state of every known source
func (c *UpstreamClient) BreakerStates() map[string]string {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	states := make(map[string]string, len(c.breakers))
	for source, cb := range c.breakers {
		states[source] = cb.State().String()
	}
	return states
}

// Sources returns the known source names in sorted order
func (c *UpstreamClient) Sources() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	sources := make([]string, 0, len(c.breakers))
	for source := range c.breakers {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}
