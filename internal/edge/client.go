// Package edge provides the client for the four AI edge-function endpoints
// (/extract, /caption, /mealplan, /scan). It applies a uniform retry and
// timeout policy and hands successful bodies to the normalizer, so callers
// only ever see domain values or a *domain.RequestError.
package edge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hazemq/souschef/internal/domain"
	"github.com/hazemq/souschef/internal/normalize"
)

// Endpoint identifies one of the AI edge functions.
type Endpoint int

const (
	EndpointExtract Endpoint = iota
	EndpointCaption
	EndpointMealPlan
	EndpointScan
)

// Path returns the endpoint's URL path.
func (e Endpoint) Path() string {
	switch e {
	case EndpointExtract:
		return "/extract"
	case EndpointCaption:
		return "/caption"
	case EndpointMealPlan:
		return "/mealplan"
	case EndpointScan:
		return "/scan"
	default:
		return "/unknown"
	}
}

// String returns the endpoint name without the leading slash.
func (e Endpoint) String() string { return e.Path()[1:] }

// Default per-endpoint timeouts. Extraction and meal planning invoke
// heavier pipelines server-side.
const (
	heavyTimeout = 30 * time.Second
	lightTimeout = 10 * time.Second
)

// Retry policy: transient failures are retried with exponential backoff.
const (
	defaultMaxAttempts = 3
	defaultBackoffBase = 500 * time.Millisecond
)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient injects the HTTP client, e.g. one carrying auth.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithTimeout overrides the per-call timeout for one endpoint.
func WithTimeout(e Endpoint, d time.Duration) ClientOption {
	return func(c *Client) { c.timeouts[e] = d }
}

// WithMaxAttempts overrides the total attempt cap for transient failures.
func WithMaxAttempts(n int) ClientOption {
	return func(c *Client) { c.maxAttempts = n }
}

// WithBackoffBase overrides the first retry delay.
func WithBackoffBase(d time.Duration) ClientOption {
	return func(c *Client) { c.backoffBase = d }
}

// Client talks to the AI edge functions. All methods are safe for
// concurrent use; calls to different endpoints are fully independent.
// Within one endpoint, a newer call supersedes the previous in-flight one:
// the earlier call's context is cancelled and its result is discarded
// (last-request-wins).
type Client struct {
	baseURL     string
	apiKey      string
	http        *http.Client
	log         *zap.SugaredLogger
	timeouts    map[Endpoint]time.Duration
	maxAttempts int
	backoffBase time.Duration

	mu      sync.Mutex
	seq     map[Endpoint]uint64
	cancels map[Endpoint]context.CancelFunc
}

// NewClient creates an edge client. baseURL is the deployment's edge
// function root (no trailing slash); apiKey may be empty for anonymous
// deployments.
func NewClient(baseURL, apiKey string, log *zap.SugaredLogger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
		log:     log,
		timeouts: map[Endpoint]time.Duration{
			EndpointExtract:  heavyTimeout,
			EndpointMealPlan: heavyTimeout,
			EndpointCaption:  lightTimeout,
			EndpointScan:     lightTimeout,
		},
		maxAttempts: defaultMaxAttempts,
		backoffBase: defaultBackoffBase,
		seq:         make(map[Endpoint]uint64),
		cancels:     make(map[Endpoint]context.CancelFunc),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Extract asks /extract to turn a recipe link into a Recipe.
func (c *Client) Extract(ctx context.Context, url string) (*domain.Recipe, error) {
	body, err := c.call(ctx, EndpointExtract, extractRequest{URL: url})
	if err != nil {
		return nil, err
	}
	r, nerr := normalize.Extract(body.raw)
	if nerr != nil {
		return nil, body.invalid(nerr)
	}
	src := url
	r.SourceURL = &src
	return r, nil
}

// Caption asks /caption to describe a photo. image is a URI or encoded data.
func (c *Client) Caption(ctx context.Context, image string) (*domain.Caption, error) {
	body, err := c.call(ctx, EndpointCaption, imageRequest{Image: image})
	if err != nil {
		return nil, err
	}
	caption, nerr := normalize.Caption(body.raw)
	if nerr != nil {
		return nil, body.invalid(nerr)
	}
	return caption, nil
}

// MealPlan asks /mealplan for a weekly plan over the given recipes.
func (c *Client) MealPlan(ctx context.Context, recipes []domain.Recipe, caloriesTarget float64) (*domain.MealPlan, error) {
	body, err := c.call(ctx, EndpointMealPlan, newMealPlanRequest(recipes, caloriesTarget))
	if err != nil {
		return nil, err
	}
	plan, nerr := normalize.MealPlan(body.raw)
	if nerr != nil {
		return nil, body.invalid(nerr)
	}
	return plan, nil
}

// Scan asks /scan for recipe suggestions matching a fridge photo.
func (c *Client) Scan(ctx context.Context, image string) ([]domain.ScanSuggestion, error) {
	body, err := c.call(ctx, EndpointScan, imageRequest{Image: image})
	if err != nil {
		return nil, err
	}
	suggestions, nerr := normalize.Scan(body.raw)
	if nerr != nil {
		return nil, body.invalid(nerr)
	}
	return suggestions, nil
}

// response carries a successful body together with the attempt count, so
// normalization failures can be reported with the same structure.
type response struct {
	raw      []byte
	attempts int
}

// invalid wraps a normalization failure as a RequestError. The network
// call itself succeeded; the data is what's being rejected.
func (r response) invalid(err error) error {
	rerr := &domain.RequestError{Kind: domain.RequestInvalid, Attempts: r.attempts, Err: err}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		rerr.Field = verr.Field
	}
	return rerr
}

// begin registers a new call on the endpoint: it bumps the endpoint's
// sequence number and cancels the previous in-flight call, if any.
func (c *Client) begin(ctx context.Context, e Endpoint) (uint64, context.Context, context.CancelFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq[e]++
	if cancel := c.cancels[e]; cancel != nil {
		cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	c.cancels[e] = cancel
	return c.seq[e], callCtx, cancel
}

// latest reports whether n is still the most recently issued sequence
// number for the endpoint.
func (c *Client) latest(e Endpoint, n uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq[e] == n
}

// call runs the request/retry loop for one endpoint.
func (c *Client) call(ctx context.Context, e Endpoint, payload any) (response, error) {
	seq, callCtx, cancel := c.begin(ctx, e)
	defer cancel()

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return response{}, &domain.RequestError{Kind: domain.RequestInvalid, Attempts: 0, Err: err}
	}

	var lastErr *domain.RequestError
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		raw, rerr := c.post(callCtx, e, reqBody)
		if rerr == nil {
			// A stale response is discarded even if the request itself
			// completed; only the most recent call's data may be applied.
			if !c.latest(e, seq) {
				return response{}, &domain.RequestError{Kind: domain.RequestSuperseded, Attempts: attempt}
			}
			return response{raw: raw, attempts: attempt}, nil
		}

		if c.superseded(callCtx, e, seq) {
			c.log.Debugw("call superseded", "endpoint", e.String(), "seq", seq)
			return response{}, &domain.RequestError{Kind: domain.RequestSuperseded, Attempts: attempt}
		}

		rerr.Attempts = attempt
		lastErr = rerr
		if !rerr.Transient() || attempt == c.maxAttempts {
			break
		}

		delay := c.backoffBase << (attempt - 1)
		c.log.Debugw("retrying", "endpoint", e.String(), "attempt", attempt, "delay", delay, "cause", rerr.Kind.String())
		select {
		case <-time.After(delay):
		case <-callCtx.Done():
			if c.superseded(callCtx, e, seq) {
				return response{}, &domain.RequestError{Kind: domain.RequestSuperseded, Attempts: attempt}
			}
			return response{}, lastErr
		}
	}

	c.log.Warnw("call failed", "endpoint", e.String(), "kind", lastErr.Kind.String(), "attempts", lastErr.Attempts)
	return response{}, lastErr
}

// superseded reports whether the call's context was cancelled because a
// newer call took over the endpoint.
func (c *Client) superseded(callCtx context.Context, e Endpoint, seq uint64) bool {
	return callCtx.Err() != nil && !c.latest(e, seq)
}

// post performs a single HTTP attempt. The returned RequestError has its
// Kind set; Attempts is filled in by the caller.
func (c *Client) post(ctx context.Context, e Endpoint, body []byte) ([]byte, *domain.RequestError) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeouts[e])
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.baseURL+e.Path(), bytes.NewReader(body))
	if err != nil {
		return nil, &domain.RequestError{Kind: domain.RequestNetworkError, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, &domain.RequestError{Kind: domain.RequestTimeout, Err: err}
		}
		return nil, &domain.RequestError{Kind: domain.RequestNetworkError, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RequestError{Kind: domain.RequestNetworkError, Err: err}
	}

	if resp.StatusCode >= 400 {
		return nil, &domain.RequestError{
			Kind:   domain.RequestServerError,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s: %s", e, resp.Status),
		}
	}

	return raw, nil
}
