package coachapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/dawarpower/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultBaseURL = "http://localhost:8080/fit"

	RequestIDHeader = "X-Request-Id"

	oneHour          = 60 * 60
	sampleCacheKey   = "meal-plan::sample"
	sampleCacheTTL   = oneHour
	defaultCacheSize = 10 * 1024 * 1024

	maxErrorBodyLen = 512
)

// Error is returned for any non 2xx answer of the remote api.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("coach api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("coach api: status %d: %s", e.StatusCode, e.Body)
}

// CallObserver is told about every finished remote call.
type CallObserver interface {
	ObserveRemoteCall(endpoint, outcome string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveRemoteCall(string, string, time.Duration) {}

type Option func(*Client)

func WithCallObserver(o CallObserver) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

func WithCacheSize(bytes int) Option {
	return func(c *Client) {
		c.cache = freecache.NewCache(bytes)
	}
}

// Client talks JSON over HTTP to the remote coaching api.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
	observer   CallObserver
	newID      func() string
}

func NewClient(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		observer:   noopObserver{},
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = freecache.NewCache(defaultCacheSize)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ClearCache drops cached responses, e.g. after the api was redeployed.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// do sends in (if not nil) as the JSON body and decodes the answer into out
// (if not nil). The raw answer body is returned as well.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (respBytes []byte, err error) {
	return c.doWithID(ctx, op, method, path, c.newID(), in, out)
}

func (c *Client) doWithID(ctx context.Context, op, method, path, requestID string, in, out any) (respBytes []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coachApi."+op)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("coach.path", path),
		attribute.String("coach.request_id", requestID),
	)

	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, op)
		}
		c.observer.ObserveRemoteCall(op, outcome, time.Since(start))
	}()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	url := c.baseURL + path
	log.Debugf("coach api [%s]: %s %s", requestID, method, url)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody := string(respBytes)
		if len(errBody) > maxErrorBodyLen {
			errBody = errBody[:maxErrorBodyLen]
		}
		return nil, &Error{StatusCode: resp.StatusCode, Body: errBody}
	}

	if out != nil {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return nil, fmt.Errorf("unmarshal %s response: %w", op, err)
		}
	}

	return respBytes, nil
}
