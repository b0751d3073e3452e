package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/dmitrijs2005/vending/internal/logging"
	"github.com/dmitrijs2005/vending/internal/metrics"
)

const (
	maxResponseBytes = 8 << 20
	requestIDHeader  = "X-Request-ID"
)

// TokenSource supplies the persisted bearer credential. ok is false when no
// credential is stored.
type TokenSource interface {
	Token(ctx context.Context) (token string, ok bool, err error)
}

// Client performs authenticated JSON calls against the vending API.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	log      logging.Logger
	recorder metrics.Recorder
	now      func() time.Time
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// New builds a Client rooted at baseURL. tokens may be nil, in which case no
// Authorization header is ever sent.
func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("server url %q must be absolute http(s)", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     logging.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized server root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends method to path (relative to the server root) with an optional
// body and decodes a 200 reply into out. out may be nil to discard the reply.
func (c *Client) Do(ctx context.Context, method, path string, body *Body, out any) error {
	return c.call(ctx, path, method, path, body, out)
}

// call is Do with a separate, low-cardinality endpoint label for metrics and
// logs, so product names never leak into label values.
func (c *Client) call(ctx context.Context, endpoint, method, path string, body *Body, out any) error {
	if body != nil && body.err != nil {
		return GenericError(0, fmt.Errorf("encode request: %w", body.err))
	}

	reqID := uuid.NewString()
	log := c.log.With("endpoint", endpoint, "method", method, "request_id", reqID)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), body.reader())
	if err != nil {
		return GenericError(0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Content-Type", body.ContentType())
	req.Header.Set(requestIDHeader, reqID)

	if err := c.authorize(ctx, req); err != nil {
		log.Error(ctx, "read credential", "error", err)
		return GenericError(0, err)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.record(endpoint, method, 0, start)
		log.Warn(ctx, "request failed", "error", err)
		return GenericError(0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.record(endpoint, method, resp.StatusCode, start)
	if err != nil {
		log.Warn(ctx, "read response", "status", resp.StatusCode, "error", err)
		return GenericError(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		rerr := errorFromBody(resp.StatusCode, raw)
		log.Info(ctx, "request rejected", "status", resp.StatusCode, "detail", rerr.Message)
		return rerr
	}

	log.Debug(ctx, "request ok", "status", resp.StatusCode)

	if !gjson.ValidBytes(raw) {
		log.Warn(ctx, "malformed response body", "status", resp.StatusCode)
		return GenericError(resp.StatusCode, fmt.Errorf("decode response: invalid json"))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn(ctx, "unexpected response shape", "error", err)
		return GenericError(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, ok, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}
	if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) record(endpoint, method string, status int, start time.Time) {
	if c.recorder == nil {
		return
	}
	c.recorder.RecordRequest(endpoint, method, status, c.now().Sub(start))
}

// errorFromBody extracts a string "detail" from a rejected reply. Anything
// else, including structured detail lists and non-JSON bodies, yields the
// generic message.
func errorFromBody(status int, raw []byte) *RemoteError {
	if gjson.ValidBytes(raw) {
		if d := gjson.GetBytes(raw, "detail"); d.Type == gjson.String {
			return &RemoteError{Status: status, Message: d.String()}
		}
	}
	return &RemoteError{Status: status, Message: GenericErrorMessage}
}
