// Package attio is a client for the Attio CRM v2 REST API.
//
// A Client holds an API token and base URL fixed at construction time and
// exposes one method per documented endpoint. Responses are returned as the
// decoded JSON object the API sent back; no local schema is imposed.
package attio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production Attio v2 API root.
const DefaultBaseURL = "https://api.attio.com/v2"

const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against the Attio API. Its
// configuration is fixed at construction and it is safe for concurrent use.
type Client struct {
	baseURL string
	http    *resty.Client
	log     *zap.SugaredLogger
}

type options struct {
	baseURL string
	timeout time.Duration
	http    *resty.Client
	log     *zap.SugaredLogger
}

// Option customizes a Client at construction time.
type Option func(*options)

// WithBaseURL overrides the API root, e.g. to point at a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout sets the per-request timeout. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient injects a pre-configured resty client. The auth and accept
// headers are still applied to it.
func WithHTTPClient(hc *resty.Client) Option {
	return func(o *options) { o.http = hc }
}

// WithLogger enables debug logging of every outgoing request. A nil logger keeps
// the client silent.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) { o.log = log }
}

// New builds a Client authenticating with the given bearer token.
func New(token string, opts ...Option) *Client {
	o := options{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.http
	if hc == nil {
		hc = resty.New()
		hc.SetTimeout(o.timeout)
	}
	hc.SetAuthToken(token)
	hc.SetHeader("Accept", "application/json")

	return &Client{
		baseURL: strings.TrimRight(o.baseURL, "/"),
		http:    hc,
		log:     o.log,
	}
}

// url joins the base URL and a relative endpoint path with exactly one slash.
func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// do issues one HTTP request and normalizes the outcome: 2xx bodies decode
// into a map (nil for empty bodies), non-2xx statuses become *APIError, and
// network failures are returned wrapped.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	endpoint := c.url(path)
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		if c.log != nil {
			c.log.Debugw("attio request failed", "method", method, "url", endpoint, "error", err)
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if c.log != nil {
		c.log.Debugw("attio request", "method", method, "url", endpoint, "status", resp.StatusCode())
	}

	raw := resp.Body()
	// resty's IsError only covers >= 400; anything outside 2xx (including an
	// unfollowed 3xx) is a failure here.
	if sc := resp.StatusCode(); sc < 200 || sc > 299 {
		return nil, &APIError{StatusCode: sc, Body: string(raw)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode(), Body: string(raw), Err: err}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	return c.do(ctx, resty.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.do(ctx, resty.MethodPost, path, nil, body)
}

func (c *Client) put(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.do(ctx, resty.MethodPut, path, nil, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.do(ctx, resty.MethodPatch, path, nil, body)
}

func (c *Client) delete(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.do(ctx, resty.MethodDelete, path, nil, body)
}

// requireID rejects empty required path identifiers before a URL is built.
func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("attio: %s is empty", name)
	}
	return nil
}
