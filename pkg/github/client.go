package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	rcerrors "github.com/matzehuels/repocards/pkg/errors"
	"github.com/matzehuels/repocards/pkg/httputil"
	"github.com/matzehuels/repocards/pkg/observability"
)

// Defaults for the listing request.
const (
	DefaultBaseURL = "https://api.github.com"
	DefaultUser    = "noxx-code"
	DefaultPerPage = 100

	acceptHeader = "application/vnd.github.v3+json"

	// maxErrorBody caps how much of a failed response is read for its message.
	maxErrorBody = 64 << 10
)

// Rate limit response headers.
const (
	headerRemaining = "X-RateLimit-Remaining"
	headerReset     = "X-RateLimit-Reset"
)

// Client performs listing requests against the GitHub API.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
	cache   httputil.Store
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests and GitHub Enterprise.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithToken authenticates requests with a bearer token (higher rate limits).
func WithToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.headers["Authorization"] = "Bearer " + token
		}
	}
}

// WithCache reuses successful listings stored in cache.
func WithCache(cache httputil.Store) Option {
	return func(c *Client) { c.cache = cache }
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Client for the public API with no cache and no timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		baseURL: DefaultBaseURL,
		headers: map[string]string{"Accept": acceptHeader},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUserRepos returns the first page of user's public repositories.
func (c *Client) ListUserRepos(ctx context.Context, user string, perPage int) ([]Repo, error) {
	if err := rcerrors.ValidateAccountName(user); err != nil {
		return nil, err
	}
	if err := rcerrors.ValidatePageSize(perPage); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("github:repos:%s:%s:%d", c.baseURL, user, perPage)
	if c.cache != nil {
		var repos []Repo
		if ok, _ := c.cache.Get(key, &repos); ok {
			observability.Cache().OnCacheHit(ctx, "github")
			return repos, nil
		}
		observability.Cache().OnCacheMiss(ctx, "github")
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d", c.baseURL, url.PathEscape(user), perPage)
	var repos []Repo
	if err := c.get(ctx, endpoint, &repos); err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(key, repos); err == nil {
			observability.Cache().OnCacheSet(ctx, "github", len(repos))
		}
	}
	return repos, nil
}

// get performs a GET and decodes a 200 JSON response into v.
func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return rcerrors.TransportCause(err)
	}
	for k, val := range c.headers {
		req.Header.Set(k, val)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return rcerrors.TransportCause(err)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if rl := rateLimit(resp.Header); rl != nil {
		return rl
	}
	if resp.StatusCode != http.StatusOK {
		return rcerrors.Transport(resp.StatusCode, errorMessage(resp.Body))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return rcerrors.TransportCause(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// rateLimit reports an exhausted quota. Absent or malformed headers mean
// the quota is not known to be exhausted.
func rateLimit(h http.Header) *rcerrors.RateLimitedError {
	raw := strings.TrimSpace(h.Get(headerRemaining))
	if raw == "" {
		return nil
	}
	remaining, err := strconv.ParseFloat(raw, 64)
	if err != nil || remaining > 0 {
		return nil
	}

	rl := &rcerrors.RateLimitedError{}
	if reset, err := strconv.ParseInt(strings.TrimSpace(h.Get(headerReset)), 10, 64); err == nil && reset > 0 {
		t := time.Unix(reset, 0)
		rl.ResetAt = &t
	}
	return rl
}

// errorMessage extracts the "message" field of an error body, if any.
func errorMessage(body io.Reader) string {
	var e apiError
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&e); err != nil {
		return ""
	}
	return e.Message
}
