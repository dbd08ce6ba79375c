package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/employee7007-droid/construct-deal/pkg/metrics"
)

// Client is the shared HTTP core behind every resource client: request
// construction against the backend base URL, bearer-token injection from the
// request context, envelope unwrapping and the tag-indexed query cache.
type Client struct {
	base  string
	http  *http.Client
	cache Cache
	ttl   time.Duration
}

// New creates a client for the given backend base URL. Cache may be nil to
// disable query caching entirely.
func New(base string, timeout time.Duration, cache Cache, cacheTTL time.Duration) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		http:  &http.Client{Timeout: timeout},
		cache: cache,
		ttl:   cacheTTL,
	}
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// cacheKey identifies one cached query. Backend list endpoints scope their
// results to the requester, so the key carries a token hash and two sessions
// never share an entry. Unauthenticated queries share one public entry.
func cacheKey(ctx context.Context, path string, q url.Values) string {
	key := path
	if len(q) > 0 {
		// Encode sorts keys, so equivalent queries share one entry
		key = path + "?" + q.Encode()
	}
	if token := TokenFromContext(ctx); token != "" {
		sum := sha256.Sum256([]byte(token))
		key = hex.EncodeToString(sum[:8]) + ":" + key
	}
	return key
}

func resourceOf(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i > 0 {
		return p[:i]
	}
	return p
}

func statusClass(code int) string {
	if code <= 0 {
		return "error"
	}
	return fmt.Sprintf("%dxx", code/100)
}

// query performs a cached GET. Hits skip the network entirely; misses store
// the unwrapped payload under every given tag until a mutation invalidates it.
func (c *Client) query(ctx context.Context, path string, q url.Values, tags []Tag, out interface{}) error {
	key := cacheKey(ctx, path, q)
	cacheable := c.cache != nil && len(tags) > 0
	if cacheable {
		if b, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			for _, tag := range tags {
				metrics.CacheHits.WithLabelValues(string(tag)).Inc()
			}
			if out == nil {
				return nil
			}
			return json.Unmarshal(b, out)
		}
		for _, tag := range tags {
			metrics.CacheMisses.WithLabelValues(string(tag)).Inc()
		}
	}
	data, err := c.roundTrip(ctx, http.MethodGet, path, q, nil, "")
	if err != nil {
		return err
	}
	if cacheable {
		_ = c.cache.Set(ctx, key, data, tags, c.ttl)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// mutate performs a state-changing request and, on success, invalidates the
// declared resource tags so dependent queries refetch.
func (c *Client) mutate(ctx context.Context, method, path string, body interface{}, out interface{}, invalidates ...Tag) error {
	var rd io.Reader
	contentType := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
		contentType = "application/json"
	}
	data, err := c.roundTrip(ctx, method, path, nil, rd, contentType)
	if err != nil {
		return err
	}
	if c.cache != nil && len(invalidates) > 0 {
		_ = c.cache.Invalidate(ctx, invalidates...)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// Upload sends a multipart file to a backend attachment endpoint.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader, invalidates ...Tag) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("multipart: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("multipart copy: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("multipart close: %w", err)
	}
	if _, err := c.roundTrip(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType()); err != nil {
		return err
	}
	if c.cache != nil && len(invalidates) > 0 {
		_ = c.cache.Invalidate(ctx, invalidates...)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string) (json.RawMessage, error) {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resource := resourceOf(path)
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(resource, "error").Inc()
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()
	metrics.UpstreamRequests.WithLabelValues(resource, statusClass(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Err: err}
	}

	var env envelope
	// tolerate non-envelope error bodies; the status code still drives handling
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode >= 400 {
		return nil, &Error{Status: resp.StatusCode, Message: env.Message}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "backend reported failure"
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}
	return env.Data, nil
}
