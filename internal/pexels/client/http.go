package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Cap on how much of an error body gets read and logged.
const maxErrorBody = 8 << 10

// httpClient handles low-level HTTP operations and status classification.
type httpClient struct {
	baseURL      string
	videoBaseURL string
	apiKey       string
	userAgent    string
	limiter      *rate.Limiter
	logger       Logger
	httpClient   *http.Client
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(config Config) *httpClient {
	transport := config.HTTPClient
	if transport == nil {
		transport = &http.Client{
			Timeout: config.Timeout,
		}
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		burst := config.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(config.RateLimit, burst)
	}

	return &httpClient{
		baseURL:      strings.TrimSuffix(config.BaseURL, "/"),
		videoBaseURL: strings.TrimSuffix(config.VideoBaseURL, "/"),
		apiKey:       config.APIKey,
		userAgent:    config.UserAgent,
		limiter:      limiter,
		logger:       config.Logger,
		httpClient:   transport,
	}
}

// get performs a single GET request and decodes the JSON body into out.
// The API key travels in the Authorization header, never the query string,
// so request URLs are safe to log. Failed requests are never retried.
func (c *httpClient) get(ctx context.Context, base, path string, query url.Values, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	u, err := url.Parse(base + path)
	if err != nil {
		return &ValidationError{Param: "url", Value: base + path, Reason: err.Error()}
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &NetworkError{URL: u.String(), Err: err}
	}

	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug(ctx, "Making API request", map[string]interface{}{
		"method": http.MethodGet,
		"url":    u.String(),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "Request failed", map[string]interface{}{
			"url":   u.String(),
			"error": err,
		})
		return &NetworkError{URL: u.String(), Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if statusErr := c.classifyStatus(ctx, resp, u.String()); statusErr != nil {
		return statusErr
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return &DecodeError{Err: decodeErr}
	}
	return nil
}

// classifyStatus maps non-2xx responses onto the client error taxonomy.
func (c *httpClient) classifyStatus(ctx context.Context, resp *http.Response, requestURL string) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	c.logger.Error(ctx, "API request failed", map[string]interface{}{
		"url":         requestURL,
		"status_code": resp.StatusCode,
		"response":    string(body),
	})

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationError{StatusCode: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{URL: requestURL}
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp)
		if retryAfter == 0 {
			c.logger.Warn(ctx, "Rate limited without usable retry hint", map[string]interface{}{
				"url": requestURL,
			})
		}
		return &RateLimitError{
			RetryAfter: retryAfter,
			Remaining:  headerInt(resp, "X-Ratelimit-Remaining"),
		}
	default:
		// 5xx upstream failures, plus any status the taxonomy has no
		// narrower kind for.
		return &ServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}

// parseRetryAfter extracts the retry hint from rate limit headers.
// Retry-After carries a delay in seconds; X-Ratelimit-Reset carries a UNIX
// timestamp for when the quota window rolls over.
func parseRetryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}

	if v := resp.Header.Get("X-Ratelimit-Reset"); v != "" {
		if reset, err := strconv.ParseInt(v, 10, 64); err == nil {
			if until := time.Until(time.Unix(reset, 0)); until > 0 {
				return until
			}
		}
	}

	return 0
}

func headerInt(resp *http.Response, name string) int {
	v := resp.Header.Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
