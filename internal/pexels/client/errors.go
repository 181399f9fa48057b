// Package client provides HTTP client functionality for the Pexels API
package client

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingAPIKey is returned by New when no API key is supplied explicitly
// and none is found in the PEXELS_API_KEY environment variable.
var ErrMissingAPIKey = errors.New("pexels: missing API key (set Config.APIKey or PEXELS_API_KEY)")

// ValidationError reports a request parameter rejected before any network
// call is made. Catching it means the request was never sent.
type ValidationError struct {
	Param   string
	Value   string
	Allowed []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("pexels: invalid %s: %s", e.Param, e.Reason)
	}
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("pexels: invalid %s %q (allowed: %s)", e.Param, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("pexels: invalid %s %q", e.Param, e.Value)
}

// AuthenticationError indicates the API rejected the key (HTTP 401 or 403).
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("pexels: authentication failed (status %d): invalid or missing API key", e.StatusCode)
}

// NotFoundError indicates the requested resource does not exist (HTTP 404).
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pexels: resource not found: %s", e.URL)
}

// RateLimitError indicates the request quota is exhausted (HTTP 429).
// RetryAfter carries the server's retry hint when one was present; zero when
// the response had no usable hint.
type RateLimitError struct {
	RetryAfter time.Duration
	Remaining  int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("pexels: rate limited, retry in %s", e.RetryAfter)
	}
	return "pexels: rate limited"
}

// ServiceError indicates an upstream failure (HTTP 5xx). Callers may choose
// to retry; the client itself never does.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("pexels: upstream failure (status %d)", e.StatusCode)
}

// NetworkError wraps a transport-level failure (DNS, timeout, refused
// connection) that occurred before any HTTP status was received.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("pexels: request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError indicates a 2xx response whose body was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pexels: decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
