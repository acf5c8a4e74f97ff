package parser

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimitError indicates a remote prompt-parser provider returned HTTP 429.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. A zero retryAfterSecs defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// RetryAfterSecs parses a Retry-After header value into seconds. Both forms
// from RFC 9110 are accepted, delta-seconds and an HTTP-date; anything else,
// including a date already in the past, yields 0.
func RetryAfterSecs(val string) int {
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		if secs < 0 {
			return 0
		}
		return secs
	}
	if at, err := http.ParseTime(val); err == nil {
		secs := int(time.Until(at) / time.Second)
		if secs < 0 {
			return 0
		}
		return secs
	}
	return 0
}
