package parser_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kagaz/internal/parser"
)

func TestRateLimitError_ErrorString(t *testing.T) {
	rlErr := parser.NewRateLimitError("sambanova", fmt.Errorf("rate limited"), 30)

	assert.Contains(t, rlErr.Error(), "sambanova")
	assert.Contains(t, rlErr.Error(), "rate limited")
	assert.Contains(t, rlErr.Error(), "30s")
}

func TestRateLimitError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	rlErr := parser.NewRateLimitError("sambanova", underlying, 60)

	assert.Equal(t, underlying, errors.Unwrap(rlErr))
}

func TestRateLimitError_ErrorsAs(t *testing.T) {
	rlErr := parser.NewRateLimitError("sambanova", fmt.Errorf("rate limited"), 30)
	wrapped := fmt.Errorf("parse failed: %w", rlErr)

	var target *parser.RateLimitError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "sambanova", target.Provider)
	assert.Equal(t, 30*time.Second, target.RetryAfter)
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	rlErr := parser.NewRateLimitError("sambanova", fmt.Errorf("err"), 0)

	assert.Equal(t, 60*time.Second, rlErr.RetryAfter)
}

func TestRetryAfterSecs(t *testing.T) {
	assert.Equal(t, 0, parser.RetryAfterSecs(""))
	assert.Equal(t, 30, parser.RetryAfterSecs("30"))
	assert.Equal(t, 0, parser.RetryAfterSecs("invalid"))
	assert.Equal(t, 120, parser.RetryAfterSecs("120"))
	assert.Equal(t, 0, parser.RetryAfterSecs("-5"))
}

func TestRetryAfterSecs_HTTPDate(t *testing.T) {
	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	secs := parser.RetryAfterSecs(future)
	assert.InDelta(t, 90, secs, 3)

	past := time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat)
	assert.Equal(t, 0, parser.RetryAfterSecs(past))
}
