package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"kagaz/internal/domain"
	"kagaz/internal/parser"
	"kagaz/internal/port"
)

// circuit tracks rate-limit backoff for a single remote parser.
type circuit struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuit) isOpen(now time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuit) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// Dispatcher tries prompt parsers in order, skipping remote parsers whose
// rate-limit circuit is open. The local rule-based parser is expected to sit
// last in the chain: it never fails, so dispatch as a whole never fails as
// long as it is present.
type Dispatcher struct {
	parsers  []port.PromptParser
	sources  []domain.UpdateSource
	names    []string
	circuits []*circuit
}

// NewDispatcher creates a Dispatcher from an ordered list of parsers with
// their names and sources. Slices must be the same length.
func NewDispatcher(parsers []port.PromptParser, names []string, sources []domain.UpdateSource) *Dispatcher {
	circuits := make([]*circuit, len(parsers))
	for i := range circuits {
		circuits[i] = &circuit{}
	}
	return &Dispatcher{
		parsers:  parsers,
		sources:  sources,
		names:    names,
		circuits: circuits,
	}
}

// Dispatch runs the chain and returns the first successful update along with
// the source that produced it.
func (d *Dispatcher) Dispatch(ctx context.Context, input port.ParseInput) (*domain.DocumentUpdate, domain.UpdateSource, error) {
	now := time.Now()
	var lastErr error

	for i, p := range d.parsers {
		if d.circuits[i].isOpen(now) {
			log.Printf("gateway.Dispatcher: skipping %s (rate-limit circuit open)", d.names[i])
			continue
		}

		update, err := p.Parse(ctx, input)
		if err == nil {
			return update, d.sources[i], nil
		}

		log.Printf("gateway.Dispatcher: %s failed: %v", d.names[i], err)
		lastErr = err

		var rlErr *parser.RateLimitError
		if errors.As(err, &rlErr) {
			d.circuits[i].open(now.Add(rlErr.RetryAfter))
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no parsers available")
	}
	return nil, "", fmt.Errorf("all parsers failed: %w", lastErr)
}
