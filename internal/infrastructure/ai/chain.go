// Package ai provides the provider fallback chain and health checks for
// text generation
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vatika/v1/internal/ports/outbound"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Chain tries each configured generator in order and returns the first
// success. All failures are collected so the caller can surface what went
// wrong with every provider, not just the last one.
type Chain struct {
	generators []outbound.TextGenerator
	limiter    *rate.Limiter
	logger     *zap.Logger

	// mu guards lastProvider; the chain is shared across requests
	mu           sync.Mutex
	lastProvider string
}

// NewChain creates a provider chain. Order matters: earlier generators are
// preferred. requestsPerMin of zero disables rate limiting.
func NewChain(logger *zap.Logger, requestsPerMin int, generators ...outbound.TextGenerator) *Chain {
	var limiter *rate.Limiter
	if requestsPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMin)/60.0), requestsPerMin)
	}

	return &Chain{
		generators: generators,
		limiter:    limiter,
		logger:     logger.Named("ai-chain"),
	}
}

var _ outbound.TextGenerator = (*Chain)(nil)

// Name returns the provider that served the last successful generation,
// or "chain" before any success
func (c *Chain) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastProvider != "" {
		return c.lastProvider
	}
	return "chain"
}

// Generate tries each provider in order, returning the first success.
// When every provider fails, the joined per-provider errors are returned.
func (c *Chain) Generate(ctx context.Context, prompt string) (string, error) {
	if len(c.generators) == 0 {
		return "", errors.New("ai: no generation providers configured")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("ai: rate limit wait: %w", err)
		}
	}

	var failures []error
	for _, gen := range c.generators {
		text, err := gen.Generate(ctx, prompt)
		if err == nil {
			c.mu.Lock()
			c.lastProvider = gen.Name()
			c.mu.Unlock()
			c.logger.Debug("Generation succeeded",
				zap.String("provider", gen.Name()),
			)
			return text, nil
		}

		c.logger.Warn("Provider failed, trying next",
			zap.String("provider", gen.Name()),
			zap.Error(err),
		)
		failures = append(failures, fmt.Errorf("%s: %w", gen.Name(), err))

		if ctx.Err() != nil {
			break
		}
	}

	return "", errors.Join(failures...)
}

// Providers lists the configured provider names in fallback order
func (c *Chain) Providers() []string {
	names := make([]string, 0, len(c.generators))
	for _, gen := range c.generators {
		names = append(names, gen.Name())
	}
	return names
}

// String describes the chain for logs
func (c *Chain) String() string {
	return "chain[" + strings.Join(c.Providers(), " -> ") + "]"
}
