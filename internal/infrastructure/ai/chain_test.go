package ai

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	name     string
	response string
	err      error
	calls    int
}

func (g *stubGenerator) Name() string { return g.name }

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func TestChainGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstProviderSuccess_StopsThere", func(t *testing.T) {
		primary := &stubGenerator{name: "openai", response: "primary output"}
		secondary := &stubGenerator{name: "gemini", response: "secondary output"}
		chain := NewChain(zap.NewNop(), 0, primary, secondary)

		text, err := chain.Generate(ctx, "prompt")
		require.NoError(t, err)
		assert.Equal(t, "primary output", text)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 0, secondary.calls)
		assert.Equal(t, "openai", chain.Name())
	})

	t.Run("FirstProviderFails_FallsThrough", func(t *testing.T) {
		primary := &stubGenerator{name: "openai", err: errors.New("quota exceeded")}
		secondary := &stubGenerator{name: "gemini", response: "fallback output"}
		chain := NewChain(zap.NewNop(), 0, primary, secondary)

		text, err := chain.Generate(ctx, "prompt")
		require.NoError(t, err)
		assert.Equal(t, "fallback output", text)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, "gemini", chain.Name())
	})

	t.Run("AllProvidersFail_JoinsErrors", func(t *testing.T) {
		primary := &stubGenerator{name: "openai", err: errors.New("quota exceeded")}
		secondary := &stubGenerator{name: "gemini", err: errors.New("invalid key")}
		chain := NewChain(zap.NewNop(), 0, primary, secondary)

		_, err := chain.Generate(ctx, "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "openai")
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Contains(t, err.Error(), "gemini")
		assert.Contains(t, err.Error(), "invalid key")
	})

	t.Run("NoProviders_IsError", func(t *testing.T) {
		chain := NewChain(zap.NewNop(), 0)

		_, err := chain.Generate(ctx, "prompt")
		assert.Error(t, err)
	})

	t.Run("CancelledContext_StopsFallback", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		primary := &stubGenerator{name: "openai", err: errors.New("boom")}
		secondary := &stubGenerator{name: "gemini", response: "never reached"}
		chain := NewChain(zap.NewNop(), 0, primary, secondary)

		_, err := chain.Generate(cancelled, "prompt")
		require.Error(t, err)
		assert.Equal(t, 0, secondary.calls)
	})
}

// staticGenerator has no per-call bookkeeping so it is safe to share
// across goroutines
type staticGenerator struct {
	name     string
	response string
	err      error
}

func (g staticGenerator) Name() string { return g.name }

func (g staticGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.response, g.err
}

// One chain serves every HTTP request, so Generate and Name run
// concurrently. Exercised under the race detector.
func TestChainConcurrentGenerateAndName(t *testing.T) {
	chain := NewChain(zap.NewNop(), 0,
		staticGenerator{name: "openai", err: errors.New("quota exceeded")},
		staticGenerator{name: "gemini", response: "fallback output"},
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, err := chain.Generate(context.Background(), "prompt")
			assert.NoError(t, err)
			assert.Equal(t, "fallback output", text)
			assert.NotEmpty(t, chain.Name())
		}()
	}
	wg.Wait()

	assert.Equal(t, "gemini", chain.Name())
}

func TestChainName(t *testing.T) {
	chain := NewChain(zap.NewNop(), 0, &stubGenerator{name: "openai", response: "ok"})
	assert.Equal(t, "chain", chain.Name())

	_, err := chain.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "openai", chain.Name())
}

func TestChainProviders(t *testing.T) {
	chain := NewChain(zap.NewNop(), 0,
		&stubGenerator{name: "openai"},
		&stubGenerator{name: "gemini"},
	)

	assert.Equal(t, []string{"openai", "gemini"}, chain.Providers())
	assert.Equal(t, "chain[openai -> gemini]", chain.String())
}

func TestHealthChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("AllHealthy", func(t *testing.T) {
		checker := NewHealthChecker(zap.NewNop(),
			&stubGenerator{name: "openai", response: `{"status":"ok"}`},
			&stubGenerator{name: "gemini", response: `{"status":"ok"}`},
		)

		status := checker.CheckHealth(ctx)
		assert.Equal(t, "healthy", status.Overall)
		assert.True(t, status.Providers["openai"])
		assert.True(t, status.Providers["gemini"])
	})

	t.Run("SomeFailing_IsDegraded", func(t *testing.T) {
		checker := NewHealthChecker(zap.NewNop(),
			&stubGenerator{name: "openai", err: errors.New("down")},
			&stubGenerator{name: "gemini", response: `{"status":"ok"}`},
		)

		status := checker.CheckHealth(ctx)
		assert.Equal(t, "degraded", status.Overall)
		assert.False(t, status.Providers["openai"])
		assert.Contains(t, status.Details["openai"], "Unavailable")
	})

	t.Run("AllFailing_IsCritical", func(t *testing.T) {
		checker := NewHealthChecker(zap.NewNop(),
			&stubGenerator{name: "openai", err: errors.New("down")},
		)

		status := checker.CheckHealth(ctx)
		assert.Equal(t, "critical", status.Overall)
	})

	t.Run("NoProviders_IsUnconfigured", func(t *testing.T) {
		checker := NewHealthChecker(zap.NewNop())

		status := checker.CheckHealth(ctx)
		assert.Equal(t, "unconfigured", status.Overall)
		assert.Empty(t, status.Providers)
		assert.Contains(t, status.Details["chain"], "No generation providers")
	})
}
