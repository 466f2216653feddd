package hybrid

import (
	"context"
	"errors"
	"time"

	"github.com/duet-ai/duet/pkg/hybrid/provider"
)

// Sampling temperatures for the two pipeline stages. The primaries run
// warm enough to produce distinct candidates; the arbiter runs cold to
// favor convergent synthesis.
const (
	PrimaryTemperature = 0.5
	ArbiterTemperature = 0.2
)

// Agent composes the dispatch and synthesis stages. Providers are injected
// at construction and treated as read-only across invocations; the Agent
// holds no per-invocation state and is safe for concurrent use.
type Agent struct {
	primaryA provider.Provider
	primaryB provider.Provider
	judge    provider.Provider
	timeout  time.Duration
}

// Option modifies agent behavior
type Option func(*Agent)

// WithTimeout bounds each Execute invocation with a deadline. Without it a
// hung provider call hangs the pipeline indefinitely, matching the
// historical behavior; enabling it is an observable change.
func WithTimeout(d time.Duration) Option {
	return func(a *Agent) {
		a.timeout = d
	}
}

// New creates an agent from its two primary providers and the judge
func New(primaryA, primaryB, judge provider.Provider, opts ...Option) (*Agent, error) {
	if primaryA == nil || primaryB == nil {
		return nil, errors.New("hybrid: both primary providers are required")
	}
	if judge == nil {
		return nil, errors.New("hybrid: a judge provider is required")
	}

	a := &Agent{
		primaryA: primaryA,
		primaryB: primaryB,
		judge:    judge,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Execute runs the full pipeline for one prompt: dispatch both primaries
// in parallel, then synthesize their outputs through the judge. The
// returned string is always a displayable answer; provider and synthesis
// failures are absorbed into sentinel text rather than returned as errors.
func (a *Agent) Execute(ctx context.Context, prompt string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	results := a.Dispatch(ctx, prompt)
	return a.Synthesize(ctx, prompt, results), nil
}
