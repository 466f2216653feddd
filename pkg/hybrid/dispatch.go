package hybrid

import (
	"context"
	"sync"

	"github.com/duet-ai/duet/pkg/hybrid/provider"
)

// Dispatch issues both primary provider calls concurrently and joins their
// results. It returns only after both slots are filled: a fast failure on
// one side does not cancel or shortcut the other. Total latency is bounded
// by the slower of the two calls.
func (a *Agent) Dispatch(ctx context.Context, prompt string) ResultSet {
	var results ResultSet

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		results.A = callProvider(ctx, a.primaryA, prompt)
	}()

	go func() {
		defer wg.Done()
		results.B = callProvider(ctx, a.primaryB, prompt)
	}()

	wg.Wait()
	return results
}

// callProvider runs one provider call and absorbs its error into the
// result slot. No error escapes this boundary.
func callProvider(ctx context.Context, p provider.Provider, prompt string) ProviderResult {
	resp, err := p.GenerateResponse(ctx, provider.Request{
		Prompt:      prompt,
		Temperature: PrimaryTemperature,
	})
	if err != nil {
		return ProviderResult{Provider: p.Name(), Err: err}
	}

	return ProviderResult{Provider: p.Name(), Content: resp.Content}
}
