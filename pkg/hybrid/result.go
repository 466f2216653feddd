// Package hybrid implements the two-provider dispatch and arbiter
// synthesis pipeline behind the chat front-end.
package hybrid

import (
	"fmt"
	"strings"
)

// ProviderResult is the outcome of a single provider call. Success and
// failure share a slot: a failed call carries its error here instead of
// aborting the pipeline.
type ProviderResult struct {
	// Provider is the name of the provider that produced this result
	Provider string

	// Content is the model's completion, empty on failure
	Content string

	// Err is the call failure, nil on success
	Err error
}

// Failed reports whether the provider call failed
func (r ProviderResult) Failed() bool {
	return r.Err != nil
}

// Text returns the completion text, or the error sentinel string when the
// call failed. The sentinel keeps the data channel uniform so the arbiter
// prompt can embed failures as content.
func (r ProviderResult) Text() string {
	if r.Err != nil {
		return fmt.Sprintf("[%s_ERROR] Failed to get response: %v",
			strings.ToUpper(r.Provider), r.Err)
	}
	return r.Content
}

// ResultSet holds both provider results under fixed slots. Both slots are
// always populated by Dispatch; completion order has no observable effect.
type ResultSet struct {
	A ProviderResult
	B ProviderResult
}
