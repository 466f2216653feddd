package hybrid

import (
	"context"
	"fmt"

	"github.com/duet-ai/duet/pkg/hybrid/prompt"
	"github.com/duet-ai/duet/pkg/hybrid/provider"
)

// Synthesize asks the judge model to merge both provider outputs into one
// final answer. Failed slots are embedded as their sentinel text, so the
// judge always receives two outputs. A failure of the judge call itself
// becomes the synthesis sentinel rather than an error: the caller always
// gets displayable text.
func (a *Agent) Synthesize(ctx context.Context, originalPrompt string, results ResultSet) string {
	metaPrompt, err := prompt.Arbiter.Execute(prompt.ArbiterData{
		OriginalPrompt: originalPrompt,
		LabelA:         a.primaryA.Model(),
		LabelB:         a.primaryB.Model(),
		OutputA:        results.A.Text(),
		OutputB:        results.B.Text(),
	})
	if err != nil {
		return synthesisSentinel(err)
	}

	resp, err := a.judge.GenerateResponse(ctx, provider.Request{
		Prompt:      metaPrompt,
		Temperature: ArbiterTemperature,
	})
	if err != nil {
		return synthesisSentinel(err)
	}

	return resp.Content
}

func synthesisSentinel(err error) string {
	return fmt.Sprintf("[SYNTHESIS_CRITICAL_ERROR] Synthesis failed. Error: %v", err)
}
