// Package callback exposes hooks into the agent's plan and act cycle.
package callback

import (
	"context"

	"github.com/antgroup/tripmate/llm"
	"github.com/antgroup/tripmate/schema"
)

// Handler receives notifications while an agent run is in flight. The run
// argument is the uuid assigned to the current Run invocation.
type Handler interface {
	HandleLLMStart(ctx context.Context, run, prompt string)

	HandleLLMEnd(ctx context.Context, run string, output *llm.Generation)

	HandleStreamingFunc(ctx context.Context, chunk []byte) error

	HandleAgentActionStart(ctx context.Context, run, agent string, action *schema.StepAction)

	HandleAgentActionEnd(ctx context.Context, run, agent string, action *schema.StepAction)
}
