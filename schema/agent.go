package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/antgroup/tripmate/llm"
	"github.com/antgroup/tripmate/tool"
)

// StepAction is the agent's action to take.
type StepAction struct {
	Action      string `json:"action"`
	Thought     string `json:"thought"`
	Input       string `json:"input"`
	Feedback    string `json:"feedback"`
	Log         string `json:"log"`
	Observation string `json:"observation"`
}

type StepActionInput struct {
	Input any `json:"input"`
}

// Generation is the output of a single agent run.
type Generation struct {
	RunId       string
	Messages    []Message
	TotalTokens int
}

// Agent is the interface all agents must implement.
type Agent interface {
	Run(ctx context.Context, messages []Message, opts ...llm.GenerateOption) (*Generation, error)

	Name() string

	Description() string

	Tools() []tool.Tool
}

var (
	ErrMissingLLM          = errors.New("missing field LLM")
	ErrMissingPrompt       = errors.New("missing fill in prompt")
	ErrMissingName         = errors.New("missing agent name")
	ErrMissingDesc         = errors.New("missing agent desc")
	ErrAgentNoReturn       = errors.New("no actions or finish was returned by the agent")
	ErrNotFinished         = errors.New("agent not finished before max iterations")
	ErrParsePromptTemplate = errors.New("parse prompt template error")
)

// ConvertConstructScratchPad renders the conversation so far plus the
// agent's intermediate steps into the history block of the plan prompt.
func ConvertConstructScratchPad(name, self string, messages []Message, steps []StepAction) string {
	var scratchPad string
	for _, message := range messages {
		sender := message.Sender
		if strings.EqualFold(sender, name) {
			sender = self
		}
		if message.IsMsg() {
			scratchPad += fmt.Sprintf("(%s): %s\n", sender, message.Content)
		}
	}
	for _, step := range steps {
		if step.Feedback == "" {
			scratchPad += fmt.Sprintf(
				"(%s)Thought: %s\nAction: %s\nAction Input: %s\nObservation: %s\n",
				self, step.Thought, step.Action, step.Input, step.Observation)
			continue
		}
		scratchPad += fmt.Sprintf("(%s)Output: %s\nFeedback: %s\n",
			self, step.Log, step.Feedback)
	}
	return scratchPad
}

func ConvertToolNames(actions []tool.Tool) string {
	var tn strings.Builder
	for i, a := range actions {
		if i > 0 {
			tn.WriteString(", ")
		}
		tn.WriteString(a.Name())
	}

	return tn.String()
}

func ConvertToolDescriptions(actions []tool.Tool) string {
	var ts strings.Builder
	for _, a := range actions {
		ts.WriteString(fmt.Sprintf("- %s: %s\n",
			a.Name(), a.Description()))
	}

	return ts.String()
}
