package callback

import (
	"context"
	"log"
	"os"

	"github.com/antgroup/tripmate/llm"
	"github.com/antgroup/tripmate/schema"
)

// LogHandler writes run events to a standard logger. The zero value is not
// usable, construct it with NewLogHandler.
type LogHandler struct {
	logger *log.Logger
}

var _ Handler = (*LogHandler)(nil)

func NewLogHandler() *LogHandler {
	return &LogHandler{
		logger: log.New(os.Stderr, "[agent] ", log.LstdFlags),
	}
}

func (h *LogHandler) HandleLLMStart(_ context.Context, run, prompt string) {
	h.logger.Printf("run=%s llm start, prompt %d chars", run, len(prompt))
}

func (h *LogHandler) HandleLLMEnd(_ context.Context, run string, output *llm.Generation) {
	if output.Usage != nil {
		h.logger.Printf("run=%s llm end, tokens=%d", run, output.Usage.TotalTokens)
		return
	}
	h.logger.Printf("run=%s llm end", run)
}

func (h *LogHandler) HandleStreamingFunc(_ context.Context, _ []byte) error {
	return nil
}

func (h *LogHandler) HandleAgentActionStart(_ context.Context, run, agent string, action *schema.StepAction) {
	h.logger.Printf("run=%s agent=%s action=%s input=%s", run, agent, action.Action, action.Input)
}

func (h *LogHandler) HandleAgentActionEnd(_ context.Context, run, agent string, action *schema.StepAction) {
	h.logger.Printf("run=%s agent=%s action=%s observation %d chars", run, agent, action.Action, len(action.Observation))
}
