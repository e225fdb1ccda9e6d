// Package groq provides an llm.LLM backed by the Groq OpenAI-compatible API.
package groq

import (
	"context"
	"fmt"
	"net/http"

	"github.com/antgroup/tripmate/llm"
	"github.com/pkg/errors"
	goopenai "github.com/sashabaranov/go-openai"
)

type LLM struct {
	client *goopenai.Client
	model  string
}

var _ llm.LLM = (*LLM)(nil)

// newClient creates an instance of the internal client.
func newClient(opt *options) (*goopenai.Client, error) {
	if len(opt.token) == 0 {
		return nil, errors.New("missing the Groq API key, set it in the GROQ_API_KEY environment variable")
	}

	config := goopenai.DefaultConfig(opt.token)
	config.BaseURL = opt.baseURL
	if opt.httpClient != nil {
		config.HTTPClient = opt.httpClient
	}

	return goopenai.NewClientWithConfig(config), nil
}

// New returns a new Groq LLM.
func New(opts ...Option) (*LLM, error) {
	option := &options{
		baseURL:    _defaultBaseURL,
		httpClient: http.DefaultClient,
		model:      _defaultModel,
	}
	for _, opt := range opts {
		opt(option)
	}
	c, err := newClient(option)
	if err != nil {
		return nil, err
	}
	return &LLM{
		client: c,
		model:  option.model,
	}, nil
}

// GenerateContent implements the llm.LLM interface. Groq completions are
// requested without streaming, the full generation comes back in one
// response.
func (l *LLM) GenerateContent(ctx context.Context, messages []llm.Message, options ...llm.GenerateOption) (*llm.Generation, error) {
	opts := llm.DefaultGenerateOption()
	for _, opt := range options {
		opt(opts)
	}

	msgs := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, mc := range messages {
		msgs = append(msgs, goopenai.ChatCompletionMessage{
			Role:       string(mc.Role),
			Name:       mc.Name,
			Content:    mc.Content,
			ToolCallID: mc.ToolCallId,
		})
	}
	req := goopenai.ChatCompletionRequest{
		Model:       l.model,
		Stop:        opts.StopWords,
		Messages:    msgs,
		Temperature: float32(opts.Temperature),
		TopP:        float32(opts.TopP),
		MaxTokens:   opts.MaxTokens,
	}

	if opts.JSONMode {
		req.ResponseFormat = &goopenai.ChatCompletionResponseFormat{Type: "json_object"}
	}

	resp, err := l.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("groq returned no choices")
	}

	choice := resp.Choices[0]
	generation := &llm.Generation{
		Role:       choice.Message.Role,
		Content:    choice.Message.Content,
		StopReason: fmt.Sprint(choice.FinishReason),
		Usage: &llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	for _, call := range choice.Message.ToolCalls {
		generation.ToolCalls = append(generation.ToolCalls, llm.ToolCall{
			ID:   call.ID,
			Type: string(call.Type),
			Function: &llm.FunctionCall{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			},
		})
	}

	if opts.StreamingFunc != nil && generation.Content != "" {
		_ = opts.StreamingFunc(ctx, []byte(generation.Content))
	}

	return generation, nil
}

func (l *LLM) Generate(ctx context.Context, prompt string, options ...llm.GenerateOption) (*llm.Generation, error) {
	message := llm.NewUserMessage("", prompt)
	return l.GenerateContent(ctx, []llm.Message{message}, options...)
}
