package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/antgroup/tripmate/llm"
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
		return nil, errors.New("missing the OpenAI API key, set it in the OPENAI_API_KEY environment variable")
	}

	config := goopenai.DefaultConfig(opt.token)
	if opt.baseURL != "" {
		config.BaseURL = opt.baseURL
	}
	if opt.httpClient != nil {
		config.HTTPClient = opt.httpClient
	}

	return goopenai.NewClientWithConfig(config), nil
}

// New returns a new OpenAI LLM.
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

// GenerateContent implements the llm.LLM interface.
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
			ToolCalls:  llmToolCall2ToolCall(mc.ToolCalls),
		})
	}
	req := goopenai.ChatCompletionRequest{
		Model:    l.model,
		Stop:     opts.StopWords,
		Messages: msgs,
		Stream:   true,
		StreamOptions: &goopenai.StreamOptions{
			IncludeUsage: true,
		},
		Temperature: float32(opts.Temperature),
		TopP:        float32(opts.TopP),

		MaxCompletionTokens: opts.MaxTokens,
	}

	if opts.JSONMode {
		req.ResponseFormat = &goopenai.ChatCompletionResponseFormat{Type: "json_object"}
	}

	for _, tool := range opts.Tools {
		t, err := toolFromTool(&tool)
		if err != nil {
			return nil, fmt.Errorf("failed to convert llm tool to openai tool: %w", err)
		}
		req.Tools = append(req.Tools, t)
	}

	streamer, err := l.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, err
	}

	response := &llm.Generation{
		Usage: &llm.Usage{},
	}

	for {
		recv, err := streamer.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if len(recv.Choices) > 0 {
			if recv.Choices[0].Delta.ToolCalls != nil {
				toolCall2LLMToolCall(response, recv.Choices[0].Delta.ToolCalls)
			}
			if recv.Choices[0].FinishReason != "" {
				response.StopReason = fmt.Sprint(recv.Choices[0].FinishReason)
			}
			if recv.Choices[0].Delta.Role != "" {
				response.Role = recv.Choices[0].Delta.Role
			}
			response.Content += recv.Choices[0].Delta.Content
			response.ReasoningContent += recv.Choices[0].Delta.ReasoningContent
			if opts.StreamingFunc != nil && recv.Choices[0].Delta.Content != "" {
				_ = opts.StreamingFunc(ctx, []byte(recv.Choices[0].Delta.Content))
			}
		}
		if recv.Usage != nil {
			response.Usage.PromptTokens = recv.Usage.PromptTokens
			response.Usage.TotalTokens = recv.Usage.TotalTokens
			response.Usage.CompletionTokens = recv.Usage.CompletionTokens
		}
	}

	return response, nil
}

func (l *LLM) Generate(ctx context.Context, prompt string, options ...llm.GenerateOption) (*llm.Generation, error) {
	message := llm.NewUserMessage("", prompt)
	return l.GenerateContent(ctx, []llm.Message{message}, options...)
}

// toolFromTool converts an llm.Tool to an openai Tool.
func toolFromTool(t *llm.Tool) (goopenai.Tool, error) {
	tool := goopenai.Tool{
		Type: goopenai.ToolType(t.Type),
	}
	switch t.Type {
	case string(goopenai.ToolTypeFunction):
		tool.Function = &goopenai.FunctionDefinition{
			Name:        t.Function.Name,
			Description: t.Function.Description,
			Parameters:  t.Function.Parameters,
			Strict:      t.Function.Strict,
		}
	default:
		return goopenai.Tool{}, fmt.Errorf("tool type %v not supported", t.Type)
	}
	return tool, nil
}

func llmToolCall2ToolCall(toolCalls []llm.ToolCall) []goopenai.ToolCall {
	if len(toolCalls) == 0 {
		return nil
	}
	calls := make([]goopenai.ToolCall, 0, len(toolCalls))
	for _, call := range toolCalls {
		calls = append(calls, goopenai.ToolCall{
			ID:   call.ID,
			Type: goopenai.ToolType(call.Type),
			Function: goopenai.FunctionCall{
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			},
		})
	}
	return calls
}

// toolCall2LLMToolCall merges streamed tool call deltas into the generation,
// accumulating arguments chunk by chunk at each call index.
func toolCall2LLMToolCall(generation *llm.Generation, toolCalls []goopenai.ToolCall) {
	if len(toolCalls) == 0 {
		return
	}
	if len(generation.ToolCalls) == 0 {
		generation.ToolCalls = make([]llm.ToolCall, 0, len(toolCalls))
	}

	for idx, call := range toolCalls {
		if call.Index != nil {
			idx = *call.Index
		}
		for i := len(generation.ToolCalls); i <= idx; i++ {
			generation.ToolCalls = append(generation.ToolCalls, llm.ToolCall{
				Function: &llm.FunctionCall{},
			})
		}
		if call.ID != "" {
			generation.ToolCalls[idx].ID = call.ID
		}
		if call.Type != "" {
			generation.ToolCalls[idx].Type = string(call.Type)
		}
		generation.ToolCalls[idx].Function.Arguments += call.Function.Arguments
		generation.ToolCalls[idx].Function.Name += call.Function.Name
	}
}
