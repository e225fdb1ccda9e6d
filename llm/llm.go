package llm

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one turn of a chat conversation sent to the model.
type Message struct {
	Role       Role
	Name       string
	Content    string
	ToolCallId string
	ToolCalls  []ToolCall
}

func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func NewUserMessage(name, content string) Message {
	return Message{Role: RoleUser, Name: name, Content: content}
}

func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Generation is the output of a single model call.
type Generation struct {
	Role             string
	Content          string
	ReasoningContent string
	StopReason       string
	ToolCalls        []ToolCall
	Usage            *Usage
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type ToolCall struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Function *FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool describes a callable function for Function Calling APIs.
type Tool struct {
	Type     string
	Function *FunctionDefinition
}

type FunctionDefinition struct {
	Name        string
	Description string
	Parameters  any
	Strict      bool
}

// LLM is the interface all model clients must implement.
type LLM interface {
	Generate(ctx context.Context, prompt string, options ...GenerateOption) (*Generation, error)

	GenerateContent(ctx context.Context, messages []Message, options ...GenerateOption) (*Generation, error)
}
