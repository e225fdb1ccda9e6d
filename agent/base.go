package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/antgroup/tripmate/callback"
	"github.com/antgroup/tripmate/llm"
	"github.com/antgroup/tripmate/prompt"
	"github.com/antgroup/tripmate/schema"
	"github.com/antgroup/tripmate/tool"
	utilsjson "github.com/antgroup/tripmate/utils/json"
	"github.com/google/uuid"
)

var _ schema.Agent = (*BaseAgent)(nil)

type BaseAgent struct {
	name string
	desc string
	role string

	llm llm.LLM
	// tools is a list of the actions the agent can take.
	tools           []tool.Tool
	useFunctionCall bool

	callback callback.Handler
	prompt   prompt.Template

	filterMemoryFunc func([]schema.Message) []schema.Message
	parseOutputFunc  func(string, *llm.Generation) ([]schema.StepAction, []schema.Message, error)

	MaxIterations int
	vars          map[string]string
}

func NewBaseAgent(opts ...Option) (*BaseAgent, error) {
	options := &Options{
		Vars: make(map[string]string),
	}
	option := append(defaultBaseOptions(), opts...)
	for _, opt := range option {
		opt(options)
	}

	p := options.prompt + options.instruction + options.suffix
	if p == "" {
		return nil, schema.ErrMissingPrompt
	}
	if options.name == "" {
		return nil, schema.ErrMissingName
	}
	if options.desc == "" {
		return nil, schema.ErrMissingDesc
	}
	if options.LLM == nil {
		return nil, schema.ErrMissingLLM
	}

	template, err := prompt.NewPromptTemplate(p)
	if err != nil {
		return nil, err
	}
	base := &BaseAgent{
		name: options.name,
		desc: options.desc,
		role: options.role,

		llm:             options.LLM,
		tools:           options.Tools,
		useFunctionCall: options.useFunctionCall,
		callback:        options.Callback,

		MaxIterations:    options.MaxIterations,
		filterMemoryFunc: options.FilterMemoryFunc,
		parseOutputFunc:  options.ParseOutputFunc,

		prompt: template,
		vars:   options.Vars,
	}
	return base, nil
}

// Run drives the plan and act loop until the agent produces an END message
// or MaxIterations is exhausted.
func (ba *BaseAgent) Run(ctx context.Context,
	messages []schema.Message, opts ...llm.GenerateOption) (*schema.Generation, error) {
	run := uuid.NewString()
	steps := make([]schema.StepAction, 0)
	tokens := 0
	if ba.filterMemoryFunc != nil {
		messages = ba.filterMemoryFunc(messages)
	}
	for i := 0; i < ba.MaxIterations; i++ {
		actions, msgs, cost, err := ba.Plan(ctx, run, messages, steps, opts...)
		if err != nil {
			return nil, err
		}
		tokens += cost

		for idx := range actions {
			ba.doAction(ctx, run, &actions[idx])
		}
		steps = append(steps, actions...)

		if len(actions) == 0 && len(msgs) == 0 {
			return nil, schema.ErrAgentNoReturn
		}

		for idx := range msgs {
			if msgs[idx].IsEnd() {
				msgs[idx].Token = tokens
				return &schema.Generation{
					RunId:       run,
					Messages:    msgs[idx : idx+1],
					TotalTokens: tokens,
				}, nil
			}
			// a plain message is not an answer, push it back as feedback
			steps = append(steps, schema.StepAction{
				Log:      msgs[idx].Content,
				Feedback: "respond with a tool action or an END message",
			})
		}
	}
	return nil, schema.ErrNotFinished
}

// Plan renders the prompt, calls the model once and parses its output into
// actions or messages. A parse failure is converted into a feedback step so
// the next iteration can correct itself.
func (ba *BaseAgent) Plan(ctx context.Context, run string, messages []schema.Message,
	steps []schema.StepAction, opts ...llm.GenerateOption) (
	[]schema.StepAction, []schema.Message, int, error) {
	inputs := make(map[string]any, 10)

	for key, value := range ba.vars {
		inputs[key] = value
	}

	if ba.useFunctionCall {
		opts = append(opts, llm.WithTools(ConvertToolToFunctionDefinition(ba.Tools())))
	}
	inputs["tool_names"] = schema.ConvertToolNames(ba.tools)
	inputs["tool_descriptions"] = schema.ConvertToolDescriptions(ba.tools)

	inputs["name"] = ba.name
	inputs["description"] = ba.desc
	inputs["role"] = ba.role
	inputs["history"] = schema.ConvertConstructScratchPad(ba.name, "me", messages, steps)
	inputs["current"] = time.Now().Format("2006-01-02 15:04:05")

	question := ""
	if len(messages) > 0 {
		question = messages[0].Content
	}
	inputs["question"] = question

	p, err := ba.prompt.Format(inputs)
	if err != nil {
		return nil, nil, 0, err
	}

	if ba.callback != nil {
		ba.callback.HandleLLMStart(ctx, run, p)
		opts = append(opts, llm.WithStreamingFunc(
			ba.callback.HandleStreamingFunc))
	}

	output, err := ba.llm.Generate(ctx, p, opts...)
	if err != nil {
		return nil, nil, 0, err
	}
	if ba.callback != nil {
		ba.callback.HandleLLMEnd(ctx, run, output)
	}

	cost := 0
	if output.Usage != nil {
		cost = output.Usage.TotalTokens
	}

	actions, msgs, err := ba.parseOutputFunc(ba.name, output)
	if err != nil {
		feedback := schema.StepAction{
			Feedback: "parse output failed with error: " + err.Error(),
			Log:      output.Content,
		}
		return []schema.StepAction{feedback}, nil, cost, nil
	}
	return actions, msgs, cost, nil
}

func (ba *BaseAgent) doAction(
	ctx context.Context, run string, action *schema.StepAction) {
	if action.Action == "" {
		return
	}
	if ba.callback != nil {
		ba.callback.HandleAgentActionStart(ctx, run, ba.name, action)
	}

	t := ba.getAction(action.Action)
	if t == nil {
		action.Observation = fmt.Sprintf(
			"%s is not a valid tool, please choose one of [%s]",
			action.Action, schema.ConvertToolNames(ba.tools))
		return
	}

	observation, err := t.Call(ctx, action.Input)
	if err != nil {
		action.Observation = "tool failed with error: " + err.Error()
	} else {
		action.Observation = observation
	}

	if ba.callback != nil {
		ba.callback.HandleAgentActionEnd(ctx, run, ba.name, action)
	}
}

func (ba *BaseAgent) getAction(name string) tool.Tool {
	for _, a := range ba.tools {
		if strings.EqualFold(a.Name(), name) {
			return a
		}
	}
	return nil
}

func (ba *BaseAgent) Name() string {
	return ba.name
}

func (ba *BaseAgent) Description() string {
	return ba.desc
}

func (ba *BaseAgent) Tools() []tool.Tool {
	return ba.tools
}

func ConvertToolToFunctionDefinition(tools []tool.Tool) []llm.Tool {
	convertedTools := make([]llm.Tool, 0)
	for _, t := range tools {
		if t == nil {
			continue
		}
		convertedTools = append(convertedTools, llm.Tool{
			Type: "function",
			Function: &llm.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Schema(),
				Strict:      t.Strict(),
			},
		})
	}
	return convertedTools
}

func parseOutput(name string, output *llm.Generation) ([]schema.StepAction, []schema.Message, error) {
	if len(output.ToolCalls) > 0 {
		return parseToolCalls(output.ToolCalls), nil, nil
	}
	content := strings.TrimSpace(output.Content)
	if content == "" {
		return nil, nil, errors.New("content is empty")
	}
	content = utilsjson.TrimJsonString(content)
	if content == "" {
		return nil, nil, errors.New("no json object found in output")
	}

	action, err := parseAction(content)
	if err != nil {
		return nil, nil, err
	}
	if action != nil {
		return []schema.StepAction{*action}, nil, nil
	}
	message, err := parseMessage(name, content)
	if err != nil {
		return nil, nil, err
	}
	return nil, []schema.Message{*message}, nil
}

func parseToolCalls(toolCalls []llm.ToolCall) []schema.StepAction {
	actions := make([]schema.StepAction, 0, len(toolCalls))
	for _, toolCall := range toolCalls {
		logBytes, _ := json.Marshal(toolCall)
		actions = append(actions, schema.StepAction{
			Action: toolCall.Function.Name,
			Input:  toolCall.Function.Arguments,
			Log:    string(logBytes),
		})
	}
	return actions
}

func parseAction(content string) (*schema.StepAction, error) {
	action := &schema.StepAction{Log: content}
	// action input may be a json object instead of a json string
	actionInput := &schema.StepActionInput{}
	if err := json.Unmarshal([]byte(content), action); err != nil {
		if action.Action == "" {
			return nil, err
		}
	}
	if action.Action == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(content), actionInput); err != nil {
		return nil, err
	}

	switch input := actionInput.Input.(type) {
	case string:
		action.Input = input
	default:
		marshal, _ := json.Marshal(actionInput.Input)
		action.Input = string(marshal)
	}
	return action, nil
}

func parseMessage(name, content string) (*schema.Message, error) {
	message := &schema.Message{Log: content, Sender: name}
	if err := json.Unmarshal([]byte(content), message); err != nil {
		return nil, err
	}
	if message.Type == "" {
		return nil, errors.New("message content missing required 'cate' field")
	}
	if !message.IsEnd() && !message.IsMsg() {
		message.Type = schema.MsgTypeMsg
	}
	return message, nil
}
