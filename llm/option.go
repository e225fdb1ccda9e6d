package llm

import "context"

type GenerateOptions struct {
	Temperature   float64
	TopP          float64
	MaxTokens     int
	StopWords     []string
	JSONMode      bool
	Tools         []Tool
	StreamingFunc func(ctx context.Context, chunk []byte) error
}

type GenerateOption func(*GenerateOptions)

func DefaultGenerateOption() *GenerateOptions {
	return &GenerateOptions{
		Temperature: 0.7,
		TopP:        1.0,
		MaxTokens:   4096,
	}
}

func WithTemperature(temperature float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temperature
	}
}

func WithTopP(topP float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.TopP = topP
	}
}

func WithMaxTokens(maxTokens int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = maxTokens
	}
}

func WithStopWords(stopWords []string) GenerateOption {
	return func(o *GenerateOptions) {
		o.StopWords = stopWords
	}
}

func WithJSONMode(jsonMode bool) GenerateOption {
	return func(o *GenerateOptions) {
		o.JSONMode = jsonMode
	}
}

func WithTools(tools []Tool) GenerateOption {
	return func(o *GenerateOptions) {
		o.Tools = tools
	}
}

func WithStreamingFunc(fn func(ctx context.Context, chunk []byte) error) GenerateOption {
	return func(o *GenerateOptions) {
		o.StreamingFunc = fn
	}
}
