package tool

import "context"

type Type string

const (
	TypeJson   Type = "object"
	TypeString Type = "string"
	TypeNumber Type = "number"
	TypeInt    Type = "integer"
	TypeBool   Type = "boolean"
	TypeArray  Type = "array"
)

// PropertySchema describes one parameter of a tool.
type PropertySchema struct {
	Type        Type   `json:"type"`
	Description string `json:"description,omitempty"`
}

// PropertiesSchema is the JSON schema of a tool's input object,
// in the shape expected by Function Calling APIs.
type PropertiesSchema struct {
	Type       Type                      `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// Tool is the interface all tools must implement.
//
// Call receives the raw JSON argument string produced by the LLM and
// returns a user-facing text report. User-correctable problems (bad
// JSON, missing fields, empty results) are reported in the returned
// string, not as errors, so that they flow back into the agent's
// observation instead of aborting the run.
type Tool interface {
	Name() string

	Description() string

	Schema() *PropertiesSchema

	Strict() bool

	Call(ctx context.Context, input string) (string, error)
}
