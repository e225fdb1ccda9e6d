package json

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/match"
	"github.com/tidwall/pretty"
)

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MarshalPretty marshals v and reformats the result for human output.
func MarshalPretty(v any) ([]byte, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(bytes), nil
}

// TrimJsonString strips markdown code fences and surrounding prose that
// LLMs tend to wrap around JSON output, returning the bare JSON text.
func TrimJsonString(content string) string {
	content = strings.TrimSpace(content)

	if match.Match(content, "```*") {
		lines := strings.Split(content, "\n")
		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			if match.Match(strings.TrimSpace(line), "```*") {
				continue
			}
			kept = append(kept, line)
		}
		content = strings.TrimSpace(strings.Join(kept, "\n"))
	}

	// cut leading prose before the first brace or bracket
	objIdx := strings.IndexAny(content, "{[")
	if objIdx > 0 {
		content = content[objIdx:]
	}
	// cut trailing prose after the last closing brace or bracket
	if end := strings.LastIndexAny(content, "}]"); end != -1 && end < len(content)-1 {
		content = content[:end+1]
	}
	return strings.TrimSpace(content)
}
