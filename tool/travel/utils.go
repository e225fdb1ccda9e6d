package travel

import (
	"math"
	"strings"
	"time"

	"github.com/antgroup/tripmate/utils/json"
	"github.com/mitchellh/mapstructure"
)

// decodeInput parses the raw JSON argument string into a typed query
// struct. It returns a user-facing error text on failure and "" on
// success; tools report that text instead of raising across the
// tool boundary.
func decodeInput(input string, out any) string {
	var raw map[string]any
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return "Error: invalid JSON format, please try again."
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return "Error: invalid JSON format, please try again."
	}
	if err := decoder.Decode(raw); err != nil {
		return "Error: invalid parameters: " + err.Error()
	}
	return ""
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// durationHours derives the flight duration in hours, rounded to one
// decimal. Unparsable timestamps yield 0.
func durationHours(f Flight) float64 {
	if f.DurationHours != nil {
		return *f.DurationHours
	}
	dep, okDep := parseTimestamp(f.DepartureTime)
	arr, okArr := parseTimestamp(f.ArrivalTime)
	if !okDep || !okArr {
		return 0
	}
	return math.Round(arr.Sub(dep).Hours()*10) / 10
}

// clockTime extracts HH:MM from a timestamp string for display.
func clockTime(value string) string {
	if idx := strings.Index(value, "T"); idx != -1 && len(value) >= idx+6 {
		return value[idx+1 : idx+6]
	}
	if value == "" {
		return "N/A"
	}
	return value
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func divider() string {
	return strings.Repeat("=", 50) + "\n"
}

func rule() string {
	return strings.Repeat("-", 50) + "\n"
}
