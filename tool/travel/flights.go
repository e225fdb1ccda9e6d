package travel

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/antgroup/tripmate/tool"
	"github.com/antgroup/tripmate/utils/json"
	"github.com/thoas/go-funk"
)

const (
	preferenceCheapest = "cheapest"
	preferenceFastest  = "fastest"
)

type FlightTool struct {
	data []Flight
	path string
}

var _ tool.Tool = &FlightTool{}

type flightQuery struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Preference  string `json:"preference"`
}

// NewFlightTool creates a new flight search tool.
func NewFlightTool(opts ...Option) (*FlightTool, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	path := options.FlightsPath
	if path == "" {
		path = filepath.Join(options.DataDir, "flights.json")
	}
	store := options.Store
	if store == nil {
		store = NewStore()
	}

	data, err := store.Flights(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight data: %w", err)
	}

	return &FlightTool{
		data: data,
		path: path,
	}, nil
}

// Name returns the name of the tool.
func (t *FlightTool) Name() string {
	return "FlightSearch"
}

// Description returns the description of the tool.
func (t *FlightTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Search for flights between two cities.
Returns the top options with airline, price, duration and departure time.
Input must be json schema: ` + string(bytes) + `
Example Input: {"source": "Delhi", "destination": "Goa", "preference": "cheapest"}`
}

func (t *FlightTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"source": {
				Type:        tool.TypeString,
				Description: "The city you're flying out from",
			},
			"destination": {
				Type:        tool.TypeString,
				Description: "The city you want to reach",
			},
			"preference": {
				Type:        tool.TypeString,
				Description: "Sort preference, either 'cheapest' (default) or 'fastest'",
			},
		},
		Required: []string{"source", "destination"},
	}
}

func (t *FlightTool) Strict() bool {
	return true
}

// Call searches for flights.
func (t *FlightTool) Call(_ context.Context, input string) (string, error) {
	var query flightQuery
	if msg := decodeInput(input, &query); msg != "" {
		return msg, nil
	}

	source := strings.TrimSpace(query.Source)
	destination := strings.TrimSpace(query.Destination)
	preference := strings.ToLower(strings.TrimSpace(query.Preference))
	if preference == "" {
		preference = preferenceCheapest
	}

	if source == "" || destination == "" {
		return "Error: both source and destination are required.", nil
	}

	return t.searchFlights(source, destination, preference), nil
}

func (t *FlightTool) searchFlights(source, destination, preference string) string {
	matches := funk.Filter(t.data, func(f Flight) bool {
		return strings.EqualFold(f.From, source) &&
			strings.EqualFold(f.To, destination)
	}).([]Flight)

	if len(matches) == 0 {
		return fmt.Sprintf("No flights found from %s to %s.", source, destination)
	}

	durations := make([]float64, len(matches))
	for i, f := range matches {
		durations[i] = durationHours(f)
	}

	// stable sort keeps original relative order on ties
	index := make([]int, len(matches))
	for i := range index {
		index[i] = i
	}
	sort.SliceStable(index, func(a, b int) bool {
		if preference == preferenceFastest {
			return durations[index[a]] < durations[index[b]]
		}
		return matches[index[a]].Price < matches[index[b]].Price
	})

	top := index
	if len(top) > 3 {
		top = top[:3]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d flights from %s to %s.\n\n", len(matches), source, destination))
	sb.WriteString("Top 3 Options:\n")
	sb.WriteString(divider())
	for i, idx := range top {
		f := matches[idx]
		sb.WriteString(fmt.Sprintf("\nOption %d:\n", i+1))
		sb.WriteString(fmt.Sprintf("  Airline: %s\n", f.Airline))
		sb.WriteString(fmt.Sprintf("  Price: %d\n", f.Price))
		sb.WriteString(fmt.Sprintf("  Duration: %g hours\n", durations[idx]))
		sb.WriteString(fmt.Sprintf("  Departure: %s\n", clockTime(f.DepartureTime)))
		sb.WriteString(fmt.Sprintf("  Flight ID: %s\n", f.FlightID))
		sb.WriteString(rule())
	}
	return sb.String()
}
