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

const _defaultMinPlaceRating = 3.5

type PlaceTool struct {
	data []Place
	path string
}

var _ tool.Tool = &PlaceTool{}

type placeQuery struct {
	City      string   `json:"city"`
	Category  string   `json:"category"`
	MinRating *float64 `json:"min_rating"`
}

// NewPlaceTool creates a new places discovery tool.
func NewPlaceTool(opts ...Option) (*PlaceTool, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	path := options.PlacesPath
	if path == "" {
		path = filepath.Join(options.DataDir, "places.json")
	}
	store := options.Store
	if store == nil {
		store = NewStore()
	}

	data, err := store.Places(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load place data: %w", err)
	}

	return &PlaceTool{
		data: data,
		path: path,
	}, nil
}

// Name returns the name of the tool.
func (t *PlaceTool) Name() string {
	return "PlacesDiscovery"
}

// Description returns the description of the tool.
func (t *PlaceTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Discover tourist attractions and places to visit in a city.
Returns places with name, category, rating and description.
Input must be json schema: ` + string(bytes) + `
Example Input: {"city": "Goa", "category": "beach", "min_rating": 4.0}`
}

func (t *PlaceTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"city": {
				Type:        tool.TypeString,
				Description: "The city to discover places in",
			},
			"category": {
				Type:        tool.TypeString,
				Description: "Optional place category, e.g. 'beach', 'temple', 'museum'",
			},
			"min_rating": {
				Type:        tool.TypeNumber,
				Description: "Minimum rating, default 3.5",
			},
		},
		Required: []string{"city"},
	}
}

func (t *PlaceTool) Strict() bool {
	return true
}

// Call searches for places.
func (t *PlaceTool) Call(_ context.Context, input string) (string, error) {
	var query placeQuery
	if msg := decodeInput(input, &query); msg != "" {
		return msg, nil
	}

	city := strings.TrimSpace(query.City)
	if city == "" {
		return "Error: city is required.", nil
	}
	category := strings.TrimSpace(query.Category)
	minRating := _defaultMinPlaceRating
	if query.MinRating != nil {
		minRating = *query.MinRating
	}

	return t.searchPlaces(city, category, minRating), nil
}

func (t *PlaceTool) searchPlaces(city, category string, minRating float64) string {
	inCity := funk.Filter(t.data, func(p Place) bool {
		return strings.EqualFold(p.City, city)
	}).([]Place)

	if len(inCity) == 0 {
		return fmt.Sprintf("No places found in %s.", city)
	}

	filtered := funk.Filter(inCity, func(p Place) bool {
		if category != "" && !strings.EqualFold(p.Type, category) {
			return false
		}
		return p.Rating >= minRating
	}).([]Place)

	if len(filtered) == 0 {
		criteria := ""
		if category != "" {
			criteria = fmt.Sprintf(" in category '%s'", category)
		}
		return fmt.Sprintf("No places found in %s%s matching your criteria.", city, criteria)
	}

	sort.SliceStable(filtered, func(a, b int) bool {
		return filtered[a].Rating > filtered[b].Rating
	})

	top := filtered
	if len(top) > 5 {
		top = top[:5]
	}

	categoryText := ""
	if category != "" {
		categoryText = fmt.Sprintf(" (%s)", category)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d places in %s%s (showing top 5).\n\n", len(filtered), city, categoryText))
	sb.WriteString("Recommended Places:\n")
	sb.WriteString(divider())
	for i, p := range top {
		sb.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, p.Name))
		sb.WriteString(fmt.Sprintf("   Category: %s\n", p.Type))
		sb.WriteString(fmt.Sprintf("   Rating: %g\n", p.Rating))
		if p.Description != "" {
			sb.WriteString(fmt.Sprintf("   Description: %s\n", p.Description))
		}
		sb.WriteString(fmt.Sprintf("   Place ID: %s\n", p.PlaceID))
		sb.WriteString(rule())
	}
	return sb.String()
}
