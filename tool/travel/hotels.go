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
	"github.com/tidwall/match"
)

const _defaultMinStars = 3

type HotelTool struct {
	data []Hotel
	path string
}

var _ tool.Tool = &HotelTool{}

type hotelQuery struct {
	City             string   `json:"city"`
	MinRating        *float64 `json:"min_rating"`
	MaxPricePerNight *float64 `json:"max_price_per_night"`
	Amenity          string   `json:"amenity"`
}

// NewHotelTool creates a new hotel recommendation tool.
func NewHotelTool(opts ...Option) (*HotelTool, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	path := options.HotelsPath
	if path == "" {
		path = filepath.Join(options.DataDir, "hotels.json")
	}
	store := options.Store
	if store == nil {
		store = NewStore()
	}

	data, err := store.Hotels(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel data: %w", err)
	}

	return &HotelTool{
		data: data,
		path: path,
	}, nil
}

// Name returns the name of the tool.
func (t *HotelTool) Name() string {
	return "HotelRecommendation"
}

// Description returns the description of the tool.
func (t *HotelTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Find hotel recommendations in a city.
Returns hotel options with name, star rating, nightly price and amenities.
Input must be json schema: ` + string(bytes) + `
Example Input: {"city": "Goa", "min_rating": 4, "max_price_per_night": 5000}`
}

func (t *HotelTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"city": {
				Type:        tool.TypeString,
				Description: "The city where you're seeking a hotel",
			},
			"min_rating": {
				Type:        tool.TypeNumber,
				Description: "Minimum star rating from 1 to 5, default 3",
			},
			"max_price_per_night": {
				Type:        tool.TypeNumber,
				Description: "Maximum nightly price, unlimited when omitted",
			},
			"amenity": {
				Type:        tool.TypeString,
				Description: "Required amenity, wildcard patterns allowed, e.g. 'pool' or 'wifi*'",
			},
		},
		Required: []string{"city"},
	}
}

func (t *HotelTool) Strict() bool {
	return true
}

// Call searches for hotels.
func (t *HotelTool) Call(_ context.Context, input string) (string, error) {
	var query hotelQuery
	if msg := decodeInput(input, &query); msg != "" {
		return msg, nil
	}

	city := strings.TrimSpace(query.City)
	if city == "" {
		return "Error: city is required.", nil
	}
	minStars := float64(_defaultMinStars)
	if query.MinRating != nil {
		minStars = *query.MinRating
	}

	return t.searchHotels(city, minStars, query.MaxPricePerNight, strings.TrimSpace(query.Amenity)), nil
}

func (t *HotelTool) searchHotels(city string, minStars float64, maxPrice *float64, amenity string) string {
	inCity := funk.Filter(t.data, func(h Hotel) bool {
		return strings.EqualFold(h.City, city)
	}).([]Hotel)

	if len(inCity) == 0 {
		return fmt.Sprintf("No hotels found in %s.", city)
	}

	filtered := funk.Filter(inCity, func(h Hotel) bool {
		if h.Stars < minStars {
			return false
		}
		if maxPrice != nil && float64(h.PricePerNight) > *maxPrice {
			return false
		}
		if amenity != "" && !hasAmenity(h, amenity) {
			return false
		}
		return true
	}).([]Hotel)

	if len(filtered) == 0 {
		return fmt.Sprintf("No hotels found in %s matching your criteria.", city)
	}

	// stars descending, then price ascending
	sort.SliceStable(filtered, func(a, b int) bool {
		if filtered[a].Stars != filtered[b].Stars {
			return filtered[a].Stars > filtered[b].Stars
		}
		return filtered[a].PricePerNight < filtered[b].PricePerNight
	})

	top := filtered
	if len(top) > 3 {
		top = top[:3]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d hotels in %s (showing top 3).\n\n", len(filtered), city))
	sb.WriteString("Recommended Hotels:\n")
	sb.WriteString(divider())
	for i, h := range top {
		sb.WriteString(fmt.Sprintf("\nOption %d:\n", i+1))
		sb.WriteString(fmt.Sprintf("  Name: %s\n", h.Name))
		sb.WriteString(fmt.Sprintf("  Star Rating: %g\n", h.Stars))
		sb.WriteString(fmt.Sprintf("  Price: %d/night\n", h.PricePerNight))
		if len(h.Amenities) > 0 {
			sb.WriteString(fmt.Sprintf("  Amenities: %s\n", strings.Join(h.Amenities, ", ")))
		}
		sb.WriteString(fmt.Sprintf("  Hotel ID: %s\n", h.HotelID))
		sb.WriteString(rule())
	}
	return sb.String()
}

func hasAmenity(h Hotel, pattern string) bool {
	pattern = strings.ToLower(pattern)
	return funk.Contains(h.Amenities, func(a string) bool {
		return match.Match(strings.ToLower(a), pattern)
	})
}
