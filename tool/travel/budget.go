package travel

import (
	"context"
	"fmt"
	"strings"

	"github.com/antgroup/tripmate/tool"
	"github.com/antgroup/tripmate/utils/json"
)

const (
	_defaultDailyExpense = 2000

	// advisory thresholds, presentation hints only
	_highTotalThreshold   = 30000
	_highNightlyThreshold = 4000
)

// BudgetTool estimates a total trip cost. It is a pure calculation and
// touches no dataset.
type BudgetTool struct {
	dailyExpense float64
}

var _ tool.Tool = &BudgetTool{}

type budgetQuery struct {
	FlightPrice        float64  `json:"flight_price"`
	HotelPricePerNight float64  `json:"hotel_price_per_night"`
	NumNights          int      `json:"num_nights"`
	DailyExpense       *float64 `json:"daily_expense"`
}

// Breakdown is the numeric result of a budget estimation.
type Breakdown struct {
	FlightCost     float64 `json:"flight_cost"`
	HotelCost      float64 `json:"hotel_cost"`
	FoodTravelCost float64 `json:"food_travel_cost"`
	TotalCost      float64 `json:"total_cost"`
	PerDayAverage  float64 `json:"per_day_average"`
}

// NewBudgetTool creates a new budget estimation tool.
func NewBudgetTool(opts ...Option) (*BudgetTool, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &BudgetTool{
		dailyExpense: options.DailyExpense,
	}, nil
}

// Name returns the name of the tool.
func (t *BudgetTool) Name() string {
	return "BudgetEstimation"
}

// Description returns the description of the tool.
func (t *BudgetTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Calculate the total trip budget from flight, hotel and daily expenses.
Returns a detailed budget breakdown with the total cost.
Input must be json schema: ` + string(bytes) + `
Example Input: {"flight_price": 4800, "hotel_price_per_night": 3200, "num_nights": 4, "daily_expense": 2000}`
}

func (t *BudgetTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"flight_price": {
				Type:        tool.TypeNumber,
				Description: "Cost of the flight",
			},
			"hotel_price_per_night": {
				Type:        tool.TypeNumber,
				Description: "Hotel cost per night",
			},
			"num_nights": {
				Type:        tool.TypeInt,
				Description: "Number of nights, default 1",
			},
			"daily_expense": {
				Type:        tool.TypeNumber,
				Description: "Daily expense for food and local travel, default 2000",
			},
		},
		Required: []string{"flight_price", "hotel_price_per_night", "num_nights"},
	}
}

func (t *BudgetTool) Strict() bool {
	return true
}

// Call calculates the budget.
func (t *BudgetTool) Call(_ context.Context, input string) (string, error) {
	var query budgetQuery
	if msg := decodeInput(input, &query); msg != "" {
		return msg, nil
	}

	nights := query.NumNights
	if nights < 1 {
		nights = 1
	}
	daily := t.dailyExpense
	if query.DailyExpense != nil {
		daily = *query.DailyExpense
	}

	breakdown := EstimateBreakdown(query.FlightPrice, query.HotelPricePerNight, nights, daily)

	var sb strings.Builder
	sb.WriteString("Budget Breakdown\n")
	sb.WriteString(divider())
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Flight Cost:         %.0f\n", breakdown.FlightCost))
	sb.WriteString(fmt.Sprintf("Hotel (%d nights):    %.0f\n", nights, breakdown.HotelCost))
	sb.WriteString(fmt.Sprintf("    (%.0f per night)\n", query.HotelPricePerNight))
	sb.WriteString(fmt.Sprintf("Food & Local Travel: %.0f\n", breakdown.FoodTravelCost))
	sb.WriteString(fmt.Sprintf("    (%.0f per day x %d days)\n", daily, nights+1))
	sb.WriteString("\n")
	sb.WriteString(rule())
	sb.WriteString(fmt.Sprintf("Total Estimated Cost: %.0f\n", breakdown.TotalCost))
	sb.WriteString(divider())

	sb.WriteString("\nBudget Tips:\n")
	if breakdown.TotalCost > _highTotalThreshold {
		sb.WriteString("  - Consider booking in advance for better rates\n")
	}
	if query.HotelPricePerNight > _highNightlyThreshold {
		sb.WriteString("  - Look for hotels slightly away from tourist hotspots\n")
	}
	sb.WriteString("  - Use local transport to save on daily expenses\n")
	sb.WriteString("  - Try local eateries for authentic and affordable food\n")

	return sb.String(), nil
}

// EstimateBreakdown computes the budget numbers. The incidental total
// covers nights+1 days; the arrival day has no preceding night.
func EstimateBreakdown(flightPrice, hotelPricePerNight float64, numNights int, dailyExpense float64) Breakdown {
	hotelTotal := hotelPricePerNight * float64(numNights)
	foodTravelTotal := dailyExpense * float64(numNights+1)
	total := flightPrice + hotelTotal + foodTravelTotal
	return Breakdown{
		FlightCost:     flightPrice,
		HotelCost:      hotelTotal,
		FoodTravelCost: foodTravelTotal,
		TotalCost:      total,
		PerDayAverage:  total / float64(numNights+1),
	}
}

// EstimateDailyExpense guesses a daily expense from the destination tier.
func EstimateDailyExpense(destinationCity string) float64 {
	tier1 := []string{"mumbai", "delhi", "bangalore"}
	tier2 := []string{"goa", "jaipur", "udaipur", "shimla", "manali"}

	city := strings.ToLower(strings.TrimSpace(destinationCity))
	for _, c := range tier1 {
		if city == c {
			return 2500
		}
	}
	for _, c := range tier2 {
		if city == c {
			return 2000
		}
	}
	return 1500
}
