package travel

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateBreakdown(t *testing.T) {
	b := EstimateBreakdown(4800, 3200, 4, 2000)

	assert.Equal(t, 4800.0, b.FlightCost)
	assert.Equal(t, 12800.0, b.HotelCost)
	assert.Equal(t, 10000.0, b.FoodTravelCost)
	assert.Equal(t, 27600.0, b.TotalCost)
	assert.Equal(t, 5520.0, b.PerDayAverage)
}

func TestBudgetToolCall(t *testing.T) {
	tool, err := NewBudgetTool()
	if err != nil {
		t.Fatalf("NewBudgetTool() error = %v", err)
	}

	result, err := tool.Call(context.Background(),
		`{"flight_price": 4800, "hotel_price_per_night": 3200, "num_nights": 4, "daily_expense": 2000}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	for _, want := range []string{"12800", "10000", "27600", "2000 per day x 5 days"} {
		if !strings.Contains(result, want) {
			t.Errorf("result missing %q:\n%s", want, result)
		}
	}
}

func TestBudgetToolDefaults(t *testing.T) {
	tool, err := NewBudgetTool(WithDailyExpense(1500))
	if err != nil {
		t.Fatalf("NewBudgetTool() error = %v", err)
	}

	// nights defaults to 1, daily expense comes from options:
	// 1000 + 500 + 1500*2 = 4500
	result, err := tool.Call(context.Background(), `{"flight_price": 1000, "hotel_price_per_night": 500}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "Total Estimated Cost: 4500") {
		t.Errorf("unexpected total:\n%s", result)
	}
}

func TestBudgetToolTips(t *testing.T) {
	tool, err := NewBudgetTool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	expensive, err := tool.Call(ctx,
		`{"flight_price": 20000, "hotel_price_per_night": 5000, "num_nights": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, expensive, "booking in advance")
	assert.Contains(t, expensive, "away from tourist hotspots")

	cheap, err := tool.Call(ctx,
		`{"flight_price": 2000, "hotel_price_per_night": 1000, "num_nights": 2}`)
	if err != nil {
		t.Fatal(err)
	}
	assert.NotContains(t, cheap, "booking in advance")
	assert.NotContains(t, cheap, "away from tourist hotspots")
	assert.Contains(t, cheap, "local transport")
}

func TestBudgetToolBadInput(t *testing.T) {
	tool, err := NewBudgetTool()
	if err != nil {
		t.Fatal(err)
	}

	result, err := tool.Call(context.Background(), "oops")
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "Error") {
		t.Errorf("expected Error in result, got: %s", result)
	}
}

func TestEstimateDailyExpense(t *testing.T) {
	tests := []struct {
		city string
		want float64
	}{
		{"Mumbai", 2500},
		{"delhi", 2500},
		{"Goa", 2000},
		{"Manali", 2000},
		{"Varanasi", 1500},
		{"Unknown Town", 1500},
	}
	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			if got := EstimateDailyExpense(tt.city); got != tt.want {
				t.Errorf("EstimateDailyExpense(%q) = %v, want %v", tt.city, got, tt.want)
			}
		})
	}
}
