package travel

import (
	"context"
	"strings"
	"testing"
)

func newTestHotelTool(t *testing.T) *HotelTool {
	t.Helper()
	tool, err := NewHotelTool(WithHotelsPath("testdata/hotels.json"))
	if err != nil {
		t.Fatalf("NewHotelTool() error = %v", err)
	}
	return tool
}

func TestHotelToolDefaults(t *testing.T) {
	tool := newTestHotelTool(t)

	// default min_rating 3 keeps everything except the 2-star H-003
	result, err := tool.Call(context.Background(), `{"city": "goa"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "Found 4 hotels in goa") {
		t.Errorf("unexpected match count:\n%s", result)
	}

	// stars descending, then price ascending: H-004 (5), then the two
	// 4-star hotels with the cheaper H-002 before H-001
	order := []string{"H-004", "H-002", "H-001"}
	last := -1
	for _, id := range order {
		idx := strings.Index(result, id)
		if idx == -1 {
			t.Fatalf("expected %s in result:\n%s", id, result)
		}
		if idx < last {
			t.Errorf("option %s out of order:\n%s", id, result)
		}
		last = idx
	}
	if strings.Contains(result, "H-003") || strings.Contains(result, "H-005") {
		t.Errorf("more than 3 options rendered:\n%s", result)
	}
}

func TestHotelToolMaxPrice(t *testing.T) {
	tool := newTestHotelTool(t)

	result, err := tool.Call(context.Background(), `{"city": "Goa", "min_rating": 3, "max_price_per_night": 2500}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	for _, id := range []string{"H-002", "H-005"} {
		if !strings.Contains(result, id) {
			t.Errorf("result missing %s:\n%s", id, result)
		}
	}
	for _, id := range []string{"H-001", "H-003", "H-004"} {
		if strings.Contains(result, id) {
			t.Errorf("result should not contain %s:\n%s", id, result)
		}
	}
}

func TestHotelToolAmenityPattern(t *testing.T) {
	tool := newTestHotelTool(t)

	result, err := tool.Call(context.Background(), `{"city": "Goa", "amenity": "wifi*"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	// matches plain "wifi" and "wifi premium", not "parking"
	for _, id := range []string{"H-004", "H-001", "H-002"} {
		if !strings.Contains(result, id) {
			t.Errorf("result missing %s:\n%s", id, result)
		}
	}
	if strings.Contains(result, "H-005") {
		t.Errorf("amenity filter leaked H-005:\n%s", result)
	}
}

func TestHotelToolNoResults(t *testing.T) {
	tool := newTestHotelTool(t)
	ctx := context.Background()

	result, err := tool.Call(ctx, `{"city": "Manali"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if result != "No hotels found in Manali." {
		t.Errorf("unexpected result: %s", result)
	}

	result, err = tool.Call(ctx, `{"city": "Goa", "min_rating": 5, "max_price_per_night": 1000}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if result != "No hotels found in Goa matching your criteria." {
		t.Errorf("unexpected result: %s", result)
	}
}

func TestHotelToolBadInput(t *testing.T) {
	tool := newTestHotelTool(t)
	ctx := context.Background()

	result, err := tool.Call(ctx, "{{{")
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "Error") {
		t.Errorf("expected Error in result, got: %s", result)
	}

	result, err = tool.Call(ctx, `{"min_rating": 4}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if result != "Error: city is required." {
		t.Errorf("unexpected result: %s", result)
	}
}
