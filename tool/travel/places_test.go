package travel

import (
	"context"
	"strings"
	"testing"
)

func newTestPlaceTool(t *testing.T) *PlaceTool {
	t.Helper()
	tool, err := NewPlaceTool(WithPlacesPath("testdata/places.json"))
	if err != nil {
		t.Fatalf("NewPlaceTool() error = %v", err)
	}
	return tool
}

func TestPlaceToolDefaults(t *testing.T) {
	tool := newTestPlaceTool(t)

	// default min_rating 3.5 drops P-004 (3.2); P-005 (3.6) survives
	result, err := tool.Call(context.Background(), `{"city": "Goa"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "Found 5 places in Goa") {
		t.Errorf("unexpected match count:\n%s", result)
	}
	if strings.Contains(result, "P-004") {
		t.Errorf("rating filter leaked P-004:\n%s", result)
	}

	// rating descending with stable ties: P-002 (4.7), then the 4.5
	// pair P-001 before P-006 in dataset order
	order := []string{"P-002", "P-001", "P-006", "P-003", "P-005"}
	last := -1
	for _, id := range order {
		idx := strings.Index(result, id)
		if idx == -1 {
			t.Fatalf("expected %s in result:\n%s", id, result)
		}
		if idx < last {
			t.Errorf("place %s out of order:\n%s", id, result)
		}
		last = idx
	}
}

func TestPlaceToolCategory(t *testing.T) {
	tool := newTestPlaceTool(t)

	result, err := tool.Call(context.Background(), `{"city": "Goa", "category": "BEACH", "min_rating": 4.0}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "Found 2 places in Goa (BEACH)") {
		t.Errorf("unexpected header:\n%s", result)
	}
	for _, id := range []string{"P-002", "P-001"} {
		if !strings.Contains(result, id) {
			t.Errorf("result missing %s:\n%s", id, result)
		}
	}
	if strings.Contains(result, "P-005") {
		t.Errorf("min_rating filter leaked P-005:\n%s", result)
	}
}

func TestPlaceToolNoResults(t *testing.T) {
	tool := newTestPlaceTool(t)
	ctx := context.Background()

	result, err := tool.Call(ctx, `{"city": "Pune"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if result != "No places found in Pune." {
		t.Errorf("unexpected result: %s", result)
	}

	result, err = tool.Call(ctx, `{"city": "Goa", "category": "museum"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if result != "No places found in Goa in category 'museum' matching your criteria." {
		t.Errorf("unexpected result: %s", result)
	}
}

func TestPlaceToolBadInput(t *testing.T) {
	tool := newTestPlaceTool(t)
	ctx := context.Background()

	result, err := tool.Call(ctx, "[1,2,3]")
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "Error") {
		t.Errorf("expected Error in result, got: %s", result)
	}

	result, err = tool.Call(ctx, `{"category": "beach"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if result != "Error: city is required." {
		t.Errorf("unexpected result: %s", result)
	}
}
