package travel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConditionMapping(t *testing.T) {
	tests := []struct {
		name          string
		precipitation float64
		windspeed     float64
		want          string
	}{
		{"HeavyRain", 12, 0, "Rainy"},
		{"LightRain", 5, 40, "Light Rain"},
		{"Windy", 0, 35, "Windy"},
		{"Breezy", 0, 20, "Breezy"},
		{"Clear", 0, 5, "Clear"},
		{"RainBoundary", 10, 0, "Light Rain"},
		{"LightRainBoundary", 2.1, 0, "Light Rain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := condition(tt.precipitation, tt.windspeed); got != tt.want {
				t.Errorf("condition(%v, %v) = %q, want %q",
					tt.precipitation, tt.windspeed, got, tt.want)
			}
		})
	}
}

func TestWeatherToolForecast(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"start_date": r.URL.Query().Get("start_date"),
			"end_date":   r.URL.Query().Get("end_date"),
			"daily":      r.URL.Query().Get("daily"),
			"timezone":   r.URL.Query().Get("timezone"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily": {
			"time": ["2025-02-15", "2025-02-16", "2025-02-17"],
			"temperature_2m_max": [31.2, 30.5, 29.8],
			"temperature_2m_min": [21.1, 20.7, 20.2],
			"precipitation_sum": [0, 12.4, 4.1],
			"windspeed_10m_max": [22.0, 8.5]
		}}`))
	}))
	defer server.Close()

	tool, err := NewWeatherTool(WithWeatherBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewWeatherTool() error = %v", err)
	}

	result, err := tool.Call(context.Background(), `{"city": "goa", "start_date": "2025-02-15", "num_days": 3}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if gotQuery["start_date"] != "2025-02-15" || gotQuery["end_date"] != "2025-02-17" {
		t.Errorf("unexpected date range: %+v", gotQuery)
	}
	if gotQuery["timezone"] != "auto" || !strings.Contains(gotQuery["daily"], "precipitation_sum") {
		t.Errorf("unexpected query: %+v", gotQuery)
	}

	if !strings.Contains(result, "Weather Forecast for Goa") {
		t.Errorf("missing header:\n%s", result)
	}
	// day 1: no rain, 22 km/h wind -> Breezy; day 2: heavy rain; day 3:
	// light rain, and the short windspeed array defaults to 0
	for _, want := range []string{"Breezy", "Rainy", "Light Rain", "21 C - 31 C"} {
		if !strings.Contains(result, want) {
			t.Errorf("result missing %q:\n%s", want, result)
		}
	}
}

func TestWeatherToolUnknownCity(t *testing.T) {
	tool, err := NewWeatherTool()
	if err != nil {
		t.Fatal(err)
	}

	result, err := tool.Call(context.Background(), `{"city": "Atlantis", "start_date": "2025-02-15"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "coordinates not found for Atlantis") {
		t.Errorf("unexpected result: %s", result)
	}
}

func TestWeatherToolServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	tool, err := NewWeatherTool(WithWeatherBaseURL(server.URL))
	if err != nil {
		t.Fatal(err)
	}

	result, err := tool.Call(context.Background(), `{"city": "Goa", "start_date": "2025-02-15"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "could not fetch weather data for Goa") {
		t.Errorf("unexpected result: %s", result)
	}
}

func TestWeatherToolUnreachable(t *testing.T) {
	// closed server: transport error, reported, not raised
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	tool, err := NewWeatherTool(WithWeatherBaseURL(url))
	if err != nil {
		t.Fatal(err)
	}

	result, err := tool.Call(context.Background(), `{"city": "Goa", "start_date": "2025-02-15"}`)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.Contains(result, "could not fetch weather data") {
		t.Errorf("unexpected result: %s", result)
	}
}

func TestWeatherToolBadInput(t *testing.T) {
	tool, err := NewWeatherTool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"InvalidJSON", "???", "Error: invalid JSON"},
		{"MissingCity", `{"start_date": "2025-02-15"}`, "Error: both city and start_date are required."},
		{"MissingDate", `{"city": "Goa"}`, "Error: both city and start_date are required."},
		{"BadDate", `{"city": "Goa", "start_date": "15-02-2025"}`, "Error: start_date must be in YYYY-MM-DD format."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tool.Call(ctx, tt.input)
			if err != nil {
				t.Fatalf("Call() error = %v", err)
			}
			if !strings.Contains(result, tt.want) {
				t.Errorf("Call() = %q, want containing %q", result, tt.want)
			}
		})
	}
}
