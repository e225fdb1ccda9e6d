package travel

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/antgroup/tripmate/tool"
	"github.com/antgroup/tripmate/utils/json"
	"github.com/antgroup/tripmate/utils/ratelimit"
	"github.com/antgroup/tripmate/utils/request"
)

const (
	_defaultForecastDays = 7
	_dateLayout          = "2006-01-02"
	_dailyMetrics        = "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max"
)

// WeatherTool fetches a daily forecast from an Open-Meteo style endpoint.
type WeatherTool struct {
	baseURL string
	client  *http.Client
	limiter *ratelimit.TokenBucket
}

var _ tool.Tool = &WeatherTool{}

type weatherQuery struct {
	City      string `json:"city"`
	StartDate string `json:"start_date"`
	NumDays   int    `json:"num_days"`
}

type forecastResponse struct {
	Daily struct {
		Time          []string  `json:"time"`
		TempMax       []float64 `json:"temperature_2m_max"`
		TempMin       []float64 `json:"temperature_2m_min"`
		Precipitation []float64 `json:"precipitation_sum"`
		Windspeed     []float64 `json:"windspeed_10m_max"`
	} `json:"daily"`
}

// NewWeatherTool creates a new weather lookup tool.
func NewWeatherTool(opts ...Option) (*WeatherTool, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	client := options.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: options.HTTPTimeout}
	}
	limiter := options.Limiter
	if limiter == nil {
		limiter = ratelimit.NewTokenBucket(2, 5)
	}

	return &WeatherTool{
		baseURL: options.WeatherBaseURL,
		client:  client,
		limiter: limiter,
	}, nil
}

// Name returns the name of the tool.
func (t *WeatherTool) Name() string {
	return "WeatherLookup"
}

// Description returns the description of the tool.
func (t *WeatherTool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Get the weather forecast for a city and date range.
Returns the daily forecast with temperatures and conditions.
Input must be json schema: ` + string(bytes) + `
Example Input: {"city": "Goa", "start_date": "2025-02-15", "num_days": 5}`
}

func (t *WeatherTool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"city": {
				Type:        tool.TypeString,
				Description: "The city to get the forecast for",
			},
			"start_date": {
				Type:        tool.TypeString,
				Description: "First forecast day in YYYY-MM-DD format",
			},
			"num_days": {
				Type:        tool.TypeInt,
				Description: "Number of days to forecast, default 7",
			},
		},
		Required: []string{"city", "start_date"},
	}
}

func (t *WeatherTool) Strict() bool {
	return true
}

// Call fetches the forecast.
func (t *WeatherTool) Call(ctx context.Context, input string) (string, error) {
	var query weatherQuery
	if msg := decodeInput(input, &query); msg != "" {
		return msg, nil
	}

	city := strings.TrimSpace(query.City)
	startDate := strings.TrimSpace(query.StartDate)
	if city == "" || startDate == "" {
		return "Error: both city and start_date are required.", nil
	}

	coord, ok := CityCoordinates(city)
	if !ok {
		return fmt.Sprintf("Error: coordinates not found for %s. Please check the city name.", city), nil
	}

	start, err := time.Parse(_dateLayout, startDate)
	if err != nil {
		return "Error: start_date must be in YYYY-MM-DD format.", nil
	}
	numDays := query.NumDays
	if numDays <= 0 {
		numDays = _defaultForecastDays
	}

	days := t.fetchForecast(ctx, coord, start, numDays)
	if len(days) == 0 {
		return fmt.Sprintf("Error: could not fetch weather data for %s.", city), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Weather Forecast for %s\n", titleCase(city)))
	sb.WriteString(fmt.Sprintf("From %s (%d days)\n", startDate, numDays))
	sb.WriteString(divider())
	sb.WriteString("\n")
	for _, day := range days {
		sb.WriteString(fmt.Sprintf("%s:\n", day.Date))
		sb.WriteString(fmt.Sprintf("  Temperature: %.0f C - %.0f C\n", day.TempMin, day.TempMax))
		sb.WriteString(fmt.Sprintf("  Condition: %s\n", day.Condition))
		sb.WriteString(rule())
	}
	return sb.String(), nil
}

// fetchForecast calls the weather endpoint. Any transport, status or
// decode failure yields an empty result; the caller reports a generic
// fetch-failure message. No retries.
func (t *WeatherTool) fetchForecast(ctx context.Context, coord Coordinate, start time.Time, numDays int) []DayForecast {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil
	}

	end := start.AddDate(0, 0, numDays-1)
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", coord.Latitude))
	query.Set("longitude", fmt.Sprintf("%.4f", coord.Longitude))
	query.Set("daily", _dailyMetrics)
	query.Set("timezone", "auto")
	query.Set("start_date", start.Format(_dateLayout))
	query.Set("end_date", end.Format(_dateLayout))

	var resp forecastResponse
	if err := request.Get(ctx, t.client, t.baseURL, query, &resp); err != nil {
		return nil
	}

	daily := resp.Daily
	days := make([]DayForecast, 0, len(daily.Time))
	for i, date := range daily.Time {
		precipitation := floatAt(daily.Precipitation, i)
		windspeed := floatAt(daily.Windspeed, i)
		days = append(days, DayForecast{
			Date:          date,
			TempMax:       floatAt(daily.TempMax, i),
			TempMin:       floatAt(daily.TempMin, i),
			Precipitation: precipitation,
			Windspeed:     windspeed,
			Condition:     condition(precipitation, windspeed),
		})
	}
	return days
}

// condition maps precipitation (mm) and windspeed (km/h) to a label.
// The decision order is fixed: rain dominates wind.
func condition(precipitation, windspeed float64) string {
	switch {
	case precipitation > 10:
		return "Rainy"
	case precipitation > 2:
		return "Light Rain"
	case windspeed > 30:
		return "Windy"
	case windspeed > 15:
		return "Breezy"
	default:
		return "Clear"
	}
}

// floatAt guards against provider arrays shorter than the date array.
func floatAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
