package travel

import (
	"net/http"
	"time"

	"github.com/antgroup/tripmate/utils/ratelimit"
)

// Options represents the configuration options for the travel tools.
type Options struct {
	// DataDir is the directory holding the JSON datasets
	DataDir string
	// FlightsPath overrides the flights dataset path
	FlightsPath string
	// HotelsPath overrides the hotels dataset path
	HotelsPath string
	// PlacesPath overrides the places dataset path
	PlacesPath string
	// Store is the shared dataset store; a private one is created when nil
	Store *Store
	// WeatherBaseURL is the forecast endpoint
	WeatherBaseURL string
	// HTTPClient is used for outbound calls; defaults to a client with HTTPTimeout
	HTTPClient *http.Client
	// HTTPTimeout bounds the weather call
	HTTPTimeout time.Duration
	// DailyExpense is the default per-day expense for budget estimation
	DailyExpense float64
	// Limiter throttles outbound weather calls
	Limiter *ratelimit.TokenBucket
}

// Option is a function that configures Options.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		DataDir:        "data",
		WeatherBaseURL: "https://api.open-meteo.com/v1/forecast",
		HTTPTimeout:    10 * time.Second,
		DailyExpense:   _defaultDailyExpense,
	}
}

// WithDataDir sets the dataset directory.
func WithDataDir(dir string) Option {
	return func(o *Options) {
		o.DataDir = dir
	}
}

// WithFlightsPath sets the flights dataset path.
func WithFlightsPath(path string) Option {
	return func(o *Options) {
		o.FlightsPath = path
	}
}

// WithHotelsPath sets the hotels dataset path.
func WithHotelsPath(path string) Option {
	return func(o *Options) {
		o.HotelsPath = path
	}
}

// WithPlacesPath sets the places dataset path.
func WithPlacesPath(path string) Option {
	return func(o *Options) {
		o.PlacesPath = path
	}
}

// WithStore sets the shared dataset store.
func WithStore(store *Store) Option {
	return func(o *Options) {
		o.Store = store
	}
}

// WithWeatherBaseURL sets the forecast endpoint.
func WithWeatherBaseURL(url string) Option {
	return func(o *Options) {
		o.WeatherBaseURL = url
	}
}

// WithHTTPClient sets the HTTP client for outbound calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithHTTPTimeout sets the timeout for outbound calls.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.HTTPTimeout = timeout
	}
}

// WithDailyExpense sets the default per-day expense.
func WithDailyExpense(expense float64) Option {
	return func(o *Options) {
		o.DailyExpense = expense
	}
}

// WithLimiter sets the rate limiter for outbound weather calls.
func WithLimiter(limiter *ratelimit.TokenBucket) Option {
	return func(o *Options) {
		o.Limiter = limiter
	}
}
