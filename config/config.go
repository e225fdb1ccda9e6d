// Package config loads planner settings from a YAML file with environment
// overrides.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Groq API key, required to run the planner.
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`

	Temperature   float64 `yaml:"temperature"`
	MaxTokens     int     `yaml:"max_tokens"`
	MaxIterations int     `yaml:"max_iterations"`

	DataDir        string  `yaml:"data_dir"`
	DailyExpense   float64 `yaml:"daily_expense"`
	WeatherBaseURL string  `yaml:"weather_base_url"`
}

func Default() *Config {
	return &Config{
		Model:          "llama-3.3-70b-versatile",
		Temperature:    0.3,
		MaxTokens:      4096,
		MaxIterations:  15,
		DataDir:        "data",
		DailyExpense:   2000,
		WeatherBaseURL: "https://api.open-meteo.com/v1/forecast",
	}
}

// Load reads path as YAML over the defaults, then applies environment
// overrides. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("TRIPMATE_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("TRIPMATE_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TRIPMATE_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxIterations = n
		}
	}
	if v := os.Getenv("TRIPMATE_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = f
		}
	}
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("missing api key, set GROQ_API_KEY or api_key in the config file")
	}
	if c.MaxIterations <= 0 {
		return errors.New("max_iterations must be positive")
	}
	return nil
}
