package config

import "time"

// Config holds runtime settings for the AgroVest CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - WeatherEndpoint: base URL of the weather API.
//   - WeatherAPIKey: API key sent with weather requests.
//   - AnalyzeEndpointAddr: base URL of the crop-analysis server; when empty
//     the client falls back to the built-in simulated analyzer.
//   - Latitude/Longitude: coordinates used for weather lookups. Zero values
//     mean "location unknown" and trigger the demo-weather fallback.
//   - AnalysisDelay: artificial delay of the simulated analyzer.
type Config struct {
	DatabasePath        string
	WeatherEndpoint     string
	WeatherAPIKey       string
	AnalyzeEndpointAddr string
	Latitude            float64
	Longitude           float64
	AnalysisDelay       time.Duration
}

// LoadDefaults populates c with sensible defaults. The weather API key
// default is the shared demo key; real deployments override it via
// OPENWEATHER_API_KEY.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "agrovest.db"
	c.WeatherEndpoint = "https://api.openweathermap.org/data/2.5"
	c.WeatherAPIKey = "a1c5990739423b9719c4ce6e36f0e30f"
	c.AnalyzeEndpointAddr = ""
	c.Latitude = 0
	c.Longitude = 0
	c.AnalysisDelay = 2 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
