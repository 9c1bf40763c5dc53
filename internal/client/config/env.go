package config

import (
	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment overrides. Pointer fields distinguish
// "unset" from an explicit empty value, so the environment can clear the
// analyze endpoint without also wiping defaults it did not mention.
type envConfig struct {
	DatabasePath        *string  `env:"AGROVEST_DATABASE_PATH"`
	WeatherEndpoint     *string  `env:"AGROVEST_WEATHER_ENDPOINT"`
	WeatherAPIKey       *string  `env:"OPENWEATHER_API_KEY"`
	AnalyzeEndpointAddr *string  `env:"AGROVEST_ANALYZE_ENDPOINT"`
	Latitude            *float64 `env:"AGROVEST_LAT"`
	Longitude           *float64 `env:"AGROVEST_LON"`
}

// parseEnv overlays Config with values from environment variables.
// Malformed values panic for the same reason parseJson does.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.WeatherEndpoint != nil {
		cfg.WeatherEndpoint = *ec.WeatherEndpoint
	}
	if ec.WeatherAPIKey != nil {
		cfg.WeatherAPIKey = *ec.WeatherAPIKey
	}
	if ec.AnalyzeEndpointAddr != nil {
		cfg.AnalyzeEndpointAddr = *ec.AnalyzeEndpointAddr
	}
	if ec.Latitude != nil {
		cfg.Latitude = *ec.Latitude
	}
	if ec.Longitude != nil {
		cfg.Longitude = *ec.Longitude
	}
}
