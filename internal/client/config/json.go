package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/abhisheksit27/agrovest/internal/flagx"
	"github.com/abhisheksit27/agrovest/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the analysis delay either as a string
// like "2s" or as integer nanoseconds. After parsing, set values are copied
// into the runtime Config.
type JsonConfig struct {
	DatabasePath        *string         `json:"database_path"`
	WeatherEndpoint     *string         `json:"weather_endpoint"`
	WeatherAPIKey       *string         `json:"weather_api_key"`
	AnalyzeEndpointAddr *string         `json:"analyze_endpoint_addr"`
	Latitude            *float64        `json:"latitude"`
	Longitude           *float64        `json:"longitude"`
	AnalysisDelay       *timex.Duration `json:"analysis_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags (via flagx.JsonConfigFlags);
// if no path is given the function returns without touching cfg. Only fields
// present in the file override the current values. Read or unmarshal errors
// panic, matching the rest of the config pipeline: a broken explicit config
// is a startup failure, not something to limp past.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.WeatherEndpoint != nil {
		cfg.WeatherEndpoint = *jc.WeatherEndpoint
	}
	if jc.WeatherAPIKey != nil {
		cfg.WeatherAPIKey = *jc.WeatherAPIKey
	}
	if jc.AnalyzeEndpointAddr != nil {
		cfg.AnalyzeEndpointAddr = *jc.AnalyzeEndpointAddr
	}
	if jc.Latitude != nil {
		cfg.Latitude = *jc.Latitude
	}
	if jc.Longitude != nil {
		cfg.Longitude = *jc.Longitude
	}
	if jc.AnalysisDelay != nil {
		cfg.AnalysisDelay = time.Duration(jc.AnalysisDelay.Duration)
	}
}
