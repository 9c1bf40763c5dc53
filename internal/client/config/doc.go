// Package config loads runtime configuration for the AgroVest CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-d string    path to the local database file
//	-s string    base URL of the crop-analysis server
//	-lat float   latitude for weather lookups
//	-lon float   longitude for weather lookups
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the analysis delay, so it can be
// either a string like "2s" or integer nanoseconds:
//
//	{
//	  "database_path": "agrovest.db",
//	  "weather_api_key": "...",
//	  "analyze_endpoint_addr": "http://127.0.0.1:5000",
//	  "latitude": 28.61,
//	  "longitude": 77.2,
//	  "analysis_delay": "2s"
//	}
//
// Environment variables
//
//	AGROVEST_DATABASE_PATH, AGROVEST_WEATHER_ENDPOINT, OPENWEATHER_API_KEY,
//	AGROVEST_ANALYZE_ENDPOINT, AGROVEST_LAT, AGROVEST_LON
package config
