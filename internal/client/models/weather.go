package models

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Weather describes current conditions at a location, already converted to
// display units: temperatures in °C, wind in km/h, precipitation in mm over
// the last hour, sunrise/sunset as local clock strings (e.g. "6:15 am").
type Weather struct {
	Location      string
	Temp          int
	TempMin       int
	TempMax       int
	Humidity      int
	Pressure      int
	WindSpeed     int
	Sunrise       string
	Sunset        string
	WeatherMain   string
	Precipitation float64
}

// DailyForecast is one day of a multi-day forecast, folded from the
// provider's 3-hour slots to a per-day high/low.
type DailyForecast struct {
	Day         string
	TempHigh    int
	TempLow     int
	WeatherMain string
}
