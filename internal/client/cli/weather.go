package cli

import (
	"context"
	"fmt"

	"github.com/abhisheksit27/agrovest/internal/client/models"
	"github.com/abhisheksit27/agrovest/internal/client/services"
)

// Weather shows current conditions and the multi-day forecast for the
// configured location. Any failure along the way (no location, unreachable
// API, bad key) falls back to the fixed demonstration data instead of an
// error, so the screen always renders.
func (a *App) Weather(ctx context.Context) error {
	current, forecast := a.fetchWeather(ctx)
	printWeather(current, forecast)
	return nil
}

func (a *App) fetchWeather(ctx context.Context) (models.Weather, []models.DailyForecast) {
	coords, err := a.locator.Locate(ctx)
	if err != nil {
		a.log.Warn(ctx, "location unavailable, using demo weather", "error", err)
		return services.DemoWeather(), services.DemoForecast()
	}

	current, err := a.weather.Current(ctx, coords)
	if err != nil {
		a.log.Warn(ctx, "weather fetch failed, using demo data", "error", err)
		return services.DemoWeather(), services.DemoForecast()
	}

	forecast, err := a.weather.Forecast(ctx, coords)
	if err != nil {
		a.log.Warn(ctx, "forecast fetch failed, using demo forecast", "error", err)
		forecast = services.DemoForecast()
	}

	return *current, forecast
}

func printWeather(w models.Weather, forecast []models.DailyForecast) {
	printlnFn(fmt.Sprintf("%s: %d°C (%s)  H: %d°C  L: %d°C", w.Location, w.Temp, w.WeatherMain, w.TempMax, w.TempMin))
	printlnFn(fmt.Sprintf("Humidity %d%%  Precipitation %.1fmm  Pressure %d hPa  Wind %d km/h", w.Humidity, w.Precipitation, w.Pressure, w.WindSpeed))
	printlnFn(fmt.Sprintf("Sunrise %s  Sunset %s", w.Sunrise, w.Sunset))

	if len(forecast) == 0 {
		return
	}
	printlnFn(fmt.Sprintf("%d-Day Forecast:", len(forecast)))
	for _, day := range forecast {
		printlnFn(fmt.Sprintf("  %-12s %d°C / %d°C  %s", day.Day, day.TempHigh, day.TempLow, day.WeatherMain))
	}
}
