package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abhisheksit27/agrovest/internal/client/models"
	"github.com/abhisheksit27/agrovest/internal/logging"
)

// forecastDays caps the folded multi-day forecast, matching the card the
// home screen renders.
const forecastDays = 7

// WeatherClient fetches current conditions and a multi-day forecast from an
// OpenWeather-compatible HTTP API. All values are requested in metric units
// and converted to display units here: wind from m/s to km/h, unix
// sunrise/sunset to local clock strings.
type WeatherClient struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
	log      logging.Logger
	loc      *time.Location
}

func NewWeatherClient(endpoint, apiKey string, log logging.Logger) *WeatherClient {
	return &WeatherClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		log:      log,
		loc:      time.Local,
	}
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Rain map[string]float64 `json:"rain"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}

func (w *WeatherClient) get(ctx context.Context, path string, coords models.Coordinates, out any) error {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("appid", w.apiKey)
	q.Set("units", "metric")

	reqURL := w.endpoint + path + "?" + q.Encode()
	w.log.Debug(ctx, "weather request", "path", path, "lat", coords.Latitude, "lon", coords.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := w.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("weather request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather api returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather response decode error: %w", err)
	}
	return nil
}

// Current fetches current conditions at the given coordinates.
func (w *WeatherClient) Current(ctx context.Context, coords models.Coordinates) (*models.Weather, error) {
	var data currentResponse
	if err := w.get(ctx, "/weather", coords, &data); err != nil {
		return nil, err
	}

	weatherMain := ""
	if len(data.Weather) > 0 {
		weatherMain = data.Weather[0].Main
	}

	return &models.Weather{
		Location:      data.Name,
		Temp:          round(data.Main.Temp),
		TempMin:       round(data.Main.TempMin),
		TempMax:       round(data.Main.TempMax),
		Humidity:      data.Main.Humidity,
		Pressure:      data.Main.Pressure,
		WindSpeed:     round(data.Wind.Speed * 3.6),
		Sunrise:       w.formatClock(data.Sys.Sunrise),
		Sunset:        w.formatClock(data.Sys.Sunset),
		WeatherMain:   weatherMain,
		Precipitation: data.Rain["1h"],
	}, nil
}

// Forecast fetches the 5-day/3-hour forecast and folds it into per-day
// high/low entries, capped at forecastDays. Days keep their first-seen order
// and each day's condition is the first slot's condition.
func (w *WeatherClient) Forecast(ctx context.Context, coords models.Coordinates) ([]models.DailyForecast, error) {
	var data forecastResponse
	if err := w.get(ctx, "/forecast", coords, &data); err != nil {
		return nil, err
	}

	type bucket struct {
		temps   []float64
		weather string
	}

	order := make([]string, 0, forecastDays)
	days := make(map[string]*bucket)

	for _, item := range data.List {
		day := time.Unix(item.Dt, 0).In(w.loc).Format("Mon, Jan 2")
		b, ok := days[day]
		if !ok {
			weatherMain := ""
			if len(item.Weather) > 0 {
				weatherMain = item.Weather[0].Main
			}
			b = &bucket{weather: weatherMain}
			days[day] = b
			order = append(order, day)
		}
		b.temps = append(b.temps, item.Main.Temp)
	}

	if len(order) > forecastDays {
		order = order[:forecastDays]
	}

	result := make([]models.DailyForecast, 0, len(order))
	for _, day := range order {
		b := days[day]
		high, low := b.temps[0], b.temps[0]
		for _, temp := range b.temps[1:] {
			high = math.Max(high, temp)
			low = math.Min(low, temp)
		}
		result = append(result, models.DailyForecast{
			Day:         day,
			TempHigh:    round(high),
			TempLow:     round(low),
			WeatherMain: b.weather,
		})
	}

	return result, nil
}

func (w *WeatherClient) formatClock(unix int64) string {
	return strings.ToLower(time.Unix(unix, 0).In(w.loc).Format("3:04 PM"))
}

func round(v float64) int {
	return int(math.Round(v))
}

// DemoWeather returns the fixed demonstration conditions shown when no
// location is available or the weather API cannot be reached.
func DemoWeather() models.Weather {
	return models.Weather{
		Location:      "Your Location",
		Temp:          27,
		TempMin:       24,
		TempMax:       32,
		Humidity:      75,
		Pressure:      1010,
		WindSpeed:     12,
		Sunrise:       "6:15 am",
		Sunset:        "6:25 pm",
		WeatherMain:   "Clear",
		Precipitation: 0,
	}
}

// DemoForecast returns the fixed demonstration forecast that pairs with
// DemoWeather.
func DemoForecast() []models.DailyForecast {
	return []models.DailyForecast{
		{Day: "Mon, Feb 17", TempHigh: 32, TempLow: 24, WeatherMain: "Clear"},
		{Day: "Tue, Feb 18", TempHigh: 31, TempLow: 23, WeatherMain: "Clouds"},
		{Day: "Wed, Feb 19", TempHigh: 30, TempLow: 25, WeatherMain: "Rain"},
		{Day: "Thu, Feb 20", TempHigh: 29, TempLow: 24, WeatherMain: "Clear"},
		{Day: "Fri, Feb 21", TempHigh: 33, TempLow: 26, WeatherMain: "Clear"},
		{Day: "Sat, Feb 22", TempHigh: 31, TempLow: 25, WeatherMain: "Clouds"},
		{Day: "Sun, Feb 23", TempHigh: 30, TempLow: 24, WeatherMain: "Clear"},
	}
}
