package providers

import (
	"context"
	"fmt"
	"net/url"
	"ulascansenturk/weather-widget/internal/weather"
)

const (
	DefaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"
	ForecastDays           = 5
)

type Forecaster interface {
	GetForecast(ctx context.Context, coord weather.Coordinate) (*ForecastResponse, error)
}

type ForecastResponse struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
	Timezone       string          `json:"timezone"`
	Daily          DailyForecast   `json:"daily"`
}

type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
}

type DailyForecast struct {
	Time           []string  `json:"time"`
	WeatherCode    []int     `json:"weathercode"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
}

type ForecastClient struct {
	fetcher *JSONClient
	baseURL string
}

func NewForecastClient(fetcher *JSONClient, baseURL string) *ForecastClient {
	if baseURL == "" {
		baseURL = DefaultForecastBaseURL
	}
	return &ForecastClient{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

// GetForecast fetches current conditions and the daily forecast in the place's own timezone.
func (f *ForecastClient) GetForecast(ctx context.Context, coord weather.Coordinate) (*ForecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", weather.FormatNumber(coord.Latitude))
	values.Set("longitude", weather.FormatNumber(coord.Longitude))
	values.Set("current_weather", "true")
	values.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min")
	values.Set("forecast_days", fmt.Sprint(ForecastDays))
	values.Set("timezone", "auto")

	var resp ForecastResponse
	if err := f.fetcher.GetJSON(ctx, f.baseURL+"?"+values.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	return &resp, nil
}
