package providers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"ulascansenturk/weather-widget/internal/weather"
)

const DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

var ErrCityNotFound = errors.New("city not found")

type Geocoder interface {
	Search(ctx context.Context, name string) (weather.CityQuery, error)
}

type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DisplayName is "Name, Country", or just "Name" when the country is unknown.
func (r GeocodingResult) DisplayName() string {
	if r.Country == "" {
		return r.Name
	}
	return r.Name + ", " + r.Country
}

type GeocodingClient struct {
	fetcher *JSONClient
	baseURL string
}

func NewGeocodingClient(fetcher *JSONClient, baseURL string) *GeocodingClient {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}
	return &GeocodingClient{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

// Search resolves a city name to its first geocoding match.
func (g *GeocodingClient) Search(ctx context.Context, name string) (weather.CityQuery, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", "1")

	var resp GeocodingResponse
	if err := g.fetcher.GetJSON(ctx, g.baseURL+"?"+values.Encode(), &resp); err != nil {
		return weather.CityQuery{}, fmt.Errorf("geocoding request failed: %w", err)
	}

	if len(resp.Results) == 0 {
		return weather.CityQuery{}, ErrCityNotFound
	}

	place := resp.Results[0]
	return weather.CityQuery{
		Name: place.DisplayName(),
		Coordinate: weather.Coordinate{
			Latitude:  place.Latitude,
			Longitude: place.Longitude,
		},
	}, nil
}
