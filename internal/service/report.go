package service

import (
	"fmt"
	"math"
	"time"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/weather"
	"ulascansenturk/weather-widget/internal/weathercode"
)

var weekdayAbbrev = [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

// BuildReport turns a forecast response into a Report. It fails as a whole when any
// part of the response is unusable, so a partial report is never produced.
func BuildReport(resp *providers.ForecastResponse, query weather.CityQuery, now time.Time) (weather.Report, error) {
	if resp == nil {
		return weather.Report{}, fmt.Errorf("%w: empty forecast", providers.ErrMalformedResponse)
	}

	if resp.CurrentWeather == nil {
		return weather.Report{}, fmt.Errorf("%w: missing current_weather", providers.ErrMalformedResponse)
	}

	if resp.Timezone == "" {
		return weather.Report{}, fmt.Errorf("%w: missing timezone", providers.ErrMalformedResponse)
	}
	loc, err := time.LoadLocation(resp.Timezone)
	if err != nil {
		return weather.Report{}, fmt.Errorf("%w: unknown timezone %q", providers.ErrMalformedResponse, resp.Timezone)
	}

	days, err := buildDays(resp.Daily)
	if err != nil {
		return weather.Report{}, err
	}

	return weather.Report{
		Query: query,
		Current: weather.Current{
			Temperature: resp.CurrentWeather.Temperature,
			WindSpeed:   resp.CurrentWeather.WindSpeed,
			Timezone:    resp.Timezone,
			LocalTime:   now.In(loc).Format("15:04"),
		},
		Days: days,
	}, nil
}

func buildDays(daily providers.DailyForecast) ([]weather.ForecastDay, error) {
	n := len(daily.Time)
	if n == 0 {
		return nil, fmt.Errorf("%w: missing daily forecast", providers.ErrMalformedResponse)
	}
	if len(daily.WeatherCode) != n || len(daily.TemperatureMax) != n || len(daily.TemperatureMin) != n {
		return nil, fmt.Errorf("%w: daily arrays differ in length", providers.ErrMalformedResponse)
	}

	days := make([]weather.ForecastDay, 0, n)
	for i, iso := range daily.Time {
		date, err := time.Parse(time.DateOnly, iso)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", providers.ErrMalformedResponse, iso)
		}

		code := daily.WeatherCode[i]
		days = append(days, weather.ForecastDay{
			Date:        date,
			DayOfWeek:   weekdayAbbrev[date.Weekday()],
			Code:        code,
			Icon:        weathercode.IconFor(code),
			Description: weathercode.TextFor(code),
			Min:         roundHalfUp(daily.TemperatureMin[i]),
			Max:         roundHalfUp(daily.TemperatureMax[i]),
		})
	}

	return days, nil
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
