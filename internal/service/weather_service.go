package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/sessionstore"
	"ulascansenturk/weather-widget/internal/weather"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type WeatherService interface {
	Search(ctx context.Context, session *sessionstore.Session, city string) (weather.Report, error)
	Load(ctx context.Context, session *sessionstore.Session, query weather.CityQuery) (weather.Report, error)
}

type searchRequest struct {
	City string `validate:"required,max=200"`
}

type weatherService struct {
	geocoder   providers.Geocoder
	forecaster providers.Forecaster
	validate   *validator.Validate
	now        func() time.Time
}

func NewWeatherService(geocoder providers.Geocoder, forecaster providers.Forecaster) WeatherService {
	return &weatherService{
		geocoder:   geocoder,
		forecaster: forecaster,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// Search geocodes city and loads weather for the first match.
func (s *weatherService) Search(ctx context.Context, session *sessionstore.Session, city string) (weather.Report, error) {
	req := searchRequest{City: strings.TrimSpace(city)}
	if req.City == "" {
		return weather.Report{}, ErrEmptyCity
	}
	if err := s.validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("rejected search input")
		return weather.Report{}, &UserFacingError{Message: MsgSearchFailed, Err: err}
	}

	query, err := s.geocoder.Search(ctx, req.City)
	if errors.Is(err, providers.ErrCityNotFound) {
		return weather.Report{}, &UserFacingError{Message: MsgCityNotFound, Err: err}
	}
	if err != nil {
		log.Error().Err(err).Str("city", req.City).Msg("failed to search city")
		return weather.Report{}, &UserFacingError{Message: MsgSearchFailed, Err: err}
	}

	return s.Load(ctx, session, query)
}

// Load fetches the forecast for query and, when it is still the newest load of the
// session, makes it the shown report and records it in history.
func (s *weatherService) Load(ctx context.Context, session *sessionstore.Session, query weather.CityQuery) (weather.Report, error) {
	if err := s.validate.Struct(query); err != nil {
		log.Warn().Err(err).Str("city", query.Name).Msg("rejected city query")
		return weather.Report{}, &UserFacingError{Message: MsgWeatherFailed, Err: err}
	}

	token := session.BeginLoad()

	resp, err := s.forecaster.GetForecast(ctx, query.Coordinate)
	if err != nil {
		log.Error().Err(err).Str("city", query.Name).Msg("failed to get weather")
		return weather.Report{}, &UserFacingError{Message: MsgWeatherFailed, Err: err}
	}

	report, err := BuildReport(resp, query, s.now())
	if err != nil {
		log.Error().Err(err).Str("city", query.Name).Msg("failed to build weather report")
		return weather.Report{}, &UserFacingError{Message: MsgWeatherFailed, Err: err}
	}

	if !session.Commit(token, report) {
		log.Debug().Str("city", query.Name).Uint64("token", token).Msg("discarding stale weather load")
		return report, ErrSuperseded
	}

	return report, nil
}
