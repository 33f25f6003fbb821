package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"ulascansenturk/weather-widget/internal/api/v1/handlers"
	"ulascansenturk/weather-widget/internal/mocks"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/sessionstore"
	"ulascansenturk/weather-widget/internal/theme"
	"ulascansenturk/weather-widget/internal/view"
	"ulascansenturk/weather-widget/internal/weather"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-widget/internal/service"
)

type WidgetHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockWeatherService
	sessions    *sessionstore.InMemoryStore
	prefs       *theme.MemoryStore
	handler     *handlers.WidgetHandler
	cookie      *http.Cookie
}

var madridReport = weather.Report{
	Query: weather.CityQuery{
		Name:       "Madrid, Spain",
		Coordinate: weather.Coordinate{Latitude: 40.42, Longitude: -3.7},
	},
	Current: weather.Current{Temperature: 21.4, WindSpeed: 9.7, Timezone: "Europe/Madrid", LocalTime: "09:05"},
	Days: []weather.ForecastDay{
		{DayOfWeek: "lun", Code: 61, Icon: "🌧️", Description: "Lluvia ligera", Min: 11, Max: 21},
	},
}

func commitReport(report weather.Report) func(mock.Arguments) {
	return func(args mock.Arguments) {
		session := args.Get(1).(*sessionstore.Session)
		session.Commit(session.BeginLoad(), report)
	}
}

func (s *WidgetHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewMockWeatherService(s.T())
	s.sessions = sessionstore.NewInMemoryStore(time.Minute, time.Minute)
	s.prefs = theme.NewMemoryStore()

	renderer, err := view.NewRenderer()
	s.Require().NoError(err)

	s.handler = handlers.NewWidgetHandler(
		"weather-widget",
		s.mockService,
		s.sessions,
		theme.NewSettings(s.prefs),
		renderer,
		5*time.Second,
	)
	s.cookie = nil
}

func (s *WidgetHandlerTestSuite) TearDownTest() {
	s.sessions.Close()
}

func (s *WidgetHandlerTestSuite) do(method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}

	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)

	for _, c := range recorder.Result().Cookies() {
		if c.Name == handlers.SessionCookieName {
			s.cookie = c
		}
	}
	return recorder
}

func (s *WidgetHandlerTestSuite) TestIndexIssuesSessionCookie() {
	recorder := s.do(http.MethodGet, "/", nil)

	s.Equal(http.StatusOK, recorder.Code)
	s.Require().NotNil(s.cookie)
	s.NotEmpty(s.cookie.Value)
	s.Contains(recorder.Header().Get("Accept-CH"), "Sec-CH-Prefers-Color-Scheme")
	s.Contains(recorder.Body.String(), `id="forecastGrid"`)

	issued := s.cookie.Value
	s.do(http.MethodGet, "/", nil)
	s.Equal(issued, s.cookie.Value)
}

func (s *WidgetHandlerTestSuite) TestSearchRendersReportAndHistory() {
	s.do(http.MethodGet, "/", nil)

	s.mockService.On("Search", mock.Anything, mock.Anything, "Madrid").
		Run(commitReport(madridReport)).
		Return(madridReport, nil)

	recorder := s.do(http.MethodGet, "/search?city=Madrid", nil)
	s.Equal(http.StatusSeeOther, recorder.Code)
	s.Equal("/", recorder.Header().Get("Location"))

	body := s.do(http.MethodGet, "/", nil).Body.String()
	s.Contains(body, "🌍 Madrid, Spain")
	s.Contains(body, "Lluvia ligera")
	s.Contains(body, "/load?lat=40.42")
	s.NotContains(body, `id="error"`)
}

func (s *WidgetHandlerTestSuite) TestSearchNotFoundShowsMessageOnce() {
	s.mockService.On("Search", mock.Anything, mock.Anything, "Atlantis").
		Return(weather.Report{}, &service.UserFacingError{Message: service.MsgCityNotFound, Err: providers.ErrCityNotFound})

	s.do(http.MethodGet, "/search?city=Atlantis", nil)

	s.Contains(s.do(http.MethodGet, "/", nil).Body.String(), service.MsgCityNotFound)
	s.NotContains(s.do(http.MethodGet, "/", nil).Body.String(), service.MsgCityNotFound)
}

func (s *WidgetHandlerTestSuite) TestSearchBlankIsIgnored() {
	s.mockService.On("Search", mock.Anything, mock.Anything, "  ").Return(weather.Report{}, service.ErrEmptyCity)

	recorder := s.do(http.MethodGet, "/search?city=++", nil)
	s.Equal(http.StatusSeeOther, recorder.Code)

	s.NotContains(s.do(http.MethodGet, "/", nil).Body.String(), `id="error"`)
}

func (s *WidgetHandlerTestSuite) TestLoadHistoryEntry() {
	query := weather.CityQuery{Name: "Madrid, Spain", Coordinate: weather.Coordinate{Latitude: 40.42, Longitude: -3.7}}
	s.mockService.On("Load", mock.Anything, mock.Anything, query).
		Run(commitReport(madridReport)).
		Return(madridReport, nil)

	recorder := s.do(http.MethodGet, view.LoadURL(weather.HistoryEntry{Name: query.Name, Coordinate: query.Coordinate}), nil)

	s.Equal(http.StatusSeeOther, recorder.Code)
	s.Contains(s.do(http.MethodGet, "/", nil).Body.String(), "🌍 Madrid, Spain")
}

func (s *WidgetHandlerTestSuite) TestLoadHistoryEntryInvalidCoordinates() {
	s.do(http.MethodGet, "/load?name=x&lat=abc&lon=1", nil)

	s.Contains(s.do(http.MethodGet, "/", nil).Body.String(), service.MsgWeatherFailed)
	s.mockService.AssertNotCalled(s.T(), "Load", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WidgetHandlerTestSuite) TestLoadFailureShowsGenericMessage() {
	s.mockService.On("Load", mock.Anything, mock.Anything, mock.Anything).
		Return(weather.Report{}, &service.UserFacingError{Message: service.MsgWeatherFailed, Err: errors.New("boom")})

	s.do(http.MethodGet, "/load?name=x&lat=1&lon=1", nil)

	body := s.do(http.MethodGet, "/", nil).Body.String()
	s.Contains(body, service.MsgWeatherFailed)
	s.NotContains(body, "boom")
}

func (s *WidgetHandlerTestSuite) TestThemeFollowsClientHint() {
	body := s.do(http.MethodGet, "/", http.Header{"Sec-Ch-Prefers-Color-Scheme": {`"dark"`}}).Body.String()
	s.Contains(body, `data-theme="dark"`)
	s.Contains(body, "☀️")

	body = s.do(http.MethodGet, "/", nil).Body.String()
	s.Contains(body, `data-theme="light"`)
}

func (s *WidgetHandlerTestSuite) TestToggleThemeTwice() {
	s.Contains(s.do(http.MethodGet, "/", nil).Body.String(), `data-theme="light"`)

	recorder := s.do(http.MethodPost, "/theme", nil)
	s.Equal(http.StatusSeeOther, recorder.Code)
	s.Contains(s.do(http.MethodGet, "/", nil).Body.String(), `data-theme="dark"`)

	s.do(http.MethodPost, "/theme", nil)
	s.Contains(s.do(http.MethodGet, "/", nil).Body.String(), `data-theme="light"`)

	value, found, err := s.prefs.GetPreference(context.Background(), theme.PreferenceKey)
	s.NoError(err)
	s.True(found)
	s.Equal("light", value)
}

func (s *WidgetHandlerTestSuite) TestToggleThemeWrongMethod() {
	recorder := s.do(http.MethodGet, "/theme", nil)
	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
}

func (s *WidgetHandlerTestSuite) TestAPIWeatherSuccess() {
	s.mockService.On("Search", mock.Anything, mock.Anything, "Madrid").
		Run(commitReport(madridReport)).
		Return(madridReport, nil)

	recorder := s.do(http.MethodGet, "/api/v1/weather?city=Madrid", nil)
	s.Equal(http.StatusOK, recorder.Code)

	var response handlers.WeatherResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("Madrid, Spain", response.Report.Query.Name)
	s.Len(response.History, 1)

	recorder = s.do(http.MethodGet, "/api/v1/history", nil)
	var history handlers.HistoryResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&history))
	s.Len(history.History, 1)
}

func (s *WidgetHandlerTestSuite) TestAPIWeatherMissingCity() {
	recorder := s.do(http.MethodGet, "/api/v1/weather", nil)

	s.Equal(http.StatusBadRequest, recorder.Code)
	var response handlers.ErrorResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal("BAD_REQUEST", response.Errors[0].Code)
	s.mockService.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WidgetHandlerTestSuite) TestAPIWeatherNotFound() {
	s.mockService.On("Search", mock.Anything, mock.Anything, "Atlantis").
		Return(weather.Report{}, &service.UserFacingError{Message: service.MsgCityNotFound, Err: providers.ErrCityNotFound})

	recorder := s.do(http.MethodGet, "/api/v1/weather?city=Atlantis", nil)

	s.Equal(http.StatusNotFound, recorder.Code)
	var response handlers.ErrorResponse
	s.NoError(json.NewDecoder(recorder.Body).Decode(&response))
	s.Equal(service.MsgCityNotFound, response.Errors[0].Detail)
}

func (s *WidgetHandlerTestSuite) TestAPIWeatherFailureIsGeneric() {
	s.mockService.On("Search", mock.Anything, mock.Anything, "Madrid").
		Return(weather.Report{}, &service.UserFacingError{Message: service.MsgWeatherFailed, Err: errors.New("dial tcp: refused")})

	recorder := s.do(http.MethodGet, "/api/v1/weather?city=Madrid", nil)

	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.NotContains(recorder.Body.String(), "refused")
	s.Contains(recorder.Body.String(), service.MsgWeatherFailed)
}

func (s *WidgetHandlerTestSuite) TestHealthAndUnknownPath() {
	recorder := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, recorder.Code)
	s.True(strings.Contains(recorder.Body.String(), `"status":"ok"`))

	recorder = s.do(http.MethodGet, "/forecast", nil)
	s.Equal(http.StatusNotFound, recorder.Code)
}

func TestWidgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(WidgetHandlerTestSuite))
}
