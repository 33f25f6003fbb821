package handlers

import (
	"net/http"
	"time"
	"ulascansenturk/weather-widget/internal/service"
	"ulascansenturk/weather-widget/internal/sessionstore"
	"ulascansenturk/weather-widget/internal/theme"
	"ulascansenturk/weather-widget/internal/view"
)

type WidgetHandler struct {
	serviceName    string
	weatherService service.WeatherService
	sessions       sessionstore.Store
	settings       *theme.Settings
	renderer       *view.Renderer
	timeout        time.Duration
}

func NewWidgetHandler(
	serviceName string,
	weatherService service.WeatherService,
	sessions sessionstore.Store,
	settings *theme.Settings,
	renderer *view.Renderer,
	timeout time.Duration,
) *WidgetHandler {
	return &WidgetHandler{
		serviceName:    serviceName,
		weatherService: weatherService,
		sessions:       sessions,
		settings:       settings,
		renderer:       renderer,
		timeout:        timeout,
	}
}

func (h *WidgetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		h.Index(w, r)
	case "/search":
		h.Search(w, r)
	case "/load":
		h.LoadHistoryEntry(w, r)
	case "/theme":
		h.ToggleTheme(w, r)
	case "/api/v1/weather":
		h.GetWeather(w, r)
	case "/api/v1/history":
		h.GetHistory(w, r)
	case "/health":
		h.Health(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *WidgetHandler) session(w http.ResponseWriter, r *http.Request) *sessionstore.Session {
	return h.sessions.Get(sessionID(w, r))
}

func (h *WidgetHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok", Service: h.serviceName})
}
