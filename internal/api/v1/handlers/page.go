package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"ulascansenturk/weather-widget/internal/service"
	"ulascansenturk/weather-widget/internal/theme"
	"ulascansenturk/weather-widget/internal/view"
	"ulascansenturk/weather-widget/internal/weather"

	"github.com/rs/zerolog/log"
)

const msgThemeFailed = "Error al guardar el tema"

// Index renders the widget from the session's current state.
func (h *WidgetHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	session := h.session(w, r)
	current := h.settings.Current(prefersDark(r))

	page := view.Page{
		Theme:      string(current),
		ThemeGlyph: theme.Glyph(current),
		Error:      session.TakeFlash(),
		History:    session.History(),
	}
	if report, ok := session.Report(); ok {
		page.Report = &report
	}

	requestColorSchemeHint(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page); err != nil {
		log.Error().Err(err).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Search handles the search form. Blank input is ignored.
func (h *WidgetHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	session := h.session(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	_, err := h.weatherService.Search(ctx, session, r.URL.Query().Get("city"))
	if err != nil && !errors.Is(err, service.ErrEmptyCity) && !errors.Is(err, service.ErrSuperseded) {
		session.SetFlash(service.UserMessage(err, service.MsgSearchFailed))
	}

	redirectHome(w, r)
}

// LoadHistoryEntry reloads a place picked from the history list.
func (h *WidgetHandler) LoadHistoryEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	session := h.session(w, r)

	query, err := parseCityQuery(r)
	if err != nil {
		log.Warn().Err(err).Str("query", r.URL.RawQuery).Msg("invalid history entry")
		session.SetFlash(service.MsgWeatherFailed)
		redirectHome(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, err := h.weatherService.Load(ctx, session, query); err != nil && !errors.Is(err, service.ErrSuperseded) {
		session.SetFlash(service.UserMessage(err, service.MsgWeatherFailed))
	}

	redirectHome(w, r)
}

func (h *WidgetHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	session := h.session(w, r)

	next, err := h.settings.Toggle(r.Context(), prefersDark(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to toggle theme")
		session.SetFlash(msgThemeFailed)
	} else {
		log.Debug().Str("theme", string(next)).Msg("theme changed")
	}

	redirectHome(w, r)
}

func parseCityQuery(r *http.Request) (weather.CityQuery, error) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return weather.CityQuery{}, err
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		return weather.CityQuery{}, err
	}

	return weather.CityQuery{
		Name:       q.Get("name"),
		Coordinate: weather.Coordinate{Latitude: lat, Longitude: lon},
	}, nil
}
