package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/service"
)

func (h *WidgetHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter 'city' is required")
		return
	}

	session := h.session(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report, err := h.weatherService.Search(ctx, session, city)
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, WeatherResponse{
			Report:  report,
			History: session.History(),
		})
	case errors.Is(err, providers.ErrCityNotFound):
		respondWithError(w, http.StatusNotFound, service.MsgCityNotFound)
	case errors.Is(err, service.ErrSuperseded):
		respondWithError(w, http.StatusConflict, "superseded by a newer request")
	default:
		respondWithError(w, http.StatusInternalServerError, service.UserMessage(err, service.MsgWeatherFailed))
	}
}

func (h *WidgetHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, HistoryResponse{
		History: h.session(w, r).History(),
	})
}
