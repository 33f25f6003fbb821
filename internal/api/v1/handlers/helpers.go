package handlers

import (
	"encoding/json"
	"github.com/rs/zerolog/log"
	"net/http"
)

type errorKind struct {
	code  string
	title string
}

var errorKinds = map[int]errorKind{
	http.StatusBadRequest:          {"BAD_REQUEST", "Bad Request"},
	http.StatusNotFound:            {"NOT_FOUND", "Not Found"},
	http.StatusMethodNotAllowed:    {"METHOD_NOT_ALLOWED", "Method Not Allowed"},
	http.StatusConflict:            {"CONFLICT", "Conflict"},
	http.StatusInternalServerError: {"INTERNAL_ERROR", "Internal Server Error"},
}

// respondWithError writes the JSON error envelope. Unknown statuses are reported as internal errors.
func respondWithError(w http.ResponseWriter, status int, detail string) {
	kind, ok := errorKinds[status]
	if !ok {
		kind = errorKinds[http.StatusInternalServerError]
	}

	respondWithJSON(w, status, ErrorResponse{
		Errors: []Error{{
			Code:   kind.code,
			Detail: detail,
			Status: status,
			Title:  kind.title,
		}},
	})
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// redirectHome sends the browser back to the page after a form action.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
