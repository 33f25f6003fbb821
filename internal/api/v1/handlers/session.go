package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	SessionCookieName = "widget_session"

	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

// sessionID returns the caller's session id, issuing a new cookie when the request has
// none or carries a malformed one.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// prefersDark reads the browser's color-scheme client hint. Browsers only send it
// after the server has asked for it with Accept-CH.
func prefersDark(r *http.Request) bool {
	return strings.Trim(r.Header.Get(colorSchemeHint), `" `) == "dark"
}

func requestColorSchemeHint(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", colorSchemeHint)
	w.Header().Set("Critical-CH", colorSchemeHint)
	w.Header().Add("Vary", colorSchemeHint)
}
