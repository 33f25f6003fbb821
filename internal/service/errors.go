package service

import (
	"errors"
)

// Messages shown to the user. They are deliberately generic.
const (
	MsgCityNotFound  = "Ciudad no encontrada"
	MsgSearchFailed  = "Error en la búsqueda"
	MsgWeatherFailed = "Error al obtener el clima"
)

var (
	ErrEmptyCity = errors.New("city cannot be empty")

	// ErrSuperseded is returned when a newer load started in the same session before
	// this one finished; its result was discarded.
	ErrSuperseded = errors.New("load superseded by a newer request")
)

// UserFacingError carries the single message the page shows for a failed chain.
type UserFacingError struct {
	Message string
	Err     error
}

func (e *UserFacingError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *UserFacingError) Unwrap() error {
	return e.Err
}

// UserMessage extracts the message to display for err, falling back to fallback.
func UserMessage(err error, fallback string) string {
	var ufe *UserFacingError
	if errors.As(err, &ufe) {
		return ufe.Message
	}
	return fallback
}
