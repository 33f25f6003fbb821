package weather

import (
	"strconv"
	"time"
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// CityQuery identifies a place to load weather for.
type CityQuery struct {
	Name       string     `json:"name" validate:"required"`
	Coordinate Coordinate `json:"coordinate"`
}

// Current holds the conditions at load time, expressed in the place's timezone.
type Current struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	Timezone    string  `json:"timezone"`
	LocalTime   string  `json:"local_time"`
}

// ForecastDay is one day-card of the forecast grid.
type ForecastDay struct {
	Date        time.Time `json:"date"`
	DayOfWeek   string    `json:"day_of_week"`
	Code        int       `json:"weathercode"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Min         int       `json:"min"`
	Max         int       `json:"max"`
}

// Report is a fully built result of one load. It is always replaced as a whole.
type Report struct {
	Query   CityQuery     `json:"query"`
	Current Current       `json:"current"`
	Days    []ForecastDay `json:"days"`
}

// HistoryEntry is a previously viewed place that can be reloaded.
type HistoryEntry struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
}

func (h HistoryEntry) Query() CityQuery {
	return CityQuery{Name: h.Name, Coordinate: h.Coordinate}
}

// FormatNumber renders a float the way the page shows raw provider values (21, 21.5, -3.25).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
