package weathercode

const (
	UnknownIcon = "❓"
	UnknownText = "Condición desconocida"
)

// icon families keyed by Open-Meteo WMO condition code.
var icons = map[int]string{
	0: "☀️",

	1: "⛅", 2: "⛅", 3: "⛅",

	45: "🌫️", 48: "🌫️",

	51: "🌦️", 53: "🌦️", 55: "🌦️", 56: "🌦️", 57: "🌦️",

	61: "🌧️", 63: "🌧️", 65: "🌧️", 80: "🌧️", 81: "🌧️", 82: "🌧️",

	66: "🌧️❄️", 67: "🌧️❄️",

	71: "🌨️", 73: "🌨️", 75: "🌨️", 85: "🌨️", 86: "🌨️",

	95: "⛈️", 96: "⛈️", 99: "⛈️",
}

var texts = map[int]string{
	0:  "Despejado",
	1:  "Mayormente despejado",
	2:  "Parcialmente nublado",
	3:  "Nublado",
	45: "Niebla",
	48: "Niebla con escarcha",
	51: "Llovizna ligera",
	53: "Llovizna",
	55: "Llovizna intensa",
	56: "Llovizna helada ligera",
	57: "Llovizna helada intensa",
	61: "Lluvia ligera",
	63: "Lluvia",
	65: "Lluvia intensa",
	66: "Lluvia helada ligera",
	67: "Lluvia helada intensa",
	71: "Nieve ligera",
	73: "Nieve",
	75: "Nieve intensa",
	77: "Granos de nieve",
	80: "Chubascos ligeros",
	81: "Chubascos",
	82: "Chubascos intensos",
	85: "Nevadas ligeras",
	86: "Nevadas intensas",
	95: "Tormentas",
	96: "Tormentas con granizo",
	99: "Tormentas fuertes con granizo",
}

// IconFor returns the display glyph for a condition code, or UnknownIcon.
func IconFor(code int) string {
	if icon, ok := icons[code]; ok {
		return icon
	}
	return UnknownIcon
}

// TextFor returns the human-readable description for a condition code, or UnknownText.
func TextFor(code int) string {
	if text, ok := texts[code]; ok {
		return text
	}
	return UnknownText
}
