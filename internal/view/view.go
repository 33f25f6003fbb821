package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"ulascansenturk/weather-widget/internal/weather"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is everything the widget page shows. Report is nil until a load succeeds.
type Page struct {
	Theme      string
	ThemeGlyph string
	Error      string
	Report     *weather.Report
	History    []weather.HistoryEntry
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"num":     weather.FormatNumber,
		"loadURL": LoadURL,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page only once it has been fully executed.
func (r *Renderer) Render(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// LoadURL is the link that reloads a history entry.
func LoadURL(entry weather.HistoryEntry) string {
	values := url.Values{}
	values.Set("name", entry.Name)
	values.Set("lat", weather.FormatNumber(entry.Coordinate.Latitude))
	values.Set("lon", weather.FormatNumber(entry.Coordinate.Longitude))
	return "/load?" + values.Encode()
}
