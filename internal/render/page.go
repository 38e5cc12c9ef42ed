package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"

	"github.com/couchcryptid/clima/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Page is everything the widget page shows.
type Page struct {
	Theme          domain.Theme
	OverrideActive bool
	City           string
	Message        string // informational, e.g. "Type a city name."
	Error          string
	Model          *DisplayModel
	Labels         Labels // English when zero
}

// ToggleLabel is the theme button text for the rendered theme.
func (p Page) ToggleLabel() string {
	l := p.labels()
	if p.Theme == domain.ThemeNight {
		return l.ToLight
	}
	return l.ToDark
}

func (p Page) labels() Labels {
	if p.Labels.Lang == "" {
		return English
	}
	return p.Labels
}

// HTML writes the widget page.
func HTML(w io.Writer, page Page) error {
	if page.Theme == "" {
		page.Theme = domain.ThemeDay
	}
	page.Labels = page.labels()
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Text writes a terminal view of m in the language it was rendered in.
func Text(w io.Writer, m DisplayModel) error {
	l := m.Labels
	if l.Lang == "" {
		l = English
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n", m.Place)
	fmt.Fprintf(tw, "%s\n\n", m.DisplayTime)
	fmt.Fprintf(tw, "%s\t%s (%s)\n", l.Conditions, m.Condition, m.Icon)
	fmt.Fprintf(tw, "%s\t%s\n", l.Temperature, m.Temperature)
	fmt.Fprintf(tw, "%s\t%s\n", l.Wind, m.Wind)
	if m.Humidity != "" {
		fmt.Fprintf(tw, "%s\t%s\n", l.Humidity, m.Humidity)
		fmt.Fprintf(tw, "%s\t%s\n", l.Precipitation, m.Precipitation)
	}

	if len(m.Forecast) > 0 {
		fmt.Fprintf(tw, "\n%s\t%s\t%s\t%s\t%s\n", l.Day, l.Max, l.Min, l.Precipitation, l.Humidity)
		for _, c := range m.Forecast {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Label, c.Max, c.Min, c.Precipitation, c.Humidity)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render text: %w", err)
	}
	return nil
}
