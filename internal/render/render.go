// Package render turns a WeatherResult into display values for the page and
// terminal views.
package render

import (
	"strconv"

	"github.com/couchcryptid/clima/internal/domain"
)

// DisplayModel is the rendered form of one WeatherResult.
type DisplayModel struct {
	Title         string         `json:"title"`
	Place         string         `json:"place"`
	DisplayTime   string         `json:"displayTime"`
	Icon          domain.Icon    `json:"icon"`
	IconClass     string         `json:"iconClass"`
	Condition     string         `json:"condition"`
	Temperature   string         `json:"temperature"`
	Wind          string         `json:"wind"`
	Humidity      string         `json:"humidity"`
	Precipitation string         `json:"precipitation"`
	Forecast      []ForecastCard `json:"forecast"`
	Theme         domain.Theme   `json:"theme"`

	// Labels is the text catalog for the locale the model was rendered in.
	Labels Labels `json:"-"`
}

// ForecastCard is one day of the forecast strip.
type ForecastCard struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Label         string `json:"label"`
	IconClass     string `json:"iconClass"`
	Max           string `json:"max"`
	Min           string `json:"min"`
	Precipitation string `json:"precipitation"`
	Humidity      string `json:"humidity"`
}

// Render builds the DisplayModel for result. It does not modify result.
// Today's humidity and precipitation come from the first forecast day, as the
// provider's current block carries neither.
func Render(result domain.WeatherResult, theme domain.Theme, locale string) DisplayModel {
	labels := LabelsFor(locale)
	m := DisplayModel{
		Title:       labels.Title,
		Place:       place(result.Location),
		DisplayTime: displayTime(result, locale),
		Icon:        result.Icon,
		IconClass:   result.Icon.CSSClass(),
		Condition:   domain.DescribeCode(result.Current.WeatherCode),
		Temperature: number(result.Current.TemperatureC) + "°",
		Wind:        number(result.Current.WindSpeedKmh) + " km/h",
		Forecast:    make([]ForecastCard, 0, len(result.Forecast)),
		Theme:       theme,
		Labels:      labels,
	}

	if len(result.Forecast) > 0 {
		today := result.Forecast[0]
		m.Humidity = number(today.HumidityPct) + "%"
		m.Precipitation = number(today.PrecipitationMm) + " mm"
	}

	for _, day := range result.Forecast {
		m.Forecast = append(m.Forecast, ForecastCard{
			Date:          day.Date,
			Label:         domain.FormatForecastDate(day.Date, locale),
			IconClass:     domain.IconForCode(day.WeatherCode).CSSClass(),
			Max:           number(day.TempMaxC) + "°C",
			Min:           number(day.TempMinC) + "°C",
			Precipitation: number(day.PrecipitationMm) + " mm",
			Humidity:      number(day.HumidityPct) + "%",
		})
	}
	return m
}

// displayTime formats the observation time for locale. The cached DisplayTime
// was formatted for the locale of the process that fetched it, so it is only
// used when the observation time is missing.
func displayTime(result domain.WeatherResult, locale string) string {
	if result.Current.ObservedAt == "" {
		return result.DisplayTime
	}
	return domain.FormatDisplayTimestamp(result.Current.ObservedAt, locale)
}

func place(loc domain.Location) string {
	if loc.Country == "" {
		return loc.Name
	}
	return loc.Name + ", " + loc.Country
}

// number prints v with the fewest digits that round-trip, so 24.0 is "24"
// and 11.2 stays "11.2".
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
