package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/clima/internal/domain"
)

func sampleResult() domain.WeatherResult {
	return domain.WeatherResult{
		Location: domain.Location{Name: "São Paulo", Country: "Brasil", Latitude: -23.5475, Longitude: -46.63611},
		Current: domain.CurrentConditions{
			TemperatureC: 24.3,
			WindSpeedKmh: 11.2,
			WeatherCode:  2,
			IsDay:        true,
			ObservedAt:   "2025-11-14T10:30",
		},
		Icon:        domain.IconCloudy,
		DisplayTime: "Friday, November 14, 2025 at 10:30 AM",
		Forecast: []domain.DailyForecastEntry{
			{Date: "2025-11-14", TempMaxC: 28, TempMinC: 18, PrecipitationMm: 0, HumidityPct: 80, WeatherCode: 2},
			{Date: "2025-11-15", TempMaxC: 27.5, TempMinC: 17, PrecipitationMm: 2.5, HumidityPct: 92, WeatherCode: 61},
			{Date: "2025-11-16", TempMaxC: 30, TempMinC: 19, PrecipitationMm: 0, HumidityPct: 75, WeatherCode: 0},
			{Date: "2025-11-17", TempMaxC: 25, TempMinC: 16, PrecipitationMm: 12.1, HumidityPct: 97, WeatherCode: 95},
			{Date: "2025-11-18", TempMaxC: 26, TempMinC: 17, PrecipitationMm: 0.4, HumidityPct: 85, WeatherCode: 42},
		},
	}
}

func TestRender(t *testing.T) {
	m := Render(sampleResult(), domain.ThemeDay, "en-US")

	assert.Equal(t, English.Title, m.Title)
	assert.Equal(t, "São Paulo, Brasil", m.Place)
	assert.Equal(t, "Friday, November 14, 2025 at 10:30 AM", m.DisplayTime)
	assert.Equal(t, domain.IconCloudy, m.Icon)
	assert.Equal(t, "wi-day-cloudy", m.IconClass)
	assert.Equal(t, "Partly cloudy", m.Condition)
	assert.Equal(t, "24.3°", m.Temperature)
	assert.Equal(t, "11.2 km/h", m.Wind)
	assert.Equal(t, "80%", m.Humidity, "humidity comes from today's forecast")
	assert.Equal(t, "0 mm", m.Precipitation)
	assert.Equal(t, domain.ThemeDay, m.Theme)

	require.Len(t, m.Forecast, 5)
	assert.Equal(t, ForecastCard{
		Date:          "2025-11-15",
		Label:         "Sat, 11/15",
		IconClass:     "wi-rain",
		Max:           "27.5°C",
		Min:           "17°C",
		Precipitation: "2.5 mm",
		Humidity:      "92%",
	}, m.Forecast[1])
	assert.Equal(t, "wi-na", m.Forecast[4].IconClass)
}

func TestRender_DoesNotMutateResult(t *testing.T) {
	result := sampleResult()
	before := sampleResult()

	_ = Render(result, domain.ThemeNight, "pt-BR")

	if diff := cmp.Diff(before, result); diff != "" {
		t.Errorf("Render mutated its input (-before +after):\n%s", diff)
	}
}

func TestRender_EmptyForecast(t *testing.T) {
	result := sampleResult()
	result.Forecast = nil
	result.Location.Country = ""

	m := Render(result, domain.ThemeDay, "en-US")
	assert.Equal(t, "São Paulo", m.Place)
	assert.Empty(t, m.Humidity)
	assert.Empty(t, m.Precipitation)
	assert.NotNil(t, m.Forecast)
	assert.Empty(t, m.Forecast)
}

func TestPage_ToggleLabel(t *testing.T) {
	assert.Contains(t, Page{Theme: domain.ThemeDay}.ToggleLabel(), "dark mode")
	assert.Contains(t, Page{Theme: domain.ThemeNight}.ToggleLabel(), "light mode")
}

func TestHTML(t *testing.T) {
	m := Render(sampleResult(), domain.ThemeNight, "en-US")
	var buf bytes.Buffer

	require.NoError(t, HTML(&buf, Page{Theme: domain.ThemeNight, City: "São Paulo", Model: &m}))

	out := buf.String()
	assert.Contains(t, out, `<body class="night">`)
	assert.Contains(t, out, `wi wi-day-cloudy`)
	assert.Contains(t, out, "São Paulo, Brasil")
	assert.Contains(t, out, "Friday, November 14, 2025 at 10:30 AM")
	assert.Contains(t, out, "light mode")
	assert.Equal(t, 5, strings.Count(out, `class="card-dia"`))
}

func TestHTML_MessagesAndEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Page{Error: "<script>alert(1)</script>"}))

	out := buf.String()
	assert.Contains(t, out, `<body class="day">`, "empty theme renders as day")
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "card-dia")

	buf.Reset()
	require.NoError(t, HTML(&buf, Page{Message: "Type a city name."}))
	assert.Contains(t, buf.String(), "Type a city name.")
}

func TestText(t *testing.T) {
	m := Render(sampleResult(), domain.ThemeDay, "en-US")
	var buf bytes.Buffer

	require.NoError(t, Text(&buf, m))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "São Paulo, Brasil\n"))
	assert.Contains(t, out, "Partly cloudy (cloudy)")
	assert.Contains(t, out, "11.2 km/h")
	assert.Contains(t, out, "Fri, 11/14")
	assert.Contains(t, out, "12.1 mm")
}

func TestRender_DisplayTimeFollowsLocale(t *testing.T) {
	r := sampleResult()
	r.DisplayTime = "sexta-feira, 14 de novembro de 2025 às 10:30"

	m := Render(r, domain.ThemeDay, "en-US")
	assert.Equal(t, "Friday, November 14, 2025 at 10:30 AM", m.DisplayTime, "formatted from ObservedAt, not the cached string")

	m = Render(r, domain.ThemeDay, "pt-BR")
	assert.Equal(t, domain.FormatDisplayTimestamp("2025-11-14T10:30", "pt-BR"), m.DisplayTime)

	r.Current.ObservedAt = ""
	m = Render(r, domain.ThemeDay, "en-US")
	assert.Equal(t, r.DisplayTime, m.DisplayTime, "falls back to the stored display time")
}

func TestRender_PortugueseLabels(t *testing.T) {
	m := Render(sampleResult(), domain.ThemeDay, "pt-BR")
	assert.Equal(t, Portuguese.Title, m.Title)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Page{Theme: domain.ThemeDay, Model: &m, Labels: LabelsFor("pt-BR")}))
	out := buf.String()
	assert.Contains(t, out, `<html lang="pt">`)
	assert.Contains(t, out, "Umidade")
	assert.Contains(t, out, "Previsão para os próximos 5 dias")
	assert.Contains(t, out, "Ativar modo escuro")
	assert.NotContains(t, out, "Humidity")

	buf.Reset()
	require.NoError(t, Text(&buf, m))
	assert.Contains(t, buf.String(), "Temperatura")
	assert.NotContains(t, buf.String(), "Temperature")
}

func TestLabelsFor(t *testing.T) {
	tests := []struct {
		locale string
		want   Labels
	}{
		{"en-US", English},
		{"en", English},
		{"pt-BR", Portuguese},
		{"pt-PT", Portuguese},
		{"ja-JP", English},
		{"", English},
		{"not a locale!", English},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want.Lang, LabelsFor(tt.locale).Lang)
		})
	}
}

func TestLabels_ErrorMessage(t *testing.T) {
	assert.Empty(t, English.ErrorMessage(nil))
	assert.Equal(t, English.TypeCity, English.ErrorMessage(domain.ErrInvalidInput))
	assert.Equal(t, Portuguese.NotFound, Portuguese.ErrorMessage(domain.ErrCityNotFound))
	assert.Equal(t, Portuguese.Network, Portuguese.ErrorMessage(&domain.NetworkError{Op: "forecast", Err: errors.New("timeout")}))
	assert.Equal(t, "Cidade não encontrada.", Portuguese.ErrorMessage(domain.ErrCityNotFound))
}
