package openmeteo

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/couchcryptid/clima/internal/domain"
)

// Sample request: https://api.open-meteo.com/v1/forecast?latitude=-23.55&longitude=-46.63&current_weather=true&daily=temperature_2m_max,temperature_2m_min,precipitation_sum,weathercode,relative_humidity_2m_max&timezone=auto
var dailyVars = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
	"weathercode",
	"relative_humidity_2m_max",
}

// Forecast fetches current conditions and the daily series at a coordinate.
// Blocks missing from the response are left nil in the report.
func (c *Client) Forecast(ctx context.Context, latitude, longitude float64) (domain.ForecastReport, error) {
	params := url.Values{
		"latitude":        {strconv.FormatFloat(latitude, 'f', -1, 64)},
		"longitude":       {strconv.FormatFloat(longitude, 'f', -1, 64)},
		"current_weather": {"true"},
		"daily":           {strings.Join(dailyVars, ",")},
		"timezone":        {"auto"},
	}

	var resp forecastResponse
	if err := c.getJSON(ctx, providerForecast, c.forecastURL+"?"+params.Encode(), &resp); err != nil {
		return domain.ForecastReport{}, err
	}

	report := mapForecastResponse(resp)
	if report.Current == nil || report.Daily == nil {
		c.countRequest(providerForecast, "empty")
	} else {
		c.countRequest(providerForecast, "success")
	}
	return report, nil
}

// mapForecastResponse converts the provider payload. A current block with a
// null field is dropped, and each daily series is cut at its first null, so
// missing readings surface as absent data rather than zeros.
func mapForecastResponse(resp forecastResponse) domain.ForecastReport {
	var report domain.ForecastReport

	if cw := resp.CurrentWeather; cw != nil && cw.complete() {
		report.Current = &domain.CurrentConditions{
			TemperatureC:     *cw.Temperature,
			WindSpeedKmh:     *cw.WindSpeed,
			WindDirectionDeg: deref(cw.WindDirection),
			WeatherCode:      *cw.WeatherCode,
			IsDay:            *cw.IsDay == 1,
			ObservedAt:       *cw.Time,
		}
	}

	if d := resp.Daily; d != nil {
		report.Daily = &domain.DailySeries{
			Dates:           leadingValues(d.Time),
			TempMaxC:        leadingValues(d.Temperature2MMax),
			TempMinC:        leadingValues(d.Temperature2MMin),
			PrecipitationMm: leadingValues(d.PrecipitationSum),
			HumidityPct:     leadingValues(d.RelativeHumidity2MMax),
			WeatherCodes:    leadingValues(d.WeatherCode),
		}
	}
	return report
}

// complete reports whether every field the widget displays is present.
// Wind direction is informational and may be null.
func (cw *currentWeather) complete() bool {
	return cw.Time != nil && cw.Temperature != nil && cw.WindSpeed != nil &&
		cw.WeatherCode != nil && cw.IsDay != nil
}

// leadingValues returns the values before the first null.
func leadingValues[T any](ptrs []*T) []T {
	values := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		if p == nil {
			break
		}
		values = append(values, *p)
	}
	return values
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
