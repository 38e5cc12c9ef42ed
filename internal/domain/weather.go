package domain

import "time"

const (
	// ForecastDays is the number of daily entries kept in a WeatherResult.
	ForecastDays = 5

	// CacheTTL is the maximum age of a cached WeatherResult.
	CacheTTL = 30 * time.Minute
)

// Location is a geocoded place.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"` // IANA name reported by the geocoder
}

// CurrentConditions is the "now" block of a forecast.
type CurrentConditions struct {
	TemperatureC     float64 `json:"temperatureC"`
	WindSpeedKmh     float64 `json:"windSpeedKmh"`
	WindDirectionDeg float64 `json:"windDirectionDeg"`
	WeatherCode      int     `json:"weatherCode"`
	IsDay            bool    `json:"isDay"`
	ObservedAt       string  `json:"observedAt"` // local ISO-8601, e.g. "2025-11-14T10:30"
}

// DailyForecastEntry is one day of the forecast.
type DailyForecastEntry struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	TempMaxC        float64 `json:"tempMaxC"`
	TempMinC        float64 `json:"tempMinC"`
	PrecipitationMm float64 `json:"precipitationMm"`
	HumidityPct     float64 `json:"humidityPct"`
	WeatherCode     int     `json:"weatherCode"`
}

// WeatherResult is the shaped outcome of a lookup. It is what gets cached and rendered.
type WeatherResult struct {
	Location    Location             `json:"location"`
	Current     CurrentConditions    `json:"current"`
	Icon        Icon                 `json:"icon"`
	DisplayTime string               `json:"displayTime"`
	Forecast    []DailyForecastEntry `json:"forecast"`
}

// DailySeries holds the provider's index-parallel daily arrays.
type DailySeries struct {
	Dates           []string
	TempMaxC        []float64
	TempMinC        []float64
	PrecipitationMm []float64
	HumidityPct     []float64
	WeatherCodes    []int
}

// ForecastReport is the forecast provider's answer. Either block may be nil
// when the provider omitted it.
type ForecastReport struct {
	Current *CurrentConditions
	Daily   *DailySeries
}
