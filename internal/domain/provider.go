package domain

import "context"

// Geocoder resolves place names to coordinates.
type Geocoder interface {
	// Search returns matching places in provider order. An empty slice means
	// nothing matched; it is not an error.
	Search(ctx context.Context, name string) ([]Location, error)
}

// Forecaster fetches current conditions and the daily series for a coordinate.
type Forecaster interface {
	Forecast(ctx context.Context, latitude, longitude float64) (ForecastReport, error)
}
