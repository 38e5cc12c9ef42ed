package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the city name is empty after trimming.
	ErrInvalidInput = errors.New("city name is required")

	// ErrCityNotFound is returned when geocoding yields no results.
	ErrCityNotFound = errors.New("city not found")

	// ErrWeatherDataUnavailable is returned when the forecast response lacks
	// the current block, the daily block, or enough daily entries.
	ErrWeatherDataUnavailable = errors.New("weather data unavailable")

	// ErrCacheCorrupt marks a stored cache entry that could not be decoded.
	// It is recovered as a cache miss and never leaves the cache package.
	ErrCacheCorrupt = errors.New("cache entry corrupt")

	// ErrNetwork matches every *NetworkError via errors.Is.
	ErrNetwork = errors.New("network error")
)

// NetworkError wraps a transport, status, or decoding failure while talking
// to a provider.
type NetworkError struct {
	Op  string // "geocode" or "forecast"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is reports ErrNetwork as a match so callers need not use errors.As.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
