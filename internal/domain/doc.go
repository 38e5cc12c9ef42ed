// Package domain models the weather lookup shown by the clima widget.
//
// # Data Source
//
// All data comes from Open-Meteo (https://open-meteo.com), which needs no API
// key. A lookup is two requests: the geocoding API resolves a city name to
// coordinates, then the forecast API returns the current conditions and a
// daily series for those coordinates.
//
// # Open-Meteo Conventions
//
// Timestamps:
//
//	Requested with timezone=auto, so times are local to the location and carry
//	no offset: "2025-11-14T10:30" for instants, "2025-11-14" for days.
//	They are kept as strings and rendered as wall-clock time.
//
// Daily series:
//
//	Index-parallel arrays (time, temperature_2m_max, temperature_2m_min,
//	precipitation_sum, weathercode, relative_humidity_2m_max). Entry i of every
//	array describes the same day. A series shorter than [ForecastDays] is
//	treated as unavailable rather than padded.
//
// Weather codes:
//
//	WMO interpretation codes (0 clear sky ... 99 thunderstorm with heavy hail).
//	[IconForCode] maps them to icon identifiers; unmapped codes yield
//	[IconUnknown].
//
// Units:
//
//	Temperature in °C, wind speed in km/h, precipitation in mm, humidity in %.
//
// # Caching
//
// A [WeatherResult] is the unit stored in the cache and handed to the
// renderer. Results are cached per normalized city name for [CacheTTL].
package domain
