package openmeteo

// Open-Meteo API response types.

type geocodingResponse struct {
	Results []geocodingResult `json:"results"` // absent when nothing matches
}

type geocodingResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
}

type forecastResponse struct {
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	Timezone         string          `json:"timezone"`
	UTCOffsetSeconds int             `json:"utc_offset_seconds"`
	CurrentWeather   *currentWeather `json:"current_weather"`
	Daily            *daily          `json:"daily"`
}

// Numeric fields are pointers: Open-Meteo reports missing values as null.
type currentWeather struct {
	Time          *string  `json:"time"`
	Temperature   *float64 `json:"temperature"`   // °C
	WindSpeed     *float64 `json:"windspeed"`     // km/h
	WindDirection *float64 `json:"winddirection"` // degrees
	WeatherCode   *int     `json:"weathercode"`
	IsDay         *int     `json:"is_day"` // 1 day, 0 night
}

type daily struct {
	Time                  []*string  `json:"time"`
	Temperature2MMax      []*float64 `json:"temperature_2m_max"`
	Temperature2MMin      []*float64 `json:"temperature_2m_min"`
	PrecipitationSum      []*float64 `json:"precipitation_sum"`
	WeatherCode           []*int     `json:"weathercode"`
	RelativeHumidity2MMax []*float64 `json:"relative_humidity_2m_max"`
}
