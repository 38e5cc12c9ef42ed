package domain

// Icon is a semantic weather icon identifier.
type Icon string

const (
	IconClear                 Icon = "clear"
	IconPartlyCloudy          Icon = "partly-cloudy"
	IconCloudy                Icon = "cloudy"
	IconOvercast              Icon = "overcast"
	IconFog                   Icon = "fog"
	IconDrizzleLight          Icon = "drizzle-light"
	IconDrizzle               Icon = "drizzle"
	IconDrizzleDense          Icon = "drizzle-dense"
	IconRainLight             Icon = "rain-light"
	IconRain                  Icon = "rain"
	IconRainHeavy             Icon = "rain-heavy"
	IconSnowLight             Icon = "snow-light"
	IconSnow                  Icon = "snow"
	IconSnowHeavy             Icon = "snow-heavy"
	IconThunderstorm          Icon = "thunderstorm"
	IconThunderstormHail      Icon = "thunderstorm-hail"
	IconThunderstormHeavyHail Icon = "thunderstorm-heavy-hail"
	IconUnknown               Icon = "unknown"
)

var iconsByCode = map[int]Icon{
	0:  IconClear,
	1:  IconPartlyCloudy,
	2:  IconCloudy,
	3:  IconOvercast,
	45: IconFog,
	48: IconFog,
	51: IconDrizzleLight,
	53: IconDrizzle,
	55: IconDrizzleDense,
	61: IconRainLight,
	63: IconRain,
	65: IconRainHeavy,
	71: IconSnowLight,
	73: IconSnow,
	75: IconSnowHeavy,
	95: IconThunderstorm,
	96: IconThunderstormHail,
	99: IconThunderstormHeavyHail,
}

// Weather Icons (erikflowers.github.io/weather-icons) class per icon.
var cssClasses = map[Icon]string{
	IconClear:                 "wi-day-sunny",
	IconPartlyCloudy:          "wi-day-sunny-overcast",
	IconCloudy:                "wi-day-cloudy",
	IconOvercast:              "wi-cloudy",
	IconFog:                   "wi-fog",
	IconDrizzleLight:          "wi-sprinkle",
	IconDrizzle:               "wi-showers",
	IconDrizzleDense:          "wi-rain",
	IconRainLight:             "wi-rain",
	IconRain:                  "wi-rain-wind",
	IconRainHeavy:             "wi-rain-mix",
	IconSnowLight:             "wi-snow",
	IconSnow:                  "wi-snow-wind",
	IconSnowHeavy:             "wi-snowflake-cold",
	IconThunderstorm:          "wi-thunderstorm",
	IconThunderstormHail:      "wi-storm-showers",
	IconThunderstormHeavyHail: "wi-thunderstorm",
}

// IconForCode maps a WMO weather code to its icon. Codes outside the table
// map to IconUnknown.
func IconForCode(code int) Icon {
	if icon, ok := iconsByCode[code]; ok {
		return icon
	}
	return IconUnknown
}

// CSSClass returns the Weather Icons class for the icon, "wi-na" when unmapped.
func (i Icon) CSSClass() string {
	if class, ok := cssClasses[i]; ok {
		return class
	}
	return "wi-na"
}

// Code descriptions follow the WMO interpretation table published with the
// Open-Meteo forecast API.
var codeDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// DescribeCode returns a human-readable description of a weather code.
func DescribeCode(code int) string {
	if desc, ok := codeDescriptions[code]; ok {
		return desc
	}
	return "Unknown"
}
