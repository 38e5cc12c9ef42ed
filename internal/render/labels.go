package render

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/couchcryptid/clima/internal/domain"
)

// Labels is the user-facing text for one language.
type Labels struct {
	Lang string // HTML lang attribute

	Title         string
	CityField     string
	Search        string
	Humidity      string
	Wind          string
	Precipitation string
	Conditions    string
	Temperature   string
	Day           string
	Max           string
	Min           string
	NextDays      string // fmt verb %d for the number of days
	ErrorPrefix   string
	ToLight       string
	ToDark        string

	TypeCity    string
	Searching   string
	NotFound    string
	Unavailable string
	Network     string
	Unexpected  string
}

var English = Labels{
	Lang:          "en",
	Title:         "Weather forecast",
	CityField:     "City",
	Search:        "Search",
	Humidity:      "Humidity",
	Wind:          "Wind",
	Precipitation: "Precipitation",
	Conditions:    "Conditions",
	Temperature:   "Temperature",
	Day:           "Day",
	Max:           "Max",
	Min:           "Min",
	NextDays:      "Next %d days",
	ErrorPrefix:   "Error",
	ToLight:       "☀️ Switch to light mode",
	ToDark:        "🌙 Switch to dark mode",
	TypeCity:      "Please type a city name.",
	Searching:     "🔄 Searching...",
	NotFound:      "City not found.",
	Unavailable:   "Weather data is unavailable for this city.",
	Network:       "Could not reach the weather service. Please try again.",
	Unexpected:    "Something went wrong.",
}

var Portuguese = Labels{
	Lang:          "pt",
	Title:         "Previsão do Tempo",
	CityField:     "Cidade",
	Search:        "Buscar",
	Humidity:      "Umidade",
	Wind:          "Vento",
	Precipitation: "Precipitação",
	Conditions:    "Condições",
	Temperature:   "Temperatura",
	Day:           "Dia",
	Max:           "Máx",
	Min:           "Mín",
	NextDays:      "Previsão para os próximos %d dias",
	ErrorPrefix:   "Erro",
	ToLight:       "☀️ Voltar para modo claro",
	ToDark:        "🌙 Ativar modo escuro",
	TypeCity:      "Por favor, digite o nome de uma cidade.",
	Searching:     "🔄 Buscando...",
	NotFound:      "Cidade não encontrada.",
	Unavailable:   "Dados meteorológicos indisponíveis para esta cidade.",
	Network:       "Não foi possível acessar o serviço de previsão. Tente novamente.",
	Unexpected:    "Algo deu errado.",
}

// English first: it is the matcher's fallback.
var (
	labelTags    = []language.Tag{language.English, language.Portuguese}
	labelSets    = []Labels{English, Portuguese}
	labelMatcher = language.NewMatcher(labelTags)
)

// LabelsFor picks the labels for a BCP 47 locale, English when unsupported.
func LabelsFor(locale string) Labels {
	tag, err := language.Parse(locale)
	if err != nil {
		return English
	}
	_, idx, confidence := labelMatcher.Match(tag)
	if confidence == language.No {
		return English
	}
	return labelSets[idx]
}

// ErrorMessage maps a lookup error to the text shown to the user.
func (l Labels) ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidInput):
		return l.TypeCity
	case errors.Is(err, domain.ErrCityNotFound):
		return l.NotFound
	case errors.Is(err, domain.ErrWeatherDataUnavailable):
		return l.Unavailable
	case errors.Is(err, domain.ErrNetwork):
		return l.Network
	default:
		return l.Unexpected
	}
}
