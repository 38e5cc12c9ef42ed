package domain

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// DefaultLocale is used when a locale cannot be parsed or matched.
const DefaultLocale = "en-US"

// localeFormat holds the layouts used for one supported locale. Layouts are
// Go reference layouts; monday translates day and month names.
type localeFormat struct {
	locale monday.Locale
	long   string // weekday, long date, hour:minute
	short  string // forecast card date
}

// The first entry is the matcher's fallback.
var (
	supportedTags = []language.Tag{
		language.AmericanEnglish,
		language.BrazilianPortuguese,
		language.EuropeanPortuguese,
		language.BritishEnglish,
		language.EuropeanSpanish,
		language.French,
		language.German,
		language.Italian,
	}

	localeFormats = []localeFormat{
		{monday.LocaleEnUS, "Monday, January 2, 2006 at 03:04 PM", "Mon, 01/02"},
		{monday.LocalePtBR, "Monday, 2 de January de 2006 às 15:04", "Mon, 02/01"},
		{monday.LocalePtPT, "Monday, 2 de January de 2006 às 15:04", "Mon, 02/01"},
		{monday.LocaleEnGB, "Monday 2 January 2006 at 15:04", "Mon 02/01"},
		{monday.LocaleEsES, "Monday, 2 de January de 2006, 15:04", "Mon, 02/01"},
		{monday.LocaleFrFR, "Monday 2 January 2006 à 15:04", "Mon 02/01"},
		{monday.LocaleDeDE, "Monday, 2. January 2006 um 15:04", "Mon, 02.01."},
		{monday.LocaleItIT, "Monday 2 January 2006 alle 15:04", "Mon 02/01"},
	}

	localeMatcher = language.NewMatcher(supportedTags)
)

// Accepted timestamp layouts, most specific provider format first.
var timestampLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// FormatDisplayTimestamp renders an ISO-8601 timestamp as weekday, long date
// and hour:minute for the given BCP 47 locale. The wall-clock time is kept as
// written. Malformed input is returned unchanged.
func FormatDisplayTimestamp(iso, locale string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return iso
	}
	f := resolveLocale(locale)
	return monday.Format(t, f.long, f.locale)
}

// FormatForecastDate renders a YYYY-MM-DD day as a short weekday and
// day/month. Malformed input is returned unchanged.
func FormatForecastDate(date, locale string) string {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	f := resolveLocale(locale)
	return monday.Format(t, f.short, f.locale)
}

func parseTimestamp(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func resolveLocale(locale string) localeFormat {
	tag, err := language.Parse(locale)
	if err != nil {
		return localeFormats[0]
	}
	_, idx, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return localeFormats[0]
	}
	return localeFormats[idx]
}
