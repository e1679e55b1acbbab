package cronit

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/calendar-go/cronit/internal/odometer"
)

// Locale is a resolved BCP-47 language tag. Its week-fields convention is
// looked up from the tag by weekFieldsForLocale; the :mon../:jan.. keyword
// tables below are the same for every locale.
type Locale struct {
	Tag language.Tag
}

// localeWeekFields maps a handful of base languages/regions this package
// has week-fields data for to their WeekFields. Unrecognized locales fall
// back to ISO, matching most of the world's ISO-8601 convention.
var localeWeekFields = map[string]odometer.WeekFields{
	"en-US": odometer.SundayStart(),
	"en-CA": odometer.SundayStart(),
	"en":    odometer.ISO(),
	"fr":    odometer.ISO(),
	"nl":    odometer.ISO(),
	"de":    odometer.ISO(),
}

// knownLocales fixes one order of localeWeekFields' keys; localeMatcher's
// match indices refer to this slice.
var knownLocales = knownLocaleTags()

var localeMatcher = language.NewMatcher(knownLocales)

func knownLocaleTags() []language.Tag {
	tags := make([]language.Tag, 0, len(localeWeekFields))
	for k := range localeWeekFields {
		tags = append(tags, language.MustParse(k))
	}
	return tags
}

// defaultLocale is the library's zero-value locale, "en".
func defaultLocale() Locale {
	return Locale{Tag: language.English}
}

// ResolveLocale parses a BCP-47 tag (e.g. "en-BE", "fr") and keeps it as
// given; weekFieldsForLocale later matches it to the nearest locale this
// package carries week-fields data for. An empty string resolves to the
// default locale.
func ResolveLocale(tag string) (Locale, error) {
	if tag == "" {
		return defaultLocale(), nil
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return Locale{}, errInvalidField(NoField, tag)
	}
	return Locale{Tag: parsed}, nil
}

func weekFieldsForLocale(loc Locale) odometer.WeekFields {
	_, index, conf := localeMatcher.Match(loc.Tag)
	if conf == language.No {
		return odometer.ISO()
	}
	matched := knownLocales[index]
	base, _ := matched.Base()
	if wf, ok := localeWeekFields[matched.String()]; ok {
		return wf
	}
	if wf, ok := localeWeekFields[base.String()]; ok {
		return wf
	}
	return odometer.ISO()
}

// dayOfWeekKeywords maps the :mon.. :sun keywords (in the library's own
// canonical, locale-independent spelling) to a stdlib Weekday.
var dayOfWeekKeywords = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

// monthKeywords maps the :jan.. :dec keywords to 1..12.
var monthKeywords = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// decodeKeyword resolves a day-of-week or month-of-year keyword to its
// integer value: day-of-week numbers depend on wf's first day of week;
// month always maps to 1..12. ok is false for an unrecognized keyword;
// staticEnumError runs this once per field at Init and turns a decode
// failure into an invalid-sub-field error before any iteration begins.
func decodeKeyword(key FieldKey, kw string, wf odometer.WeekFields) (int, bool) {
	kw = strings.ToLower(kw)
	switch key {
	case DayOfWeek:
		wd, ok := dayOfWeekKeywords[kw]
		if !ok {
			return 0, false
		}
		return odometer.DayOfWeekNumber(wd, wf), true
	case Month:
		v, ok := monthKeywords[kw]
		return v, ok
	default:
		return 0, false
	}
}
