package cronit

import "github.com/calendar-go/cronit/internal/odometer"

// WeekFields is the locale-dependent definition of a week: which weekday
// starts it, and how many days a leading partial week needs to count as
// week 1 rather than week 0.
type WeekFields = odometer.WeekFields

// WeekFieldsMode selects how Options resolves WeekFields when no explicit
// value is given.
type WeekFieldsMode int

const (
	// WeekFieldsFromLocale derives WeekFields from Options.Locale. This is
	// the default.
	WeekFieldsFromLocale WeekFieldsMode = iota
	// WeekFieldsISO forces Monday-start, 4-minimal-days weeks.
	WeekFieldsISO
	// WeekFieldsSundayStart forces Sunday-start, 1-minimal-day weeks.
	WeekFieldsSundayStart
)

// ISOWeekFields is the :iso week-fields value.
func ISOWeekFields() WeekFields { return odometer.ISO() }

// SundayStartWeekFields is the :sunday-start week-fields value.
func SundayStartWeekFields() WeekFields { return odometer.SundayStart() }

// resolveWeekFields implements Expression's week_fields option: an
// explicit WeekFields value takes precedence, then the ISO/sunday-start
// modes, then the resolved locale's own convention.
func resolveWeekFields(opts Options, loc Locale) WeekFields {
	if opts.WeekFields != nil {
		return *opts.WeekFields
	}
	switch opts.WeekFieldsMode {
	case WeekFieldsISO:
		return ISOWeekFields()
	case WeekFieldsSundayStart:
		return SundayStartWeekFields()
	default:
		return weekFieldsForLocale(loc)
	}
}
