package odometer

import "time"

// FieldKey identifies one of the twelve calendar fields a board or mask can
// reference. The zero value, NoField, means "no such field on the board"
// (e.g. day-of-week has no enclosing week field).
type FieldKey int

const (
	NoField FieldKey = iota
	Second
	Minute
	Hour
	DayOfWeek
	WeekOfMonth
	WeekOfYear
	DayOfMonth
	DayOfQuarter
	QuarterOfYear
	DayOfYear
	Month
	Year
)

func (k FieldKey) String() string {
	switch k {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case DayOfWeek:
		return "day-of-week"
	case WeekOfMonth:
		return "week-of-month"
	case WeekOfYear:
		return "week-of-year"
	case DayOfMonth:
		return "day-of-month"
	case DayOfQuarter:
		return "day-of-quarter"
	case QuarterOfYear:
		return "quarter-of-year"
	case DayOfYear:
		return "day-of-year"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "no-field"
	}
}

// WeekFields resolves the locale-dependent definition of a week: which
// weekday starts it, and how many days of a partial leading week must fall
// inside a month/year for that week to count as week 1 rather than week 0.
type WeekFields struct {
	FirstDayOfWeek        time.Weekday
	MinimalDaysInFirstWeek int
}

// ISO returns the ISO-8601 week-fields definition: weeks start on Monday,
// and a week must have at least 4 days in the new period to count as its
// first week.
func ISO() WeekFields {
	return WeekFields{FirstDayOfWeek: time.Monday, MinimalDaysInFirstWeek: 4}
}

// SundayStart returns the common US-locale week-fields definition: weeks
// start on Sunday, and any leading partial week counts as week 1.
func SundayStart() WeekFields {
	return WeekFields{FirstDayOfWeek: time.Sunday, MinimalDaysInFirstWeek: 1}
}

// dowIndex returns t's weekday position within wf's week, 1..7, where 1
// is wf.FirstDayOfWeek.
func dowIndex(t time.Time, wf WeekFields) int {
	return int(t.Weekday()-wf.FirstDayOfWeek+7)%7 + 1
}

// DayOfWeekNumber maps a stdlib Weekday to the 1..7 numbering used on the
// day-of-week field, per wf's first day of week. Exported for the locale
// keyword tables, which resolve :mon.. :sun through this same convention.
func DayOfWeekNumber(wd time.Weekday, wf WeekFields) int {
	return dowIndex(dateOnWeekday(wd), wf)
}

// dateOnWeekday returns an arbitrary fixed date that falls on wd; only its
// Weekday() matters to callers.
func dateOnWeekday(wd time.Weekday) time.Time {
	// 2023-01-01 was a Sunday.
	return time.Date(2023, time.January, 1+int(wd), 0, 0, 0, 0, time.UTC)
}

// weekStart returns the start (at 00:00:00) of the week-fields week
// containing t.
func weekStart(t time.Time, wf WeekFields) time.Time {
	d := civilDate(t)
	return d.AddDate(0, 0, -(dowIndex(d, wf) - 1))
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)).Hours() / 24)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year int, month time.Month) int {
	return lastDayOfMonth(year, month).Day()
}

func startOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year int, month time.Month) time.Time {
	return startOfMonth(year, month+1).AddDate(0, 0, -1)
}

func startOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func lastDayOfYear(year int) time.Time {
	return startOfYear(year + 1).AddDate(0, 0, -1)
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func quarterOf(month time.Month) int {
	return (int(month)-1)/3 + 1
}

func startOfQuarter(year, quarter int) time.Time {
	return startOfMonth(year, time.Month((quarter-1)*3+1))
}

func lastDayOfQuarter(year, quarter int) time.Time {
	return startOfQuarter(year, quarter+1).AddDate(0, 0, -1)
}

func daysInQuarter(year, quarter int) int {
	return daysBetween(startOfQuarter(year, quarter), lastDayOfQuarter(year, quarter)) + 1
}

// weekOfPeriod computes the 0- or 1-based week number of t within the
// period (month or year) starting at periodStart, per wf. A leading
// partial week shorter than wf.MinimalDaysInFirstWeek is numbered week 0;
// otherwise it is week 1.
func weekOfPeriod(periodStart, t time.Time, wf WeekFields) int {
	dow1 := dowIndex(periodStart, wf)
	daysInFirstWeek := 8 - dow1
	dayOfPeriod := daysBetween(periodStart, t) + 1
	if daysInFirstWeek >= wf.MinimalDaysInFirstWeek {
		if dayOfPeriod <= daysInFirstWeek {
			return 1
		}
		return (dayOfPeriod-daysInFirstWeek-1)/7 + 2
	}
	if dayOfPeriod <= daysInFirstWeek {
		return 0
	}
	return (dayOfPeriod-daysInFirstWeek-1)/7 + 1
}

func weeksInMonth(year int, month time.Month, wf WeekFields) (min, max int) {
	start := startOfMonth(year, month)
	end := lastDayOfMonth(year, month)
	return weekOfPeriod(start, start, wf), weekOfPeriod(start, end, wf)
}

func weeksInYear(year int, wf WeekFields) (min, max int) {
	start := startOfYear(year)
	end := lastDayOfYear(year)
	return weekOfPeriod(start, start, wf), weekOfPeriod(start, end, wf)
}

// Bounds returns the valid integer range of key at the local date-time t.
// weekKey, when not NoField, names the WeekOfMonth or WeekOfYear field on
// the board enclosing a DayOfWeek field, and is required to compute
// day-of-week's bounds correctly at month/year edges.
func Bounds(key FieldKey, t time.Time, wf WeekFields, weekKey FieldKey) (min, max int) {
	switch key {
	case Second, Minute:
		return 0, 59
	case Hour:
		return 0, 23
	case DayOfWeek:
		return dayOfWeekBounds(weekKey, t, wf)
	case WeekOfMonth:
		return weeksInMonth(t.Year(), t.Month(), wf)
	case WeekOfYear:
		return weeksInYear(t.Year(), wf)
	case DayOfMonth:
		return 1, daysInMonth(t.Year(), t.Month())
	case DayOfQuarter:
		return 1, daysInQuarter(t.Year(), quarterOf(t.Month()))
	case QuarterOfYear:
		return 1, 4
	case DayOfYear:
		return 1, daysInYear(t.Year())
	case Month:
		return 1, 12
	case Year:
		return 1, 9999
	default:
		return 0, 0
	}
}

// WidestBounds returns the most generous integer range key can ever take,
// across every possible instant. Unlike Bounds it does not depend on a
// particular date, month length, or week-fields convention; it exists to
// validate a literal field value or keyword once, at construction time,
// rather than against one instant's narrower clipped domain.
func WidestBounds(key FieldKey) (min, max int) {
	switch key {
	case Second, Minute:
		return 0, 59
	case Hour:
		return 0, 23
	case DayOfWeek:
		return 1, 7
	case WeekOfMonth:
		return 0, 6
	case WeekOfYear:
		return 0, 54
	case DayOfMonth:
		return 1, 31
	case DayOfQuarter:
		return 1, 92
	case QuarterOfYear:
		return 1, 4
	case DayOfYear:
		return 1, 366
	case Month:
		return 1, 12
	case Year:
		return 1, 9999
	default:
		return 0, 0
	}
}

// dayOfWeekBounds clips day-of-week's range at the edges of the enclosing
// week-of-month/week-of-year bucket, so that adjusting day-of-week never
// silently crosses into the neighboring month/year.
func dayOfWeekBounds(weekKey FieldKey, t time.Time, wf WeekFields) (min, max int) {
	if weekKey == NoField {
		return 1, 7
	}
	periodStart, periodEnd := weekPeriodBounds(weekKey, t)
	weekVal := weekOfPeriod(periodStart, t, wf)
	weekMin := weekOfPeriod(periodStart, periodStart, wf)
	weekMax := weekOfPeriod(periodStart, periodEnd, wf)
	switch {
	case weekVal == weekMin:
		return dowIndex(periodStart, wf), 7
	case weekVal == weekMax:
		return 1, dowIndex(periodEnd, wf)
	default:
		return 1, 7
	}
}

func weekPeriodBounds(weekKey FieldKey, t time.Time) (start, end time.Time) {
	if weekKey == WeekOfYear {
		return startOfYear(t.Year()), lastDayOfYear(t.Year())
	}
	return startOfMonth(t.Year(), t.Month()), lastDayOfMonth(t.Year(), t.Month())
}

// CivilOf strips t's zone, keeping its Y/M/D h:m:s as a time.UTC-proxy
// civil date-time.
func CivilOf(t time.Time) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, m, d, h, mi, s, 0, time.UTC)
}

// Read returns key's current value at t.
func Read(key FieldKey, t time.Time, wf WeekFields, weekKey FieldKey) int {
	switch key {
	case Second:
		return t.Second()
	case Minute:
		return t.Minute()
	case Hour:
		return t.Hour()
	case DayOfWeek:
		return dowIndex(t, wf)
	case WeekOfMonth:
		return weekOfPeriod(startOfMonth(t.Year(), t.Month()), t, wf)
	case WeekOfYear:
		return weekOfPeriod(startOfYear(t.Year()), t, wf)
	case DayOfMonth:
		return t.Day()
	case DayOfQuarter:
		return daysBetween(startOfQuarter(t.Year(), quarterOf(t.Month())), t) + 1
	case QuarterOfYear:
		return quarterOf(t.Month())
	case DayOfYear:
		return daysBetween(startOfYear(t.Year()), t) + 1
	case Month:
		return int(t.Month())
	case Year:
		return t.Year()
	default:
		return 0
	}
}

// Adjust returns t with key set to v, leaving lower-order fields as they
// are (the odometer resets them separately via rec_init). DayOfWeek and
// the week fields delegate to the repaired adjusters below.
func Adjust(key FieldKey, v int, t time.Time, wf WeekFields, weekKey FieldKey) time.Time {
	switch key {
	case Second:
		return setClock(t, t.Hour(), t.Minute(), v)
	case Minute:
		return setClock(t, t.Hour(), v, t.Second())
	case Hour:
		return setClock(t, v, t.Minute(), t.Second())
	case DayOfWeek:
		return adjustDayOfWeek(v, t, wf)
	case WeekOfMonth:
		return weekAdjust(WeekOfMonth, v, t, wf)
	case WeekOfYear:
		return weekAdjust(WeekOfYear, v, t, wf)
	case DayOfMonth:
		return setDate(t, t.Year(), t.Month(), v)
	case DayOfQuarter:
		base := startOfQuarter(t.Year(), quarterOf(t.Month()))
		return withClockOf(t, base.AddDate(0, 0, v-1))
	case QuarterOfYear:
		base := startOfQuarter(t.Year(), v)
		return withClockOf(t, time.Date(base.Year(), base.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	case DayOfYear:
		base := startOfYear(t.Year())
		return withClockOf(t, base.AddDate(0, 0, v-1))
	case Month:
		return setDate(t, t.Year(), time.Month(v), t.Day())
	case Year:
		return setDate(t, v, t.Month(), t.Day())
	default:
		return t
	}
}

func setClock(t time.Time, h, m, s int) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, h, m, s, 0, time.UTC)
}

func setDate(t time.Time, y int, m time.Month, d int) time.Time {
	h, mi, s := t.Clock()
	return time.Date(y, m, d, h, mi, s, 0, time.UTC)
}

func withClockOf(t, date time.Time) time.Time {
	h, mi, s := t.Clock()
	y, m, d := date.Date()
	return time.Date(y, m, d, h, mi, s, 0, time.UTC)
}

// adjustDayOfWeek moves t, within its current week-fields week, to the day
// numbered v (1..7 per wf).
func adjustDayOfWeek(v int, t time.Time, wf WeekFields) time.Time {
	ws := weekStart(t, wf)
	return withClockOf(t, ws.AddDate(0, 0, v-1))
}

// weekAdjust sets weekKey (WeekOfMonth or WeekOfYear) to v, then snaps
// day-of-week to the month/year-bucket-preserving edge: 7 at the range
// minimum, 1 at the range maximum, and otherwise 1 when moving the week
// forward, 7 when moving it backward.
func weekAdjust(weekKey FieldKey, v int, t time.Time, wf WeekFields) time.Time {
	cur := Read(weekKey, t, wf, NoField)
	delta := v - cur
	shifted := withClockOf(t, civilDate(t).AddDate(0, 0, delta*7))

	weekMin, weekMax := Bounds(weekKey, t, wf, NoField)
	var targetDow int
	switch {
	case v == weekMin:
		targetDow = 7
	case v == weekMax:
		targetDow = 1
	case v > cur:
		targetDow = 1
	default:
		targetDow = 7
	}
	return adjustDayOfWeek(targetDow, shifted, wf)
}

// Transition describes the single DST boundary instant relevant to a civil
// date-time that could not be resolved to exactly one zoned instant. At is
// the instant the new offset takes effect: for a gap, the gap's exit (the
// first valid local instant after it); for an overlap, the instant the
// ambiguous wall-clock hour began repeating.
type Transition struct {
	Gap     bool
	Overlap bool
	At      time.Time
}

// GapExit is the first valid local instant after the gap, used to advance
// a forward step that lands inside a gap.
func (tr Transition) GapExit() time.Time { return tr.At }

// GapEntry is the last valid local instant before the gap, used to advance
// a backward step that lands inside a gap.
func (tr Transition) GapEntry() time.Time { return tr.At.Add(-1 * time.Second) }

// ZonedFromCivil converts a civil date-time (Y/M/D h:m:s read against
// time.UTC) into a real zoned instant in loc, resolving DST gaps and
// overlaps. On a gap, the returned time.Time is meaningless to the caller
// (the odometer re-seeds the civil date-time at Transition.GapExit and
// reconverts). On an overlap, the instant using the earlier UTC offset is
// returned.
func ZonedFromCivil(civil time.Time, loc *time.Location) (time.Time, *Transition) {
	y, m, d := civil.Date()
	h, mi, s := civil.Clock()
	guess := time.Date(y, m, d, h, mi, s, 0, loc)

	// A gap: the normalized instant's civil components don't match what
	// we asked for, because the requested wall clock never existed.
	gy, gm, gd := guess.Date()
	gh, gmi, gs := guess.Clock()
	if gy != y || gm != m || gd != d || gh != h || gmi != mi || gs != s {
		start, _ := guess.ZoneBounds()
		return guess, &Transition{Gap: true, At: start}
	}

	// An overlap: the same wall clock is also reachable via the offset on
	// the other side of the nearest transition. guess may have resolved
	// to either side of an ambiguous hour, so find the transition nearest
	// guess (whichever bound of its zone segment is closer) rather than
	// assuming it is the segment's start.
	start, end := guess.ZoneBounds()
	transitionAt := start
	if !end.IsZero() && end.Sub(guess) < guess.Sub(start) {
		transitionAt = end
	}
	_, offBefore := transitionAt.Add(-1 * time.Second).Zone()
	_, offAfter := transitionAt.Zone()
	if offBefore != offAfter {
		earlier := time.Date(y, m, d, h, mi, s, 0, time.FixedZone("", offBefore))
		later := time.Date(y, m, d, h, mi, s, 0, time.FixedZone("", offAfter))
		if earlier.Before(transitionAt) && !later.Before(transitionAt) {
			return earlier, &Transition{Overlap: true, At: transitionAt}
		}
	}
	return guess, nil
}
