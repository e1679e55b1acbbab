package cronit

import "github.com/calendar-go/cronit/internal/odometer"

// FieldKey identifies one of the twelve calendar fields an Expression may
// constrain.
type FieldKey = odometer.FieldKey

// The twelve field keys, and NoField meaning "not present on the board".
const (
	NoField       = odometer.NoField
	Second        = odometer.Second
	Minute        = odometer.Minute
	Hour          = odometer.Hour
	DayOfWeek     = odometer.DayOfWeek
	WeekOfMonth   = odometer.WeekOfMonth
	WeekOfYear    = odometer.WeekOfYear
	DayOfMonth    = odometer.DayOfMonth
	DayOfQuarter  = odometer.DayOfQuarter
	QuarterOfYear = odometer.QuarterOfYear
	DayOfYear     = odometer.DayOfYear
	Month         = odometer.Month
	Year          = odometer.Year
)

// allFieldKeys lists every field in FieldKey's declared order, second
// first; topRecurrenceOf relies on this order to find the smallest field.
var allFieldKeys = []FieldKey{
	Second, Minute, Hour, DayOfWeek, WeekOfMonth, WeekOfYear,
	DayOfMonth, DayOfQuarter, QuarterOfYear, DayOfYear, Month, Year,
}
