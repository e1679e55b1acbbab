package cronit

import (
	"time"

	"github.com/calendar-go/cronit/internal/odometer"
)

// Board is an ordered chain of calendar fields, smallest unit first, whose
// joint iteration is well-founded: carry always propagates upward to the
// next field in the chain, which always ends at Year.
type Board []FieldKey

// The five fixed boards, enumerated by following each field's declared
// upper-range chain, smallest skip first.
var allBoards = []Board{
	{Second, Minute, Hour, DayOfYear, Year},
	{Second, Minute, Hour, DayOfQuarter, QuarterOfYear, Year},
	{Second, Minute, Hour, DayOfMonth, Month, Year},
	{Second, Minute, Hour, DayOfWeek, WeekOfYear, Year},
	{Second, Minute, Hour, DayOfWeek, WeekOfMonth, Month, Year},
}

// isoBounds gives each field's time-agnostic [min,max] domain, used only
// by board selection's cardinality tie-break, never by the odometer itself
// (which always consults the real instant via odometer.Bounds).
var isoBounds = map[FieldKey][2]int{
	Second:        {0, 59},
	Minute:        {0, 59},
	Hour:          {0, 23},
	DayOfWeek:     {1, 7},
	WeekOfMonth:   {1, 6},
	WeekOfYear:    {1, 53},
	DayOfMonth:    {1, 31},
	DayOfQuarter:  {1, 92},
	QuarterOfYear: {1, 4},
	DayOfYear:     {1, 366},
	Month:         {1, 12},
	Year:          {1, 9999},
}

// weekKeyOf reports the WeekOfMonth/WeekOfYear field that encloses
// DayOfWeek on board b, or NoField if b has no week field (board 1, 2, 3).
func weekKeyOf(b Board) FieldKey {
	for _, k := range b {
		if k == WeekOfMonth || k == WeekOfYear {
			return k
		}
	}
	return NoField
}

// selectBoard picks the board maximizing coverage of expr's field keys,
// breaking ties by minimizing the clipped static cardinality of the
// covered fields; the first board to reach a given (coverage,
// cardinality) pair wins.
func selectBoard(fields map[FieldKey]FieldExpr) Board {
	best := allBoards[0]
	bestCoverage := -1
	bestCardinality := 0
	for _, b := range allBoards {
		coverage := 0
		for _, k := range b {
			if _, ok := fields[k]; ok {
				coverage++
			}
		}
		if coverage < bestCoverage {
			continue
		}
		cardinality := staticCardinality(b, fields)
		if coverage > bestCoverage || cardinality < bestCardinality {
			best, bestCoverage, bestCardinality = b, coverage, cardinality
		}
	}
	return best
}

func staticCardinality(b Board, fields map[FieldKey]FieldExpr) int {
	total := 0
	for _, k := range b {
		fe, ok := fields[k]
		if !ok {
			continue
		}
		bounds := isoBounds[k]
		total += cardinalityOf(k, fe, bounds[0], bounds[1])
	}
	return total
}

func cardinalityOf(key FieldKey, fe FieldExpr, min, max int) int {
	it := clipToScalarIter(key, fe, min, max, ISOWeekFields())
	n := 0
	cur, ok := it.First()
	for ok {
		n++
		cur, ok = cur.Next()
	}
	return n
}

// topRecurrenceOf is the smallest field (by FieldKey's declared order,
// second..year) explicitly set to Star anywhere in the expression, or
// Year if none. It is exposed on Cronit as a hint for callers but not
// consumed by the engine itself.
func topRecurrenceOf(fields map[FieldKey]FieldExpr) FieldKey {
	for _, k := range allFieldKeys {
		if fe, ok := fields[k]; ok && fe.kind == kindStar {
			return k
		}
	}
	return Year
}

// fillBoard infers a value for every board field the expression leaves
// unset: walking the board smallest-first, fields before the first
// client-defined field default to Enum([]) (a single first value); fields
// after default to the full Range.
func fillBoard(b Board, fields map[FieldKey]FieldExpr) map[FieldKey]FieldExpr {
	filled := make(map[FieldKey]FieldExpr, len(b))
	seenClientField := false
	for _, k := range b {
		if fe, ok := fields[k]; ok {
			filled[k] = fe
			seenClientField = true
			continue
		}
		if seenClientField {
			filled[k] = Star()
		} else {
			filled[k] = EnumExpr()
		}
	}
	return filled
}

// maskKeysOf is the expression's field keys not covered by the board.
func maskKeysOf(b Board, fields map[FieldKey]FieldExpr) []FieldKey {
	onBoard := make(map[FieldKey]bool, len(b))
	for _, k := range b {
		onBoard[k] = true
	}
	var mask []FieldKey
	for k := range fields {
		if !onBoard[k] {
			mask = append(mask, k)
		}
	}
	return mask
}

// maskPredicate builds the candidate-instant filter for fields the board
// doesn't cover: every mask key's expression must admit that field's
// value, read at the candidate zoned instant's local date-time.
func maskPredicate(maskKeys []FieldKey, fields map[FieldKey]FieldExpr, wf WeekFields) func(time.Time) bool {
	exprs := make(map[FieldKey]FieldExpr, len(maskKeys))
	for _, k := range maskKeys {
		exprs[k] = fields[k]
	}
	return func(t time.Time) bool {
		civil := odometer.CivilOf(t)
		for _, k := range maskKeys {
			min, max := odometer.Bounds(k, civil, wf, NoField)
			it := clipToScalarIter(k, exprs[k], min, max, wf)
			if !it.Contains(odometer.Read(k, civil, wf, NoField)) {
				return false
			}
		}
		return true
	}
}
