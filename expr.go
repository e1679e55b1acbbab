package cronit

import (
	"sort"

	"github.com/calendar-go/cronit/internal/odometer"
)

type exprKind int

const (
	kindStar exprKind = iota
	kindRange
	kindEnum
	kindInt
	kindKeyword
)

// FieldExpr is a tagged union of two shapes: a Range (min?, max?, step?)
// or an Enum (a list of items, themselves FieldExprs). A bare integer or
// keyword is sugar for a single-element Enum; a bare Star is sugar for an
// unbounded Range. Build values with Star, RangeExpr, IntExpr,
// KeywordExpr, and EnumExpr.
type FieldExpr struct {
	kind    exprKind
	min     *int
	max     *int
	step    *int
	items   []FieldExpr
	intVal  int
	keyword string
}

// Star is the bare :* expression: every value on the field's domain.
func Star() FieldExpr { return FieldExpr{kind: kindStar} }

// RangeExpr is the [:* min? max? step?] expression. A nil bound defaults
// to the field's domain edge (or step 1) at clip time.
func RangeExpr(min, max, step *int) FieldExpr {
	return FieldExpr{kind: kindRange, min: min, max: max, step: step}
}

// IntExpr is a bare integer. Negative values denote an offset from the
// field's upper bound, resolved at clip time.
func IntExpr(v int) FieldExpr { return FieldExpr{kind: kindInt, intVal: v} }

// KeywordExpr is a bare day-of-week or month-of-year keyword (e.g. "mon",
// "dec"). Locale-independent: the library's own canonical spelling.
func KeywordExpr(kw string) FieldExpr { return FieldExpr{kind: kindKeyword, keyword: kw} }

// EnumExpr is the [:+ item...] expression: an explicit, possibly mixed
// sequence of integers, keywords, and nested ranges/enums. A bare :+ with
// no items is EnumExpr() and defaults to the field's minimum at clip time.
func EnumExpr(items ...FieldExpr) FieldExpr { return FieldExpr{kind: kindEnum, items: items} }

// Ints is a convenience sugar for an Enum of bare integers.
func Ints(vs ...int) FieldExpr {
	items := make([]FieldExpr, len(vs))
	for i, v := range vs {
		items[i] = IntExpr(v)
	}
	return EnumExpr(items...)
}

// isRange reports whether e desugars to the Range variant.
func (e FieldExpr) isRange() bool { return e.kind == kindStar || e.kind == kindRange }

func resolveOffset(v, min, max int) int {
	if v < 0 {
		return max + 1 + v
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clipToScalarIter builds the ScalarIter for field key's expression e at
// the instant whose domain is [min,max]: resolving negative offsets,
// decoding keywords, and expanding nested ranges/enums into the clipped
// set of integers the field may take at this instant. By the time this
// runs, staticStepError and staticEnumError have already rejected any
// expression that could never resolve to a value at any instant, so an
// empty result here means only that this particular instant's narrower
// domain happens to admit none of e's items (e.g. day-of-month 31 does
// not exist in April) — legitimate sparseness, not malformed input. The
// one case that defaults rather than empties is EnumExpr() with no items
// at all, Enum's documented sugar for the field's minimum.
func clipToScalarIter(key FieldKey, e FieldExpr, min, max int, wf odometer.WeekFields) odometer.ScalarIter {
	if e.isRange() {
		rmin, rmax, rstep := rangeBounds(e, min, max)
		if rstep <= 0 {
			rstep = 1
		}
		rmin = clampInt(rmin, min, max)
		rmax = clampInt(rmax, min, max)
		return odometer.NewRangeScalarIter(odometer.NewRangeIter(rmin, rmax, rstep))
	}
	if e.kind == kindEnum && len(e.items) == 0 {
		return odometer.NewEnumScalarIter(odometer.NewEnumIter([]int{min}))
	}
	items := e.items
	if e.kind == kindInt || e.kind == kindKeyword {
		items = []FieldExpr{e}
	}
	values := expandEnumItems(key, items, min, max, wf)
	return odometer.NewEnumScalarIter(odometer.NewEnumIter(values))
}

func rangeBounds(e FieldExpr, min, max int) (rmin, rmax, rstep int) {
	rmin, rmax, rstep = min, max, 1
	if e.min != nil {
		rmin = resolveOffset(*e.min, min, max)
	}
	if e.max != nil {
		rmax = resolveOffset(*e.max, min, max)
	}
	if e.step != nil {
		rstep = *e.step
	}
	return
}

// expandEnumItems flattens a sequence of Enum items into a sorted,
// deduplicated, in-domain integer vector: bare ints/keywords resolve
// directly, nested Range items expand as an arithmetic progression
// clamped to [min,max], and nested Enum items recurse. An item that
// doesn't resolve into [min,max] (a keyword staticEnumError has already
// confirmed is recognized, but that decodes outside this instant's
// narrower clipped bounds) is simply left out, not an error: emptiness
// at this layer is sparseness, already validated as possible overall.
func expandEnumItems(key FieldKey, items []FieldExpr, min, max int, wf odometer.WeekFields) []int {
	var out []int
	for _, it := range items {
		switch it.kind {
		case kindInt:
			v := resolveOffset(it.intVal, min, max)
			if v >= min && v <= max {
				out = append(out, v)
			}
		case kindKeyword:
			if v, ok := decodeKeyword(key, it.keyword, wf); ok && v >= min && v <= max {
				out = append(out, v)
			}
		case kindStar, kindRange:
			rmin, rmax, rstep := rangeBounds(it, min, max)
			if rstep <= 0 {
				rstep = 1
			}
			rmin = clampInt(rmin, min, max)
			rmax = clampInt(rmax, min, max)
			for v := rmin; v <= rmax; v += rstep {
				out = append(out, v)
			}
		case kindEnum:
			out = append(out, expandEnumItems(key, it.items, min, max, wf)...)
		}
	}
	sort.Ints(out)
	return dedupSorted(out)
}

func dedupSorted(vs []int) []int {
	if len(vs) == 0 {
		return vs
	}
	out := vs[:1]
	for _, v := range vs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// staticStepError reports whether e (or any item nested inside it) carries
// a literal, always-invalid step, the one piece of clip_range/clip_enum's
// validation that does not depend on a runtime instant and so is checked
// once, at Init, rather than per field-iterator reset.
func staticStepError(key FieldKey, e FieldExpr) error {
	if e.step != nil && *e.step <= 0 {
		return errRangeStepNotPositive(key, *e.step)
	}
	for _, it := range e.items {
		if it.step != nil && *it.step <= 0 {
			return errRangeStepNotPositive(key, *it.step)
		}
		if it.kind == kindEnum {
			if err := staticStepError(key, it); err != nil {
				return err
			}
		}
	}
	return nil
}

// staticEnumError reports whether e is an enumeration that could never
// resolve to a value for key, at any instant: an item carrying an
// unrecognized keyword, or a non-empty item list none of whose items ever
// fall inside key's widest possible domain. Like staticStepError this
// runs once, at Init, against key's widest bounds rather than one
// instant's narrower clipped domain — an item that is only sometimes in
// range (day-of-month 31, absent in April) is not malformed, just
// sometimes unmatched, and is left to expandEnumItems to resolve per
// instant. A bare EnumExpr() with no items at all is not checked here:
// it is Enum's documented sugar for the field's minimum, not an error.
func staticEnumError(key FieldKey, e FieldExpr, wf odometer.WeekFields) error {
	var items []FieldExpr
	switch e.kind {
	case kindInt, kindKeyword:
		items = []FieldExpr{e}
	case kindEnum:
		items = e.items
	default:
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	min, max := odometer.WidestBounds(key)
	anyValid, err := enumItemsEverValid(key, items, min, max, wf)
	if err != nil {
		return err
	}
	if !anyValid {
		return errInvalidEnumeration(key, e)
	}
	return nil
}

// enumItemsEverValid reports whether at least one of items could resolve
// into [min,max] at some instant, or an error if any item is structurally
// invalid regardless of instant (an unrecognized keyword). It always
// walks every item, rather than stopping at the first valid one, so a
// keyword typo alongside an otherwise-valid sibling item is still caught.
func enumItemsEverValid(key FieldKey, items []FieldExpr, min, max int, wf odometer.WeekFields) (bool, error) {
	anyValid := false
	for _, it := range items {
		switch it.kind {
		case kindInt:
			v := resolveOffset(it.intVal, min, max)
			if v >= min && v <= max {
				anyValid = true
			}
		case kindKeyword:
			v, ok := decodeKeyword(key, it.keyword, wf)
			if !ok {
				return false, errInvalidSubField(key, it.keyword)
			}
			if v >= min && v <= max {
				anyValid = true
			}
		case kindStar, kindRange:
			rmin, rmax, rstep := rangeBounds(it, min, max)
			if rstep <= 0 {
				rstep = 1
			}
			if clampInt(rmin, min, max) <= clampInt(rmax, min, max) {
				anyValid = true
			}
		case kindEnum:
			sub, err := enumItemsEverValid(key, it.items, min, max, wf)
			if err != nil {
				return false, err
			}
			if sub {
				anyValid = true
			}
		}
	}
	return anyValid, nil
}

// Expression is the input to Init: a mapping from FieldKey to FieldExpr,
// plus locale/week-fields options. Keys must be unique, which Go's map
// type enforces structurally.
type Expression struct {
	Fields  map[FieldKey]FieldExpr
	Options Options
}

// Options carries Expression's non-field keys: locale and week_fields.
// The zero value is a legal configuration (ISO week fields via the
// default "en" locale).
type Options struct {
	// Locale is a BCP-47 language tag, e.g. "en-BE". Empty means "en".
	Locale string
	// WeekFieldsMode selects how week fields are derived when WeekFields
	// is nil. Defaults to WeekFieldsFromLocale.
	WeekFieldsMode WeekFieldsMode
	// WeekFields, when non-nil, is used verbatim and takes precedence
	// over WeekFieldsMode and Locale.
	WeekFields *WeekFields
}

// NewDefaultOptions returns Options' zero value, spelled out: "en" locale,
// week fields derived from locale (which for "en" is ISO... see
// weekFieldsForLocale's table for the exceptions).
func NewDefaultOptions() Options {
	return Options{Locale: "", WeekFieldsMode: WeekFieldsFromLocale, WeekFields: nil}
}
