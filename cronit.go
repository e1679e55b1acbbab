package cronit

import (
	"time"

	"github.com/calendar-go/cronit/internal/odometer"
)

// unalignedCause is Cronit's unaligned_cause: none (aligned), init (the
// client supplied a current not matching the expression), or gap (current
// is the first instant after a DST gap, a valid fire for scheduler
// semantics).
type unalignedCause int

const (
	causeNone unalignedCause = iota
	causeInit
	causeGap
)

// context holds the heavy, immutable state every Cronit value built from
// the same Init call shares: the board, mask predicate, and resolved
// locale/week-fields. It is shared by reference across every Next/Prev
// step; only the small per-field iterator states and current instant are
// copied.
type context struct {
	board         Board
	weekKey       FieldKey
	filled        map[FieldKey]FieldExpr
	mask          func(time.Time) bool
	wf            WeekFields
	locale        Locale
	loc           *time.Location
	topRecurrence FieldKey
}

// Cronit is the immutable cursor over an expression's matching instants.
// Every Next/Prev call returns a new value; the receiver is never mutated.
type Cronit struct {
	ctx            *context
	iters          []odometer.FieldIter
	current        time.Time
	unaligned      bool
	unalignedCause unalignedCause
}

// Init normalizes expr, selects its board and mask, and seeds a Cronit at
// t. Errors are returned only for a malformed expression; a t that does
// not satisfy expr is not an error, it is simply unaligned.
func Init(expr Expression, t time.Time) (Cronit, error) {
	for k, fe := range expr.Fields {
		if err := staticStepError(k, fe); err != nil {
			return Cronit{}, err
		}
	}

	locale, err := ResolveLocale(expr.Options.Locale)
	if err != nil {
		return Cronit{}, err
	}
	wf := resolveWeekFields(expr.Options, locale)

	for k, fe := range expr.Fields {
		if err := staticEnumError(k, fe, wf); err != nil {
			return Cronit{}, err
		}
	}

	board := selectBoard(expr.Fields)
	weekKey := weekKeyOf(board)
	filled := fillBoard(board, expr.Fields)
	maskKeys := maskKeysOf(board, expr.Fields)
	mask := maskPredicate(maskKeys, expr.Fields, wf)

	ctx := &context{
		board: board, weekKey: weekKey, filled: filled, mask: mask,
		wf: wf, locale: locale, loc: t.Location(),
		topRecurrence: topRecurrenceOf(expr.Fields),
	}

	civil := odometer.CivilOf(t)
	iters := make([]odometer.FieldIter, len(board))
	for i, key := range board {
		key, fieldWeekKey := key, weekKeyFor(key, weekKey)
		fe := filled[key]
		clip := func(min, max int) odometer.ScalarIter {
			return clipToScalarIter(key, fe, min, max, wf)
		}
		iters[i] = odometer.NewFieldIter(key, fieldWeekKey, wf, clip).Reset(civil)
	}

	c := Cronit{ctx: ctx, iters: iters, current: t}
	allFieldsAligned := true
	for _, fi := range iters {
		if !fi.Aligned() {
			allFieldsAligned = false
			break
		}
	}
	if allFieldsAligned && mask(t) {
		return c, nil
	}

	c.unaligned = true
	c.unalignedCause = causeInit
	if isInitGapFire(ctx, c, t) {
		c.unalignedCause = causeGap
	}
	return c, nil
}

func weekKeyFor(key, boardWeekKey FieldKey) FieldKey {
	if key == DayOfWeek {
		return boardWeekKey
	}
	return NoField
}

// isInitGapFire detects Init's DST-gap edge case: t counts as a valid
// gap-collapsed fire iff t is the instant of a DST transition, that
// transition is a gap, and stepping prev-then-next from t lands back on t.
func isInitGapFire(ctx *context, c Cronit, t time.Time) bool {
	civilMinus1 := odometer.CivilOf(t).Add(-1 * time.Second)
	_, tr := odometer.ZonedFromCivil(civilMinus1, ctx.loc)
	if tr == nil || !tr.Gap || !tr.At.Equal(t) {
		return false
	}
	prev, ok := c.Prev()
	if !ok {
		return false
	}
	next, ok := prev.Next()
	if !ok {
		return false
	}
	return next.current.Equal(t)
}

// Next returns the next instant satisfying expr after c.current, and true.
// It returns false only when the expression has no further matching
// instant at all (an effectively impossible expression).
func (c Cronit) Next() (Cronit, bool) { return c.step(odometer.Next) }

// Prev returns the previous instant satisfying expr before c.current, and
// true, or false on the same terminal condition as Next.
func (c Cronit) Prev() (Cronit, bool) { return c.step(odometer.Prev) }

func (c Cronit) step(dir odometer.Direction) (Cronit, bool) {
	in := odometer.StepInput{
		Board:   c.iters,
		Loc:     c.ctx.loc,
		Mask:    c.ctx.mask,
		Civil:   odometer.CivilOf(c.current),
		Current: c.current,
		Aligned: c.unalignedCause != causeInit,
	}
	out := odometer.Step(dir, in)
	if !out.Ok {
		return Cronit{}, false
	}
	next := Cronit{ctx: c.ctx, iters: out.Board, current: out.Zoned}
	if !out.Aligned {
		next.unaligned = true
		next.unalignedCause = causeGap
	}
	return next, true
}

// Valid reports whether c is aligned, or is a gap-collapsed fire — the two
// cases a scheduler should treat as "fire now".
func (c Cronit) Valid() bool {
	return !c.unaligned || c.unalignedCause == causeGap
}

// Current returns c's absolute instant.
func (c Cronit) Current() time.Time { return c.current }

// Unaligned reports whether c.current does not itself satisfy expr exactly
// (it may still be Valid, if the cause is a gap).
func (c Cronit) Unaligned() bool { return c.unaligned }

// Locale returns the locale resolved at Init.
func (c Cronit) Locale() Locale { return c.ctx.locale }

// TopRecurrence is the smallest field explicitly set to Star anywhere in
// the expression, or Year if none. It is exposed for callers but not
// consumed by Next/Prev.
func (c Cronit) TopRecurrence() FieldKey { return c.ctx.topRecurrence }

// Board is the ordered chain of fields the odometer steps over.
func (c Cronit) Board() Board { return append(Board{}, c.ctx.board...) }
