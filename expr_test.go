package cronit

import (
	"testing"

	"github.com/calendar-go/cronit/internal/odometer"
)

func TestClipBareIntExpr(t *testing.T) {
	it := clipToScalarIter(DayOfMonth, IntExpr(15), 1, 31, odometer.ISO())
	if !it.Contains(15) {
		t.Fatalf("bare IntExpr(15) should clip to a domain containing 15")
	}
	if it.Contains(1) || it.Contains(31) {
		t.Fatalf("bare IntExpr(15) should not admit any other value")
	}
}

func TestClipBareKeywordExpr(t *testing.T) {
	it := clipToScalarIter(Month, KeywordExpr("dec"), 1, 12, odometer.ISO())
	if !it.Contains(12) {
		t.Fatalf("bare KeywordExpr(\"dec\") should clip to a domain containing 12")
	}
	if it.Contains(1) {
		t.Fatalf("bare KeywordExpr(\"dec\") should not admit January")
	}
}

func TestClipNegativeOffsetInt(t *testing.T) {
	// -1 means "the field's maximum": December for Month.
	it := clipToScalarIter(Month, IntExpr(-1), 1, 12, odometer.ISO())
	if !it.Contains(12) {
		t.Fatalf("IntExpr(-1) should resolve to the field's max (12)")
	}
}

func TestClipStarIsFullRange(t *testing.T) {
	it := clipToScalarIter(Hour, Star(), 0, 23, odometer.ISO())
	for v := 0; v <= 23; v++ {
		if !it.Contains(v) {
			t.Fatalf("Star() should admit every hour, missing %d", v)
		}
	}
}

func TestClipRangeWithStep(t *testing.T) {
	step := 5
	it := clipToScalarIter(Minute, RangeExpr(nil, nil, &step), 0, 59, odometer.ISO())
	for _, v := range []int{0, 5, 55} {
		if !it.Contains(v) {
			t.Fatalf("RangeExpr(step=5) should admit %d", v)
		}
	}
	if it.Contains(1) || it.Contains(59) {
		t.Fatalf("RangeExpr(step=5) should not admit off-grid values")
	}
}

func TestClipEnumMixedItems(t *testing.T) {
	rmin, rmax := 20, 25
	it := clipToScalarIter(DayOfMonth, EnumExpr(IntExpr(1), RangeExpr(&rmin, &rmax, nil)), 1, 31, odometer.ISO())
	if !it.Contains(1) || !it.Contains(20) || !it.Contains(25) {
		t.Fatalf("mixed enum should admit its literal and its nested range")
	}
	if it.Contains(10) {
		t.Fatalf("mixed enum should not admit values outside its items")
	}
}

func TestClipEmptyEnumDefaultsToMin(t *testing.T) {
	it := clipToScalarIter(Hour, EnumExpr(), 0, 23, odometer.ISO())
	if !it.Contains(0) {
		t.Fatalf("EnumExpr() should default to the field minimum")
	}
	if it.Contains(1) {
		t.Fatalf("EnumExpr() should admit nothing but the minimum")
	}
}

func TestStaticEnumErrorRejectsUnrecognizedKeyword(t *testing.T) {
	if err := staticEnumError(DayOfWeek, KeywordExpr("moonday"), odometer.ISO()); err == nil {
		t.Fatalf("an unrecognized keyword should be a static error")
	}
	if err := staticEnumError(DayOfWeek, EnumExpr(KeywordExpr("mon"), KeywordExpr("moonday")), odometer.ISO()); err == nil {
		t.Fatalf("an unrecognized keyword alongside a valid sibling should still error")
	}
	if err := staticEnumError(DayOfWeek, KeywordExpr("mon"), odometer.ISO()); err != nil {
		t.Fatalf("a recognized keyword should not error: %v", err)
	}
}

func TestStaticEnumErrorRejectsAlwaysOutOfRangeEnum(t *testing.T) {
	// Hour's widest domain is 0-23; 99 can never be a valid hour.
	if err := staticEnumError(Hour, Ints(99), odometer.ISO()); err == nil {
		t.Fatalf("an enum with no item ever in range should be a static error")
	}
	if err := staticEnumError(Hour, Ints(99, 6), odometer.ISO()); err != nil {
		t.Fatalf("an enum with at least one in-range item should not error: %v", err)
	}
}

func TestClipLeavesInstantSparseEnumEmptyRatherThanDefaulting(t *testing.T) {
	// Day-of-month 31 is a legitimate value generally (staticEnumError
	// would not reject it), but April only has 30 days; the clipped
	// ScalarIter for that instant must come back empty, not silently
	// default to day 1.
	it := clipToScalarIter(DayOfMonth, IntExpr(31), 1, 30, odometer.ISO())
	if it.Contains(1) {
		t.Fatalf("an instant-sparse enum must not default to the field minimum")
	}
	if _, ok := it.First(); ok {
		t.Fatalf("an instant-sparse enum should report no members for this instant")
	}
}

func TestStaticStepErrorRejectsNonPositiveStep(t *testing.T) {
	bad := -1
	if err := staticStepError(Minute, RangeExpr(nil, nil, &bad)); err == nil {
		t.Fatalf("a literal negative step should be a static error")
	}
	good := 5
	if err := staticStepError(Minute, RangeExpr(nil, nil, &good)); err != nil {
		t.Fatalf("a positive step should not error: %v", err)
	}
}
