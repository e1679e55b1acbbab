package cronit

import (
	"testing"

	"github.com/calendar-go/cronit/internal/assert"
)

func TestSelectBoardMaximizesCoverage(t *testing.T) {
	fields := map[FieldKey]FieldExpr{
		Hour:      RangeExpr(nil, nil, intp(12)),
		DayOfWeek: EnumExpr(KeywordExpr("mon"), KeywordExpr("wed")),
	}
	b := selectBoard(fields)
	covered := 0
	for _, k := range b {
		if _, ok := fields[k]; ok {
			covered++
		}
	}
	if covered != 2 {
		t.Fatalf("board %v should cover both Hour and DayOfWeek, covered %d", b, covered)
	}
}

func TestSelectBoardPrefersDayOfMonth(t *testing.T) {
	fields := map[FieldKey]FieldExpr{DayOfMonth: IntExpr(1)}
	b := selectBoard(fields)
	found := false
	for _, k := range b {
		if k == DayOfMonth {
			found = true
		}
	}
	if !found {
		t.Fatalf("board %v should include DayOfMonth", b)
	}
}

func TestFillBoardDefaultsBeforeAndAfterClientField(t *testing.T) {
	b := Board{Second, Minute, Hour, DayOfMonth, Month, Year}
	fields := map[FieldKey]FieldExpr{DayOfMonth: IntExpr(15)}
	filled := fillBoard(b, fields)

	if filled[Second].kind != kindEnum || len(filled[Second].items) != 0 {
		t.Fatalf("Second should default to EnumExpr() before the client field")
	}
	if filled[DayOfMonth].kind != kindInt || filled[DayOfMonth].intVal != 15 {
		t.Fatalf("DayOfMonth should keep the client's IntExpr(15)")
	}
	if filled[Month].kind != kindStar {
		t.Fatalf("Month should default to Star() after the client field")
	}
	if filled[Year].kind != kindStar {
		t.Fatalf("Year should default to Star() after the client field")
	}
}

func TestMaskKeysOfExcludesBoardFields(t *testing.T) {
	b := Board{Second, Minute, Hour, DayOfMonth, Month, Year}
	fields := map[FieldKey]FieldExpr{
		DayOfMonth: IntExpr(1),
		DayOfWeek:  EnumExpr(KeywordExpr("mon")),
	}
	mask := maskKeysOf(b, fields)
	if len(mask) != 1 || mask[0] != DayOfWeek {
		t.Fatalf("mask keys = %v, want [DayOfWeek]", mask)
	}
}

func TestWeekKeyOfBoards(t *testing.T) {
	assert.Equal(t, weekKeyOf(Board{Second, Minute, Hour, DayOfMonth, Month, Year}), NoField)
	assert.Equal(t, weekKeyOf(Board{Second, Minute, Hour, DayOfWeek, WeekOfYear, Year}), WeekOfYear)
}

func TestTopRecurrenceOfPicksSmallestStar(t *testing.T) {
	fields := map[FieldKey]FieldExpr{
		Hour:   Star(),
		Minute: IntExpr(0),
	}
	assert.Equal(t, topRecurrenceOf(fields), Hour)
	assert.Equal(t, topRecurrenceOf(map[FieldKey]FieldExpr{}), Year)
}
