package odometer

import (
	"testing"
	"time"
)

func mustLoadLocation(t *testing.T, name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func TestWeekOfPeriodMatchesISOWeek(t *testing.T) {
	wf := ISO()
	cases := []time.Time{
		time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range cases {
		_, want := d.ISOWeek()
		got := weekOfPeriod(startOfYear(d.Year()), d, wf)
		if got != want {
			t.Errorf("weekOfPeriod(%v) = %d, want %d (ISOWeek)", d, got, want)
		}
	}
}

func TestDayOfWeekBoundsAtMonthEdges(t *testing.T) {
	wf := ISO()
	// 2021-06-01 is a Tuesday; week-of-month 1 runs Mon 2021-05-31..Sun 2021-06-06
	// but clipped to June: min day-of-week should be dowIndex(June 1).
	june1 := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	weekMin := weekOfPeriod(startOfMonth(2021, time.June), startOfMonth(2021, time.June), wf)
	weekVal := weekOfPeriod(startOfMonth(2021, time.June), june1, wf)
	if weekVal != weekMin {
		t.Fatalf("june1 should be in month's first week-of-month")
	}
	min, max := dayOfWeekBounds(WeekOfMonth, june1, wf)
	if max != 7 {
		t.Fatalf("max day-of-week at first week should be 7, got %d", max)
	}
	if min != dowIndex(june1, wf) {
		t.Fatalf("min day-of-week at first week should be June 1's own dow, got %d want %d", min, dowIndex(june1, wf))
	}
}

func TestWeekAdjustStaysInMonth(t *testing.T) {
	wf := ISO()
	june15 := time.Date(2021, time.June, 15, 10, 30, 0, 0, time.UTC)
	lastWeekMin, lastWeekMax := weeksInMonth(2021, time.June, wf)
	adjusted := weekAdjust(WeekOfMonth, lastWeekMax, june15, wf)
	if adjusted.Month() != time.June || adjusted.Year() != 2021 {
		t.Fatalf("week_adjust crossed month boundary: %v", adjusted)
	}
	adjusted2 := weekAdjust(WeekOfMonth, lastWeekMin, june15, wf)
	if adjusted2.Month() != time.June {
		t.Fatalf("week_adjust to first week crossed month boundary: %v", adjusted2)
	}
}

func TestZonedFromCivilGap(t *testing.T) {
	loc := mustLoadLocation(t, "Europe/Brussels")
	// 2021-03-28 02:30 local does not exist in Europe/Brussels (spring forward).
	civil := time.Date(2021, time.March, 28, 2, 30, 0, 0, time.UTC)
	_, tr := ZonedFromCivil(civil, loc)
	if tr == nil || !tr.Gap {
		t.Fatalf("expected a gap transition, got %v", tr)
	}
	exit := tr.GapExit().In(loc)
	if exit.Hour() != 3 || exit.Minute() != 0 {
		t.Fatalf("gap exit = %v, want 03:00 local", exit)
	}
}

func TestZonedFromCivilOverlap(t *testing.T) {
	loc := mustLoadLocation(t, "Europe/Brussels")
	// 2021-10-31 02:30 local occurs twice (fall back).
	civil := time.Date(2021, time.October, 31, 2, 30, 0, 0, time.UTC)
	zoned, tr := ZonedFromCivil(civil, loc)
	if tr == nil || !tr.Overlap {
		t.Fatalf("expected an overlap transition, got %v", tr)
	}
	_, offset := zoned.Zone()
	if offset != 2*3600 {
		t.Fatalf("overlap should resolve to the earlier (summer, +2h) offset, got %ds", offset)
	}
}

func TestZonedFromCivilNormal(t *testing.T) {
	loc := mustLoadLocation(t, "Europe/Brussels")
	civil := time.Date(2021, time.June, 16, 11, 15, 30, 0, time.UTC)
	zoned, tr := ZonedFromCivil(civil, loc)
	if tr != nil {
		t.Fatalf("expected no transition, got %v", tr)
	}
	if zoned.Hour() != 11 || zoned.Minute() != 15 {
		t.Fatalf("zoned = %v, want 11:15", zoned)
	}
}
