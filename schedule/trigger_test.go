package schedule

import (
	"testing"
	"time"

	"github.com/calendar-go/cronit"
)

func TestCronTriggerAdvancesPastEachExpressionMatch(t *testing.T) {
	start := time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)
	expr := cronit.Expression{Fields: map[cronit.FieldKey]cronit.FieldExpr{
		cronit.Hour: cronit.IntExpr(6),
	}}
	trig, err := NewCronTrigger(expr, start)
	if err != nil {
		t.Fatalf("NewCronTrigger: %v", err)
	}

	first, ok := trig.NextFireTime(start)
	if !ok {
		t.Fatalf("NextFireTime: expected ok")
	}
	if first.Hour() != 6 || first.Day() != 1 {
		t.Fatalf("first fire = %v, want 2021-07-01T06:00", first)
	}

	second, ok := trig.NextFireTime(first)
	if !ok {
		t.Fatalf("NextFireTime: expected ok")
	}
	if !second.After(first) {
		t.Fatalf("second fire %v should be after first %v", second, first)
	}
	if second.Day() != 2 || second.Hour() != 6 {
		t.Fatalf("second fire = %v, want 2021-07-02T06:00", second)
	}
}

func TestSimpleTriggerFixedInterval(t *testing.T) {
	trig := NewSimpleTrigger(time.Minute)
	base := time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)
	next, ok := trig.NextFireTime(base)
	if !ok {
		t.Fatalf("NextFireTime: expected ok")
	}
	if !next.Equal(base.Add(time.Minute)) {
		t.Fatalf("next = %v, want %v", next, base.Add(time.Minute))
	}
}

func TestRunOnceTriggerFiresOnlyOnce(t *testing.T) {
	trig := NewRunOnceTrigger(time.Second)
	base := time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)
	if _, ok := trig.NextFireTime(base); !ok {
		t.Fatalf("first NextFireTime should report ok")
	}
	if _, ok := trig.NextFireTime(base); ok {
		t.Fatalf("a second NextFireTime call should report !ok")
	}
}
