package schedule

import (
	"fmt"
	"time"

	"github.com/calendar-go/cronit"
)

// Trigger computes a job's fire times as time.Time instants. NextFireTime
// is given the previous fire time and returns the next one; ok is false
// once the trigger has no further fire time (a run-once trigger that has
// already fired, or a cron expression with no further matching instant) —
// the same (value, bool) convention cronit.Cronit.Next/Prev use rather
// than a terminal error.
type Trigger interface {
	NextFireTime(prev time.Time) (time.Time, bool)
	Description() string
}

// CronTrigger fires at every instant a cronit.Cronit expression matches. It
// owns a private, evolving Cronit cursor: each NextFireTime call advances it
// exactly once via Next(), so it must not be shared between goroutines.
type CronTrigger struct {
	cur cronit.Cronit
}

var _ Trigger = (*CronTrigger)(nil)

// NewCronTrigger seeds a CronTrigger at the given expression and starting
// instant, per cronit.Init.
func NewCronTrigger(expr cronit.Expression, at time.Time) (*CronTrigger, error) {
	c, err := cronit.Init(expr, at)
	if err != nil {
		return nil, err
	}
	return &CronTrigger{cur: c}, nil
}

// NextFireTime ignores prev (the cursor already knows where it is) and
// advances to the expression's next matching instant.
func (t *CronTrigger) NextFireTime(_ time.Time) (time.Time, bool) {
	next, ok := t.cur.Next()
	if !ok {
		return time.Time{}, false
	}
	t.cur = next
	return next.Current(), true
}

// Description reports the trigger's current cursor position.
func (t *CronTrigger) Description() string {
	return fmt.Sprintf("CronTrigger next=%s", t.cur.Current())
}

// SimpleTrigger fires at a fixed interval, indefinitely.
type SimpleTrigger struct {
	Interval time.Duration
}

var _ Trigger = (*SimpleTrigger)(nil)

// NewSimpleTrigger returns a SimpleTrigger firing every interval.
func NewSimpleTrigger(interval time.Duration) *SimpleTrigger {
	return &SimpleTrigger{Interval: interval}
}

func (t *SimpleTrigger) NextFireTime(prev time.Time) (time.Time, bool) {
	return prev.Add(t.Interval), true
}

func (t *SimpleTrigger) Description() string {
	return fmt.Sprintf("SimpleTrigger interval=%s", t.Interval)
}

// RunOnceTrigger fires a single time, delay after it is scheduled.
type RunOnceTrigger struct {
	Delay   time.Duration
	expired bool
}

var _ Trigger = (*RunOnceTrigger)(nil)

// NewRunOnceTrigger returns a RunOnceTrigger firing once, delay from now.
func NewRunOnceTrigger(delay time.Duration) *RunOnceTrigger {
	return &RunOnceTrigger{Delay: delay}
}

func (t *RunOnceTrigger) NextFireTime(prev time.Time) (time.Time, bool) {
	if t.expired {
		return time.Time{}, false
	}
	t.expired = true
	return prev.Add(t.Delay), true
}

func (t *RunOnceTrigger) Description() string {
	if t.expired {
		return "RunOnceTrigger (expired)"
	}
	return "RunOnceTrigger (pending)"
}
