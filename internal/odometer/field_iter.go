package odometer

import "time"

// FieldIter couples one board FieldKey to the calendar adapter and a
// ScalarIter built from that field's clipped domain. It is a value type;
// every advance returns a new FieldIter alongside the adjusted date-time.
type FieldIter struct {
	Key     FieldKey
	WeekKey FieldKey // enclosing WeekOfMonth/WeekOfYear field, for DayOfWeek; else NoField
	WF      WeekFields
	Clip    func(min, max int) ScalarIter // builds a ScalarIter over the clipped domain [min,max]
	Iter    ScalarIter
}

// NewFieldIter builds a FieldIter for key, not yet seeded on any instant.
func NewFieldIter(key, weekKey FieldKey, wf WeekFields, clip func(min, max int) ScalarIter) FieldIter {
	return FieldIter{Key: key, WeekKey: weekKey, WF: wf, Clip: clip}
}

// Reset recomputes the field's bounds at t, rebuilds the clipped
// ScalarIter, and seeds it at t's current value.
func (f FieldIter) Reset(t time.Time) FieldIter {
	min, max := Bounds(f.Key, t, f.WF, f.WeekKey)
	out := f
	out.Iter = f.Clip(min, max).Init(Read(f.Key, t, f.WF, f.WeekKey))
	return out
}

// First seeds the field at its domain minimum and adjusts t accordingly.
func (f FieldIter) First(t time.Time) (FieldIter, time.Time, bool) {
	it, ok := f.resetIter(t).First()
	if !ok {
		return f, t, false
	}
	out := f
	out.Iter = it
	return out, Adjust(f.Key, it.Current(), t, f.WF, f.WeekKey), true
}

// Last seeds the field at its domain maximum and adjusts t accordingly.
func (f FieldIter) Last(t time.Time) (FieldIter, time.Time, bool) {
	it, ok := f.resetIter(t).Last()
	if !ok {
		return f, t, false
	}
	out := f
	out.Iter = it
	return out, Adjust(f.Key, it.Current(), t, f.WF, f.WeekKey), true
}

// Next advances the field to its next larger value, or ok=false if
// exhausted.
func (f FieldIter) Next(t time.Time) (FieldIter, time.Time, bool) {
	it, ok := f.Iter.Next()
	if !ok {
		return f, t, false
	}
	out := f
	out.Iter = it
	return out, Adjust(f.Key, it.Current(), t, f.WF, f.WeekKey), true
}

// Prev retreats the field to its next smaller value, or ok=false if
// exhausted.
func (f FieldIter) Prev(t time.Time) (FieldIter, time.Time, bool) {
	it, ok := f.Iter.Prev()
	if !ok {
		return f, t, false
	}
	out := f
	out.Iter = it
	return out, Adjust(f.Key, it.Current(), t, f.WF, f.WeekKey), true
}

// Aligned reports whether the field's ScalarIter currently sits on its
// clipped domain.
func (f FieldIter) Aligned() bool { return f.Iter.Aligned() }

// resetIter rebuilds the ScalarIter for t without seeding a current value;
// used by First/Last which seed via the iterator's own First/Last.
func (f FieldIter) resetIter(t time.Time) ScalarIter {
	min, max := Bounds(f.Key, t, f.WF, f.WeekKey)
	return f.Clip(min, max)
}
