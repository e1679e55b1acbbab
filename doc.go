// Package cronit implements a pure, side-effect-free, bidirectional
// iterator over the absolute instants matching a structured calendar
// recurrence expression, correctly handling Daylight Saving Time gaps and
// overlaps.
//
// Build an Expression, call Init with a starting instant, then walk
// forward or backward with Next/Prev:
//
//	expr := cronit.Expression{Fields: map[cronit.FieldKey]cronit.FieldExpr{
//		cronit.Hour:      cronit.RangeExpr(nil, nil, intp(12)),
//		cronit.DayOfWeek: cronit.EnumExpr(cronit.KeywordExpr("mon"), cronit.KeywordExpr("wed")),
//	}}
//	c, err := cronit.Init(expr, start)
//	c, ok := c.Next()
//
// A Cronit value is immutable; every Next/Prev call returns a new value
// rather than mutating the receiver.
package cronit
