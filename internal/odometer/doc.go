// Package odometer implements the calendar-aware, carry-propagating counter
// that drives a board of calendar fields forward or backward to the next
// value satisfying a cron-like recurrence expression.
//
// A date is a mixed-radix number: the least significant field (second) has
// a fixed radix, but fields above it do not (a month has 28-31 days, a year
// has 365-366 days). Stepping is therefore split into two procedures,
// adapted from the reugn/go-quartz CronStateMachine this package is grounded
// on: recStep/recInit (odometer.go) advance the least significant field
// first, carry upward on exhaustion, and reseed every field below the one
// that moved; recAlign is used instead when the starting instant itself did
// not satisfy the expression, checking from the most to the least
// significant field and advancing each one that is not aligned.
//
// All calendar arithmetic in this package operates on a "civil" time.Time:
// the Y/M/D h:m:s components carried in time.UTC, used purely as a
// zone-agnostic tuple. DST gap/overlap resolution happens exactly once, at
// the boundary where a civil value is converted to a real zoned instant
// (see ZonedFromCivil).
package odometer
