package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calendar-go/cronit"
)

// parseCronField translates one comma-separated classic cron field
// ("*", "*/5", "1-5", "1-5/2", "1,3,5", or a bare "7") into a
// cronit.FieldExpr. It handles numeric values only: weekday and month
// names are rejected as invalid values.
func parseCronField(raw string) (cronit.FieldExpr, error) {
	parts := strings.Split(raw, ",")
	items := make([]cronit.FieldExpr, 0, len(parts))
	for _, p := range parts {
		fe, err := parseCronRange(p)
		if err != nil {
			return cronit.FieldExpr{}, err
		}
		items = append(items, fe)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return cronit.EnumExpr(items...), nil
}

func parseCronRange(raw string) (cronit.FieldExpr, error) {
	base, stepStr, hasStep := strings.Cut(raw, "/")
	var step *int
	if hasStep {
		s, err := strconv.Atoi(stepStr)
		if err != nil {
			return cronit.FieldExpr{}, fmt.Errorf("invalid step %q: %w", stepStr, err)
		}
		step = &s
	}

	if base == "*" {
		if step == nil {
			return cronit.Star(), nil
		}
		return cronit.RangeExpr(nil, nil, step), nil
	}

	lo, hi, isRange := strings.Cut(base, "-")
	if !isRange {
		v, err := strconv.Atoi(base)
		if err != nil {
			return cronit.FieldExpr{}, fmt.Errorf("invalid value %q: %w", base, err)
		}
		if step != nil {
			return cronit.RangeExpr(&v, nil, step), nil
		}
		return cronit.IntExpr(v), nil
	}

	minV, err := strconv.Atoi(lo)
	if err != nil {
		return cronit.FieldExpr{}, fmt.Errorf("invalid range start %q: %w", lo, err)
	}
	maxV, err := strconv.Atoi(hi)
	if err != nil {
		return cronit.FieldExpr{}, fmt.Errorf("invalid range end %q: %w", hi, err)
	}
	return cronit.RangeExpr(&minV, &maxV, step), nil
}

// classicCronToExpression parses a standard 5-field cron string (minute
// hour day-of-month month day-of-week) into a cronit.Expression.
func classicCronToExpression(cronStr string) (cronit.Expression, error) {
	fields := strings.Fields(cronStr)
	if len(fields) != 5 {
		return cronit.Expression{}, fmt.Errorf("classic cron string must have 5 fields, got %d", len(fields))
	}
	keys := [5]cronit.FieldKey{cronit.Minute, cronit.Hour, cronit.DayOfMonth, cronit.Month, cronit.DayOfWeek}

	out := cronit.Expression{Fields: map[cronit.FieldKey]cronit.FieldExpr{}}
	for i, raw := range fields {
		if raw == "*" {
			continue
		}
		fe, err := parseCronField(raw)
		if err != nil {
			return cronit.Expression{}, fmt.Errorf("field %d (%q): %w", i, raw, err)
		}
		out.Fields[keys[i]] = fe
	}
	return out, nil
}
