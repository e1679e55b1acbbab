// Command cronit-demo prints the next fire times of a cronit.Expression,
// built either from field flags or from a classic five-field cron string.
// When given a cron string, it also cross-checks the result against
// gorhill/cronexpr as an independent oracle.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/calendar-go/cronit"
)

func main() {
	var (
		cronStr = flag.String("cron", "", "classic 5-field cron string (minute hour day-of-month month day-of-week); overrides the field flags")
		minute  = flag.String("minute", "", "minute field, e.g. \"*/15\"")
		hour    = flag.String("hour", "", "hour field, e.g. \"9-17\"")
		dom     = flag.String("dom", "", "day-of-month field")
		month   = flag.String("month", "", "month field")
		dow     = flag.String("dow", "", "day-of-week field, e.g. \"1-5\"")
		locale  = flag.String("locale", "", "BCP-47 locale tag, e.g. en-BE")
		zone    = flag.String("zone", "UTC", "IANA time zone for the starting instant and printed output")
		from    = flag.String("from", "", "starting instant, RFC3339; defaults to now")
		count   = flag.Int("count", 5, "number of fire times to print")
	)
	flag.Parse()

	loc, err := time.LoadLocation(*zone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cronit-demo: unknown zone %q: %v\n", *zone, err)
		os.Exit(1)
	}

	start := time.Now().In(loc)
	if *from != "" {
		parsed, err := time.Parse(time.RFC3339, *from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cronit-demo: invalid -from: %v\n", err)
			os.Exit(1)
		}
		start = parsed.In(loc)
	}

	var expr cronit.Expression
	if *cronStr != "" {
		expr, err = classicCronToExpression(*cronStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cronit-demo: %v\n", err)
			os.Exit(1)
		}
	} else {
		expr = cronit.Expression{Fields: map[cronit.FieldKey]cronit.FieldExpr{}}
		addField(expr.Fields, cronit.Minute, *minute)
		addField(expr.Fields, cronit.Hour, *hour)
		addField(expr.Fields, cronit.DayOfMonth, *dom)
		addField(expr.Fields, cronit.Month, *month)
		addField(expr.Fields, cronit.DayOfWeek, *dow)
	}
	expr.Options.Locale = *locale

	cur, err := cronit.Init(expr, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cronit-demo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("starting from %s (unaligned=%v)\n", cur.Current().Format(time.RFC3339), cur.Unaligned())

	fires := make([]time.Time, 0, *count)
	for i := 0; i < *count; i++ {
		next, ok := cur.Next()
		if !ok {
			fmt.Println("expression has no further fire time")
			break
		}
		cur = next
		fires = append(fires, cur.Current())
		fmt.Printf("%2d: %s\n", i+1, cur.Current().Format(time.RFC3339))
	}

	if *cronStr != "" {
		crossCheck(*cronStr, start, fires)
	}
}

func addField(fields map[cronit.FieldKey]cronit.FieldExpr, key cronit.FieldKey, raw string) {
	if raw == "" {
		return
	}
	fe, err := parseCronField(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cronit-demo: field %v: %v\n", key, err)
		os.Exit(1)
	}
	fields[key] = fe
}

// crossCheck compares cronit's fire times against gorhill/cronexpr, which
// speaks the same classic cron syntax, as an independent sanity oracle.
func crossCheck(cronStr string, from time.Time, got []time.Time) {
	oracle, err := cronexpr.Parse(cronStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cronexpr cross-check skipped: %v\n", err)
		return
	}
	want := oracle.NextN(from, uint(len(got)))
	mismatch := len(want) != len(got)
	for i := range want {
		if i >= len(got) || !want[i].Truncate(time.Second).Equal(got[i].Truncate(time.Second)) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Println("cronexpr cross-check: MISMATCH")
		for i, w := range want {
			fmt.Printf("  cronexpr[%d] = %s\n", i, w.Format(time.RFC3339))
		}
	} else {
		fmt.Println("cronexpr cross-check: match")
	}
}
