package demo

import (
	"context"
	"time"

	"github.com/alextanhongpin/lambda/types/clock"
)

func DateTime(ctx context.Context, env *Env) error {
	p := &printer{w: env.Out}

	now := env.Now()
	today := clock.Truncate(now)

	p.Println("-- current")
	p.Printf("today: %s\n", today.Format(clock.ISODate))
	p.Printf("now: %s\n", now.Format(clock.ISOTime))
	p.Printf("current date-time: %s\n", now.Format(clock.ISODateTime))
	p.Printf("next week: %s\n", clock.PlusWeeks(today, 1).Format(clock.ISODate))
	p.Printf("next hour: %s\n", clock.PlusHours(now, 1).Format(clock.ISOTime))
	p.Printf("last month: %s\n", clock.MinusMonths(today, 1).Format(clock.ISODate))
	p.Printf("last Friday: %s\n", clock.LastInMonth(today, time.Friday).Format(clock.ISODate))
	p.Printf("10 days ago: %s\n", clock.DaysBefore(clock.ClockFunc(env.Now), 10))

	p.Println("-- create")
	p.Println(clock.Date(2025, time.October, 25).Format(clock.ISODate))
	p.Println(clock.TimeOfDay(10, 16, 37).Format(clock.ISOTime))
	p.Println(clock.DateTime(2025, time.October, 26, 11, 30, 33).Format(clock.ISODateTime))

	p.Println("-- compare")
	d1 := clock.Date(2025, time.April, 20)
	d2 := clock.Date(2025, time.May, 20)
	p.Printf("before: %t\n", clock.IsBefore(d1, d2))
	p.Printf("after: %t\n", clock.IsAfter(d1, d2))
	p.Printf("equal: %t\n", clock.IsEqual(d1, d2))

	between := clock.TimeRange{Start: d1, End: d2, StartBound: clock.Inclusive, EndBound: clock.Exclusive}
	p.Printf("in [%s, %s): %t\n", d1.Format(clock.ISODate), d2.Format(clock.ISODate), between.Contains(clock.Date(2025, time.May, 1)))

	p.Println("-- format")
	s, err := clock.Format(now, "yyyy-MM-dd HH:mm:ss")
	if err != nil {
		return err
	}
	p.Printf("now: %s\n", s)

	t, err := clock.Parse("yyyy/MM/dd HH:mm:ss", "2025/10/10 10:10:10")
	if err != nil {
		return err
	}
	p.Printf("parsed: %s\n", t.Format(clock.ISODateTime))

	p.Println("-- period and duration")
	period := clock.Between(clock.Date(2025, time.January, 1), clock.Date(2025, time.October, 25))
	p.Printf("%d months %d days (%s)\n", period.Months, period.Days, period)

	elapsed := clock.Elapsed(clock.TimeOfDay(10, 0, 0), clock.TimeOfDay(12, 30, 0))
	p.Printf("%d minutes\n", clock.Minutes(elapsed))

	p.Println("-- convert")
	loc, err := env.Config.Location()
	if err != nil {
		return err
	}
	p.Printf("utc: %s\n", clock.InZone(now, nil).Format(clock.ISODateTime))
	local := clock.ToLocal(now, loc)
	p.Printf("local: %s\n", local.Format(clock.ISODateTime))
	p.Printf("round trip: %t\n", clock.FromLocal(local, loc).Equal(now))

	return p.err
}
