package clock

import (
	"strconv"
	"strings"
	"time"
)

// Period is a calendar amount of time, such as 9 months and 24 days.
type Period struct {
	Years  int
	Months int
	Days   int
}

// Between returns the period from the date of start to the date of end. The
// time of day is ignored. The result is negative when end is before start.
func Between(start, end time.Time) Period {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	totalMonths := (ey*12 + int(em)) - (sy*12 + int(sm))
	days := ed - sd

	switch {
	case totalMonths > 0 && days < 0:
		totalMonths--
		anchor := PlusMonths(Date(sy, sm, sd), totalMonths)
		days = daysBetween(anchor, Date(ey, em, ed))
	case totalMonths < 0 && days > 0:
		totalMonths++
		days -= DaysIn(ey, em)
	}

	// Go's integer division truncates toward zero, so both parts share the
	// sign of totalMonths.
	return Period{
		Years:  totalMonths / 12,
		Months: totalMonths % 12,
		Days:   days,
	}
}

// TotalMonths returns the years and months as months.
func (p Period) TotalMonths() int {
	return p.Years*12 + p.Months
}

func (p Period) IsZero() bool {
	return p == Period{}
}

// AddTo adds the months first, then the days.
func (p Period) AddTo(t time.Time) time.Time {
	return PlusDays(PlusMonths(t, p.TotalMonths()), p.Days)
}

// String returns the ISO-8601 form, e.g. P1Y2M3D. The zero period is P0D.
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}

	var sb strings.Builder
	sb.WriteString("P")
	for _, part := range []struct {
		n    int
		unit string
	}{
		{p.Years, "Y"},
		{p.Months, "M"},
		{p.Days, "D"},
	} {
		if part.n != 0 {
			sb.WriteString(strconv.Itoa(part.n))
			sb.WriteString(part.unit)
		}
	}

	return sb.String()
}

// Elapsed returns the duration from start to end.
func Elapsed(start, end time.Time) time.Duration {
	return end.Sub(start)
}

// Minutes returns the whole minutes in d, truncated toward zero.
func Minutes(d time.Duration) int64 {
	return int64(d / time.Minute)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
