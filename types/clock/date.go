package clock

import "time"

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay returns the clock time on the zero date, in UTC.
func TimeOfDay(hour, min, sec int) time.Time {
	return time.Date(0, time.January, 1, hour, min, sec, 0, time.UTC)
}

// DateTime returns the given instant in UTC.
func DateTime(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func PlusDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func PlusWeeks(t time.Time, n int) time.Time {
	return PlusDays(t, 7*n)
}

func PlusHours(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Hour)
}

// PlusMonths adds n months. The day is clamped to the last day of the target
// month.
func PlusMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()

	total := y*12 + int(m) - 1 + n
	year, month := floorDiv(total, 12), time.Month(floorMod(total, 12)+1)
	d = min(d, DaysIn(year, month))

	return time.Date(year, month, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func MinusMonths(t time.Time, n int) time.Time {
	return PlusMonths(t, -n)
}

// PlusYears adds n years, clamping 29 February to 28 February when needed.
func PlusYears(t time.Time, n int) time.Time {
	return PlusMonths(t, 12*n)
}

// LastInMonth returns the last given weekday in the month of t.
func LastInMonth(t time.Time, wd time.Weekday) time.Time {
	y, m, _ := t.Date()
	last := time.Date(y, m, DaysIn(y, m), 0, 0, 0, 0, t.Location())
	diff := (int(last.Weekday()) - int(wd) + 7) % 7

	return last.AddDate(0, 0, -diff)
}

// FirstInMonth returns the first given weekday in the month of t.
func FirstInMonth(t time.Time, wd time.Weekday) time.Time {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	diff := (int(wd) - int(first.Weekday()) + 7) % 7

	return first.AddDate(0, 0, diff)
}

// DaysBefore formats the date n days before today as yyyy-MM-dd.
func DaysBefore(c Clock, n int) string {
	return PlusDays(Today(c), -n).Format(ISODate)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
