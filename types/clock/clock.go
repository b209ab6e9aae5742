// Package clock provides calendar arithmetic on top of time.Time.
//
// Dates are represented as time.Time values at midnight. Month arithmetic
// clamps the day to the end of the target month instead of overflowing into
// the next one, so 31 March minus one month is 28 (or 29) February.
package clock

import (
	"cmp"
	"time"
)

const (
	eq = 0
	gt = 1
	lt = -1
)

// Clock tells the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// System returns the wall clock.
func System() Clock {
	return ClockFunc(time.Now)
}

// Fixed returns a clock that always tells t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time {
		return t
	})
}

// Today returns the current date at midnight in the clock's location.
func Today(c Clock) time.Time {
	return Truncate(c.Now())
}

// Truncate drops the time of day, keeping the location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func Compare(a, b time.Time) int {
	return cmp.Compare(a.UnixNano(), b.UnixNano())
}

func Gte(a, b time.Time) bool {
	c := Compare(a, b)
	return c == gt || c == eq
}

func Gt(a, b time.Time) bool {
	return Compare(a, b) == gt
}

func Lte(a, b time.Time) bool {
	c := Compare(a, b)
	return c == lt || c == eq
}

func Lt(a, b time.Time) bool {
	return Compare(a, b) == lt
}

// CompareDate compares the calendar dates of a and b, ignoring the time of
// day and location.
func CompareDate(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if c := cmp.Compare(ay, by); c != eq {
		return c
	}
	if c := cmp.Compare(am, bm); c != eq {
		return c
	}

	return cmp.Compare(ad, bd)
}

// IsBefore reports whether the date of a is before the date of b.
func IsBefore(a, b time.Time) bool {
	return CompareDate(a, b) == lt
}

// IsAfter reports whether the date of a is after the date of b.
func IsAfter(a, b time.Time) bool {
	return CompareDate(a, b) == gt
}

// IsEqual reports whether a and b fall on the same date.
func IsEqual(a, b time.Time) bool {
	return CompareDate(a, b) == eq
}

type Bound int

const (
	Empty Bound = iota
	Unbounded
	Inclusive
	Exclusive
)

// TimeRange is an interval whose ends may be open, closed or unbounded.
type TimeRange struct {
	Start      time.Time
	End        time.Time
	StartBound Bound
	EndBound   Bound
}

// Contains reports whether t lies within the range.
func (r *TimeRange) Contains(t time.Time) bool {
	var validStart bool
	switch r.StartBound {
	case Unbounded:
		validStart = true
	case Inclusive:
		validStart = Gte(t, r.Start)
	case Exclusive:
		validStart = Gt(t, r.Start)
	}

	var validEnd bool
	switch r.EndBound {
	case Unbounded:
		validEnd = true
	case Inclusive:
		validEnd = Lte(t, r.End)
	case Exclusive:
		validEnd = Lt(t, r.End)
	}

	return validStart && validEnd
}
