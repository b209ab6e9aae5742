package clock

import "time"

// InZone returns the same instant in loc. A nil loc means UTC.
func InZone(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc)
}

// ToLocal returns the wall clock reading of t in loc, stored as UTC. It is the
// local date-time view of an instant.
func ToLocal(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// FromLocal interprets the wall clock reading of local in loc and returns the
// instant.
func FromLocal(local time.Time, loc *time.Location) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)
}
