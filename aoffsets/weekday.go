// Package aoffsets implements a calendar-aware date-offset algebra: a family
// of increment operators that step, align, and enumerate timestamps the way
// a fiscal calendar, a trading calendar, or a billing cycle would.
package aoffsets

import (
	"time"

	"github.com/jpfluger/dateoffsets/atime"
	"github.com/teambition/rrule-go"
)

// Weekday is Mon=0..Sun=6, matching the offset algebra's day-of-week
// numbering rather than time.Weekday's Sun=0..Sat=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// String renders the three-letter rule-code abbreviation (e.g. "TUE").
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "?"
	}
	return weekdayNames[w]
}

// IsWeekend reports whether w falls on Saturday or Sunday.
func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// DayOfWeek returns the Mon=0..Sun=6 weekday of ts, going through the
// rrule-go conversion table the way atime already does for recurrence
// interop, so the two packages never disagree on weekday numbering.
func DayOfWeek(ts time.Time) Weekday {
	rw := atime.TimeWeekdayToRRuleWeekday(ts.Weekday())
	return rruleWeekdayToOffset(rw)
}

func rruleWeekdayToOffset(rw rrule.Weekday) Weekday {
	// rrule-go numbers Mon=0..Sun=6 already, matching Weekday here.
	return Weekday(rw.Day())
}

// WeekdayFromName parses a three-letter rule-code abbreviation.
func WeekdayFromName(name string) (Weekday, error) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, newValidationError("weekday", name, "unrecognized weekday abbreviation")
}
