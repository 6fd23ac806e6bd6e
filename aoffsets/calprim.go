package aoffsets

import "time"

// daysInMonth returns the number of days in the given calendar month.
func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonths adds k calendar months to ts, clamping the day-of-month to the
// last valid day of the landing month (e.g. Jan 31 + 1 month = Feb 29 in a
// leap year, not Mar 3).
func addMonths(ts time.Time, k int) time.Time {
	y, m, d := ts.Date()
	totalMonths := int(m) - 1 + k
	landingYear := y + totalMonths/12
	landingMonth := time.Month(totalMonths%12 + 1)
	if landingMonth <= 0 {
		landingMonth += 12
		landingYear--
	}
	if dim := daysInMonth(landingYear, landingMonth); d > dim {
		d = dim
	}
	return time.Date(landingYear, landingMonth, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
}

// addYears adds k calendar years to ts, clamping Feb 29 to Feb 28 when the
// landing year is not a leap year.
func addYears(ts time.Time, k int) time.Time {
	y, m, d := ts.Date()
	landingYear := y + k
	if m == time.February && d == 29 && daysInMonth(landingYear, time.February) != 29 {
		d = 28
	}
	return time.Date(landingYear, m, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
}

// atMonthEnd returns the last calendar day of ts's month, at ts's time-of-day.
func atMonthEnd(ts time.Time) time.Time {
	y, m, _ := ts.Date()
	return time.Date(y, m, daysInMonth(y, m), ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
}

// atMonthBegin returns the first calendar day of ts's month, at ts's time-of-day.
func atMonthBegin(ts time.Time) time.Time {
	y, m, _ := ts.Date()
	return time.Date(y, m, 1, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
}

// firstWeekdayOfMonth returns the Mon=0..Sun=6 weekday of the 1st of ts's month.
func firstWeekdayOfMonth(year int, month time.Month) Weekday {
	return DayOfWeek(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// firstBusinessDay returns the day-of-month (1-based) of the first business
// day in the month: the 1st if it's a weekday, the 3rd if the 1st is a
// Saturday, the 2nd if the 1st is a Sunday.
func firstBusinessDay(year int, month time.Month) int {
	switch firstWeekdayOfMonth(year, month) {
	case Saturday:
		return 3
	case Sunday:
		return 2
	default:
		return 1
	}
}

// lastBusinessDay returns the day-of-month (1-based) of the last business
// day in the month.
func lastBusinessDay(year int, month time.Month) int {
	dim := daysInMonth(year, month)
	lastWeekday := firstWeekdayOfMonth(year, month).add(dim - 1)
	offset := int(lastWeekday) - 4
	if offset < 0 {
		offset = 0
	}
	return dim - offset
}

// add returns the weekday w+n days later, wrapping Mon..Sun.
func (w Weekday) add(n int) Weekday {
	return Weekday(((int(w)+n)%7 + 7) % 7)
}

// withClock sets ts's time-of-day fields from src.
func withClock(ts, src time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, src.Hour(), src.Minute(), src.Second(), src.Nanosecond(), src.Location())
}

// stepMonthsAnchored computes, for an offset where every month is a valid
// anchor (MonthEnd/MonthBegin and their business-day variants), the signed
// month delta n steps forward or back: day/compareDay decide whether ts
// has already reached this month's anchor, consuming one unit of n in the
// direction of motion when it hasn't.
func stepMonthsAnchored(n, day, compareDay int) int {
	if n > 0 && day < compareDay {
		n--
	} else if n <= 0 && day > compareDay {
		n++
	}
	return n
}

// stepMonthsPhased generalizes stepMonthsAnchored to offsets where only
// every cycle-th month is a valid anchor (QuarterEnd/QuarterBegin with
// cycle=3, YearEnd/YearBegin with cycle=12): monthsAhead is how many
// months forward from ts's month the next anchor month falls (0 if ts's
// month is itself an anchor month, in which case day/compareDay decide
// same as stepMonthsAnchored; otherwise ts isn't in an anchor month at
// all, so only the sign of n and monthsAhead matter).
func stepMonthsPhased(n, monthsAhead, cycle, day, compareDay int) int {
	if monthsAhead == 0 {
		return cycle * stepMonthsAnchored(n, day, compareDay)
	}
	if n > 0 {
		return monthsAhead + cycle*(n-1)
	}
	return monthsAhead + cycle*n
}
