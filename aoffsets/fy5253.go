package aoffsets

import "time"

// FY5253Variation selects how a fiscal year-end maps onto a weekday near
// the end of the starting month.
type FY5253Variation string

const (
	// VariationLast picks the last occurrence of the weekday on or
	// before the starting month's last calendar day.
	VariationLast FY5253Variation = "last"
	// VariationNearest picks the occurrence of the weekday closest to
	// the starting month's last calendar day, ties broken toward the
	// later date.
	VariationNearest FY5253Variation = "nearest"
)

// FY5253 is a 52/53-week fiscal calendar: the fiscal year ends on a fixed
// weekday near the end of a fixed calendar month, per variation.
type FY5253 struct {
	n             int
	startingMonth int
	weekday       Weekday
	variation     FY5253Variation
	normalize     bool
}

// NewFY5253 constructs an FY5253. n=0 is rejected, as is any variation
// other than "last"/"nearest" or a startingMonth outside 1..12.
func NewFY5253(n, startingMonth int, weekday Weekday, variation FY5253Variation) (FY5253, error) {
	if n == 0 {
		return FY5253{}, newValidationError("n", "0", "FY5253 requires n != 0")
	}
	if startingMonth < 1 || startingMonth > 12 {
		return FY5253{}, newValidationError("startingMonth", monthName(startingMonth), "must be in 1..12")
	}
	if variation != VariationLast && variation != VariationNearest {
		return FY5253{}, newValidationError("variation", string(variation), `must be "last" or "nearest"`)
	}
	return FY5253{n: n, startingMonth: startingMonth, weekday: weekday, variation: variation}, nil
}

func (f FY5253) WithNormalize(v bool) FY5253 { f.normalize = v; return f }

func (f FY5253) N() int           { return f.n }
func (f FY5253) IsAnchored() bool { return f.n == 1 }

// yearEnd computes the fiscal year-end date for the fiscal year that is
// anchored in calendar year y (i.e. whose starting-month target falls in
// year y).
func (f FY5253) yearEnd(y int) time.Time {
	target := time.Date(y, time.Month(f.startingMonth), daysInMonth(y, time.Month(f.startingMonth)), 0, 0, 0, 0, time.UTC)

	if f.variation == VariationLast {
		targetWeekday := int(DayOfWeek(target))
		daysBack := floorMod(targetWeekday-int(f.weekday), 7)
		return target.AddDate(0, 0, -daysBack)
	}

	// nearest: candidate on-or-before and the one 7 days later (on-or-after);
	// pick whichever is closer, ties toward the later (forward) date.
	targetWeekday := int(DayOfWeek(target))
	daysBack := floorMod(targetWeekday-int(f.weekday), 7)
	backward := target.AddDate(0, 0, -daysBack)
	forward := backward.AddDate(0, 0, 7)

	distBack := target.Sub(backward)
	distFwd := forward.Sub(target)
	if distFwd <= distBack {
		return forward
	}
	return backward
}

// OnOffset reports whether ts is a fiscal year-end: for "last", ts must
// equal yearEnd(ts.Year()); for "nearest", a year-end can fall in the
// month after startingMonth, so also check the previous year's anchor.
func (f FY5253) OnOffset(ts time.Time) bool {
	y := ts.Year()
	if sameDay(ts, f.yearEnd(y)) {
		return true
	}
	if f.variation == VariationNearest {
		if sameDay(ts, f.yearEnd(y-1)) || sameDay(ts, f.yearEnd(y+1)) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Apply classifies ts against the previous/current/next fiscal year-ends
// computed from ts's calendar year. If ts sits exactly on one of them,
// n fiscal years are stepped from that anchor. Otherwise ts lies strictly
// between two anchors: one unit of n is consumed reaching the anchor in
// the direction of motion before the remaining years are stepped.
func (f FY5253) Apply(ts time.Time) (time.Time, error) {
	y := ts.Year()
	prevY, curY, nextY := y-1, y, y+1
	prev := f.yearEnd(prevY)
	cur := f.yearEnd(curY)
	next := f.yearEnd(nextY)

	n := f.n
	var anchorYear int

	switch {
	case sameDay(ts, prev):
		anchorYear = prevY
	case sameDay(ts, cur):
		anchorYear = curY
	case sameDay(ts, next):
		anchorYear = nextY
	case ts.Before(prev):
		anchorYear = prevY
		if n > 0 {
			n--
		}
	case ts.After(prev) && ts.Before(cur):
		if n > 0 {
			anchorYear = curY
			n--
		} else {
			anchorYear = prevY
			n++
		}
	case ts.After(cur) && ts.Before(next):
		if n > 0 {
			anchorYear = nextY
			n--
		} else {
			anchorYear = curY
			n++
		}
	default: // ts.After(next)
		anchorYear = nextY
		if n < 0 {
			n++
		}
	}

	result := f.yearEnd(anchorYear + n)
	result = withClock(result, ts)
	if f.normalize {
		yy, mm, dd := result.Date()
		result = time.Date(yy, mm, dd, 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (f FY5253) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(f, ts) }
func (f FY5253) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(f, ts) }

func (f FY5253) FreqStr() string {
	variationCode := "L"
	if f.variation == VariationNearest {
		variationCode = "N"
	}
	return formatN(f.n) + "RE-" + variationCode + "-" + monthName(f.startingMonth) + "-" + f.weekday.String()
}

func (f FY5253) Equal(other Offset) bool {
	of, ok := other.(FY5253)
	return ok && f.n == of.n && f.startingMonth == of.startingMonth && f.weekday == of.weekday &&
		f.variation == of.variation && f.normalize == of.normalize
}

func (f FY5253) withN(n int) Offset { f.n = n; return f }
