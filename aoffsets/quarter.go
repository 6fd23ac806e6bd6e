package aoffsets

import "time"

// isQuarterMonth reports whether month is a quarter month under the given
// phase (startingMonth): (month - startingMonth) mod 3 == 0.
func isQuarterMonth(month time.Month, startingMonth int) bool {
	return floorMod(int(month)-startingMonth, 3) == 0
}

// monthsToNextQuarterMonth computes how many months forward from month
// reach the next quarter month under the given phase (0 if month is
// already a quarter month).
func monthsToNextQuarterMonth(month time.Month, startingMonth int) int {
	return floorMod(3-floorMod(int(month)-startingMonth, 3), 3)
}

// QuarterEnd steps to the last calendar day of a quarter month (phased by
// startingMonth), n quarters at a time.
type QuarterEnd struct {
	n             int
	startingMonth int
	normalize     bool
}

// NewQuarterEnd constructs a QuarterEnd with the given phase (1..12,
// identifying which calendar months are quarter ends).
func NewQuarterEnd(n, startingMonth int) (QuarterEnd, error) {
	if startingMonth < 1 || startingMonth > 12 {
		return QuarterEnd{}, newValidationError("startingMonth", monthName(startingMonth), "must be in 1..12")
	}
	return QuarterEnd{n: n, startingMonth: startingMonth}, nil
}

func (q QuarterEnd) WithNormalize(v bool) QuarterEnd { q.normalize = v; return q }

func (q QuarterEnd) N() int           { return q.n }
func (q QuarterEnd) IsAnchored() bool { return q.n == 1 }

func (q QuarterEnd) OnOffset(ts time.Time) bool {
	return ts.Day() == daysInMonth(ts.Year(), ts.Month()) && isQuarterMonth(ts.Month(), q.startingMonth)
}

func (q QuarterEnd) Apply(ts time.Time) (time.Time, error) {
	monthsToGo := monthsToNextQuarterMonth(ts.Month(), q.startingMonth)
	step := stepMonthsPhased(q.n, monthsToGo, 3, ts.Day(), daysInMonth(ts.Year(), ts.Month()))
	y, mo := monthsLanding(ts.Year(), ts.Month(), step)
	d := daysInMonth(y, mo)
	result := time.Date(y, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if q.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (q QuarterEnd) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(q, ts) }
func (q QuarterEnd) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(q, ts) }

func (q QuarterEnd) FreqStr() string { return formatN(q.n) + "Q-" + monthName(q.startingMonth) }

func (q QuarterEnd) Equal(other Offset) bool {
	oq, ok := other.(QuarterEnd)
	return ok && q.n == oq.n && q.startingMonth == oq.startingMonth && q.normalize == oq.normalize
}

func (q QuarterEnd) withN(n int) Offset { q.n = n; return q }

// QuarterBegin steps to the first calendar day of a quarter month.
type QuarterBegin struct {
	n             int
	startingMonth int
	normalize     bool
}

func NewQuarterBegin(n, startingMonth int) (QuarterBegin, error) {
	if startingMonth < 1 || startingMonth > 12 {
		return QuarterBegin{}, newValidationError("startingMonth", monthName(startingMonth), "must be in 1..12")
	}
	return QuarterBegin{n: n, startingMonth: startingMonth}, nil
}

func (q QuarterBegin) WithNormalize(v bool) QuarterBegin { q.normalize = v; return q }

func (q QuarterBegin) N() int           { return q.n }
func (q QuarterBegin) IsAnchored() bool { return q.n == 1 }

func (q QuarterBegin) OnOffset(ts time.Time) bool {
	return ts.Day() == 1 && isQuarterMonth(ts.Month(), q.startingMonth)
}

func (q QuarterBegin) Apply(ts time.Time) (time.Time, error) {
	monthsToGo := monthsToNextQuarterMonth(ts.Month(), q.startingMonth)
	step := stepMonthsPhased(q.n, monthsToGo, 3, ts.Day(), 1)
	y, mo := monthsLanding(ts.Year(), ts.Month(), step)
	result := time.Date(y, mo, 1, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if q.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (q QuarterBegin) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(q, ts) }
func (q QuarterBegin) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(q, ts) }

func (q QuarterBegin) FreqStr() string { return formatN(q.n) + "QS-" + monthName(q.startingMonth) }

func (q QuarterBegin) Equal(other Offset) bool {
	oq, ok := other.(QuarterBegin)
	return ok && q.n == oq.n && q.startingMonth == oq.startingMonth && q.normalize == oq.normalize
}

func (q QuarterBegin) withN(n int) Offset { q.n = n; return q }

// BQuarterEnd steps to the last business day of a quarter month.
type BQuarterEnd struct {
	n             int
	startingMonth int
	normalize     bool
}

func NewBQuarterEnd(n, startingMonth int) (BQuarterEnd, error) {
	if startingMonth < 1 || startingMonth > 12 {
		return BQuarterEnd{}, newValidationError("startingMonth", monthName(startingMonth), "must be in 1..12")
	}
	return BQuarterEnd{n: n, startingMonth: startingMonth}, nil
}

func (b BQuarterEnd) WithNormalize(v bool) BQuarterEnd { b.normalize = v; return b }

func (b BQuarterEnd) N() int           { return b.n }
func (b BQuarterEnd) IsAnchored() bool { return b.n == 1 }

func (b BQuarterEnd) OnOffset(ts time.Time) bool {
	return ts.Day() == lastBusinessDay(ts.Year(), ts.Month()) && isQuarterMonth(ts.Month(), b.startingMonth)
}

func (b BQuarterEnd) Apply(ts time.Time) (time.Time, error) {
	monthsToGo := monthsToNextQuarterMonth(ts.Month(), b.startingMonth)
	step := stepMonthsPhased(b.n, monthsToGo, 3, ts.Day(), lastBusinessDay(ts.Year(), ts.Month()))
	y, mo := monthsLanding(ts.Year(), ts.Month(), step)
	d := lastBusinessDay(y, mo)
	result := time.Date(y, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if b.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (b BQuarterEnd) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(b, ts) }
func (b BQuarterEnd) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(b, ts) }

func (b BQuarterEnd) FreqStr() string { return formatN(b.n) + "BQ-" + monthName(b.startingMonth) }

func (b BQuarterEnd) Equal(other Offset) bool {
	ob, ok := other.(BQuarterEnd)
	return ok && b.n == ob.n && b.startingMonth == ob.startingMonth && b.normalize == ob.normalize
}

func (b BQuarterEnd) withN(n int) Offset { b.n = n; return b }

// BQuarterBegin steps to the first business day of a quarter month.
type BQuarterBegin struct {
	n             int
	startingMonth int
	normalize     bool
}

func NewBQuarterBegin(n, startingMonth int) (BQuarterBegin, error) {
	if startingMonth < 1 || startingMonth > 12 {
		return BQuarterBegin{}, newValidationError("startingMonth", monthName(startingMonth), "must be in 1..12")
	}
	return BQuarterBegin{n: n, startingMonth: startingMonth}, nil
}

func (b BQuarterBegin) WithNormalize(v bool) BQuarterBegin { b.normalize = v; return b }

func (b BQuarterBegin) N() int           { return b.n }
func (b BQuarterBegin) IsAnchored() bool { return b.n == 1 }

func (b BQuarterBegin) OnOffset(ts time.Time) bool {
	return ts.Day() == firstBusinessDay(ts.Year(), ts.Month()) && isQuarterMonth(ts.Month(), b.startingMonth)
}

func (b BQuarterBegin) Apply(ts time.Time) (time.Time, error) {
	monthsToGo := monthsToNextQuarterMonth(ts.Month(), b.startingMonth)
	step := stepMonthsPhased(b.n, monthsToGo, 3, ts.Day(), firstBusinessDay(ts.Year(), ts.Month()))
	y, mo := monthsLanding(ts.Year(), ts.Month(), step)
	d := firstBusinessDay(y, mo)
	result := time.Date(y, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if b.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (b BQuarterBegin) RollForward(ts time.Time) (time.Time, error) {
	return rollForwardDefault(b, ts)
}
func (b BQuarterBegin) RollBack(ts time.Time) (time.Time, error) { return rollBackDefault(b, ts) }

func (b BQuarterBegin) FreqStr() string { return formatN(b.n) + "BQS-" + monthName(b.startingMonth) }

func (b BQuarterBegin) Equal(other Offset) bool {
	ob, ok := other.(BQuarterBegin)
	return ok && b.n == ob.n && b.startingMonth == ob.startingMonth && b.normalize == ob.normalize
}

func (b BQuarterBegin) withN(n int) Offset { b.n = n; return b }

var monthAbbrevs = [13]string{"", "JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// monthName renders the three-letter rule-code abbreviation for a 1..12
// month number.
func monthName(m int) string {
	if m < 1 || m > 12 {
		return "?"
	}
	return monthAbbrevs[m]
}
