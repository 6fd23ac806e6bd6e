package aoffsets

import "time"

// monthsToFiscalMonth computes how many months forward from month reach
// the fiscal anchor month (0 if month is already the anchor).
func monthsToFiscalMonth(month time.Month, anchorMonth int) int {
	return floorMod(anchorMonth-int(month), 12)
}

// YearEnd steps to the last calendar day of a fiscal year-end month, n
// years at a time.
type YearEnd struct {
	n         int
	month     int
	normalize bool
}

func NewYearEnd(n, month int) (YearEnd, error) {
	if month < 1 || month > 12 {
		return YearEnd{}, newValidationError("month", monthName(month), "must be in 1..12")
	}
	return YearEnd{n: n, month: month}, nil
}

func (y YearEnd) WithNormalize(v bool) YearEnd { y.normalize = v; return y }

func (y YearEnd) N() int           { return y.n }
func (y YearEnd) IsAnchored() bool { return y.n == 1 }

func (y YearEnd) OnOffset(ts time.Time) bool {
	return ts.Day() == daysInMonth(ts.Year(), ts.Month()) && int(ts.Month()) == y.month
}

func (y YearEnd) Apply(ts time.Time) (time.Time, error) {
	monthsToGo := monthsToFiscalMonth(ts.Month(), y.month)
	step := stepMonthsPhased(y.n, monthsToGo, 12, ts.Day(), daysInMonth(ts.Year(), ts.Month()))
	yy, mo := monthsLanding(ts.Year(), ts.Month(), step)
	d := daysInMonth(yy, mo)
	result := time.Date(yy, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if y.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (y YearEnd) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(y, ts) }
func (y YearEnd) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(y, ts) }

func (y YearEnd) FreqStr() string { return formatN(y.n) + "A-" + monthName(y.month) }

func (y YearEnd) Equal(other Offset) bool {
	oy, ok := other.(YearEnd)
	return ok && y.n == oy.n && y.month == oy.month && y.normalize == oy.normalize
}

func (y YearEnd) withN(n int) Offset { y.n = n; return y }

// YearBegin steps to the first calendar day of a fiscal year-begin month.
type YearBegin struct {
	n         int
	month     int
	normalize bool
}

func NewYearBegin(n, month int) (YearBegin, error) {
	if month < 1 || month > 12 {
		return YearBegin{}, newValidationError("month", monthName(month), "must be in 1..12")
	}
	return YearBegin{n: n, month: month}, nil
}

func (y YearBegin) WithNormalize(v bool) YearBegin { y.normalize = v; return y }

func (y YearBegin) N() int           { return y.n }
func (y YearBegin) IsAnchored() bool { return y.n == 1 }

func (y YearBegin) OnOffset(ts time.Time) bool {
	return ts.Day() == 1 && int(ts.Month()) == y.month
}

func (y YearBegin) Apply(ts time.Time) (time.Time, error) {
	monthsToGo := monthsToFiscalMonth(ts.Month(), y.month)
	step := stepMonthsPhased(y.n, monthsToGo, 12, ts.Day(), 1)
	yy, mo := monthsLanding(ts.Year(), ts.Month(), step)
	result := time.Date(yy, mo, 1, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if y.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (y YearBegin) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(y, ts) }
func (y YearBegin) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(y, ts) }

func (y YearBegin) FreqStr() string { return formatN(y.n) + "AS-" + monthName(y.month) }

func (y YearBegin) Equal(other Offset) bool {
	oy, ok := other.(YearBegin)
	return ok && y.n == oy.n && y.month == oy.month && y.normalize == oy.normalize
}

func (y YearBegin) withN(n int) Offset { y.n = n; return y }

// BYearEnd steps to the last business day of a fiscal year-end month.
type BYearEnd struct {
	n         int
	month     int
	normalize bool
}

func NewBYearEnd(n, month int) (BYearEnd, error) {
	if month < 1 || month > 12 {
		return BYearEnd{}, newValidationError("month", monthName(month), "must be in 1..12")
	}
	return BYearEnd{n: n, month: month}, nil
}

func (b BYearEnd) WithNormalize(v bool) BYearEnd { b.normalize = v; return b }

func (b BYearEnd) N() int           { return b.n }
func (b BYearEnd) IsAnchored() bool { return b.n == 1 }

func (b BYearEnd) OnOffset(ts time.Time) bool {
	return ts.Day() == lastBusinessDay(ts.Year(), ts.Month()) && int(ts.Month()) == b.month
}

func (b BYearEnd) Apply(ts time.Time) (time.Time, error) {
	monthsToGo := monthsToFiscalMonth(ts.Month(), b.month)
	step := stepMonthsPhased(b.n, monthsToGo, 12, ts.Day(), lastBusinessDay(ts.Year(), ts.Month()))
	yy, mo := monthsLanding(ts.Year(), ts.Month(), step)
	d := lastBusinessDay(yy, mo)
	result := time.Date(yy, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if b.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (b BYearEnd) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(b, ts) }
func (b BYearEnd) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(b, ts) }

func (b BYearEnd) FreqStr() string { return formatN(b.n) + "BA-" + monthName(b.month) }

func (b BYearEnd) Equal(other Offset) bool {
	ob, ok := other.(BYearEnd)
	return ok && b.n == ob.n && b.month == ob.month && b.normalize == ob.normalize
}

func (b BYearEnd) withN(n int) Offset { b.n = n; return b }

// BYearBegin steps to the first business day of a fiscal year-begin month.
type BYearBegin struct {
	n         int
	month     int
	normalize bool
}

func NewBYearBegin(n, month int) (BYearBegin, error) {
	if month < 1 || month > 12 {
		return BYearBegin{}, newValidationError("month", monthName(month), "must be in 1..12")
	}
	return BYearBegin{n: n, month: month}, nil
}

func (b BYearBegin) WithNormalize(v bool) BYearBegin { b.normalize = v; return b }

func (b BYearBegin) N() int           { return b.n }
func (b BYearBegin) IsAnchored() bool { return b.n == 1 }

func (b BYearBegin) OnOffset(ts time.Time) bool {
	return ts.Day() == firstBusinessDay(ts.Year(), ts.Month()) && int(ts.Month()) == b.month
}

func (b BYearBegin) Apply(ts time.Time) (time.Time, error) {
	monthsToGo := monthsToFiscalMonth(ts.Month(), b.month)
	step := stepMonthsPhased(b.n, monthsToGo, 12, ts.Day(), firstBusinessDay(ts.Year(), ts.Month()))
	yy, mo := monthsLanding(ts.Year(), ts.Month(), step)
	d := firstBusinessDay(yy, mo)
	result := time.Date(yy, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if b.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (b BYearBegin) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(b, ts) }
func (b BYearBegin) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(b, ts) }

func (b BYearBegin) FreqStr() string { return formatN(b.n) + "BAS-" + monthName(b.month) }

func (b BYearBegin) Equal(other Offset) bool {
	ob, ok := other.(BYearBegin)
	return ok && b.n == ob.n && b.month == ob.month && b.normalize == ob.normalize
}

func (b BYearBegin) withN(n int) Offset { b.n = n; return b }
