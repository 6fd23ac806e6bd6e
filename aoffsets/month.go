package aoffsets

import "time"

// monthsLanding computes the (year, month) reached by moving k calendar
// months from (year, month), without touching the day-of-month — callers
// snap the day themselves (to a month-end, a first/last business day,
// etc.) once the landing month is known.
func monthsLanding(year int, month time.Month, k int) (int, time.Month) {
	total := int(month) - 1 + k
	y := year + floorDiv(total, 12)
	m := time.Month(floorMod(total, 12) + 1)
	return y, m
}

// MonthEnd steps to the last calendar day of the month, n months at a time.
type MonthEnd struct {
	n         int
	normalize bool
}

func NewMonthEnd(n int) MonthEnd { return MonthEnd{n: n} }

func (m MonthEnd) WithNormalize(v bool) MonthEnd { m.normalize = v; return m }

func (m MonthEnd) N() int           { return m.n }
func (m MonthEnd) IsAnchored() bool { return m.n == 1 }

func (m MonthEnd) OnOffset(ts time.Time) bool {
	return ts.Day() == daysInMonth(ts.Year(), ts.Month())
}

func (m MonthEnd) Apply(ts time.Time) (time.Time, error) {
	n := stepMonthsAnchored(m.n, ts.Day(), daysInMonth(ts.Year(), ts.Month()))
	y, mo := monthsLanding(ts.Year(), ts.Month(), n)
	d := daysInMonth(y, mo)
	result := time.Date(y, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if m.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (m MonthEnd) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(m, ts) }
func (m MonthEnd) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(m, ts) }

func (m MonthEnd) FreqStr() string { return formatN(m.n) + "M" }

func (m MonthEnd) Equal(other Offset) bool {
	om, ok := other.(MonthEnd)
	return ok && m.n == om.n && m.normalize == om.normalize
}

func (m MonthEnd) withN(n int) Offset { m.n = n; return m }

// MonthBegin steps to the first calendar day of the month, n months at a time.
type MonthBegin struct {
	n         int
	normalize bool
}

func NewMonthBegin(n int) MonthBegin { return MonthBegin{n: n} }

func (m MonthBegin) WithNormalize(v bool) MonthBegin { m.normalize = v; return m }

func (m MonthBegin) N() int           { return m.n }
func (m MonthBegin) IsAnchored() bool { return m.n == 1 }

func (m MonthBegin) OnOffset(ts time.Time) bool { return ts.Day() == 1 }

func (m MonthBegin) Apply(ts time.Time) (time.Time, error) {
	n := stepMonthsAnchored(m.n, ts.Day(), 1)
	y, mo := monthsLanding(ts.Year(), ts.Month(), n)
	result := time.Date(y, mo, 1, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if m.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (m MonthBegin) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(m, ts) }
func (m MonthBegin) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(m, ts) }

func (m MonthBegin) FreqStr() string { return formatN(m.n) + "MS" }

func (m MonthBegin) Equal(other Offset) bool {
	om, ok := other.(MonthBegin)
	return ok && m.n == om.n && m.normalize == om.normalize
}

func (m MonthBegin) withN(n int) Offset { m.n = n; return m }

// BusinessMonthEnd steps to the last business day of the month.
type BusinessMonthEnd struct {
	n         int
	normalize bool
}

func NewBusinessMonthEnd(n int) BusinessMonthEnd { return BusinessMonthEnd{n: n} }

func (b BusinessMonthEnd) WithNormalize(v bool) BusinessMonthEnd { b.normalize = v; return b }

func (b BusinessMonthEnd) N() int           { return b.n }
func (b BusinessMonthEnd) IsAnchored() bool { return b.n == 1 }

func (b BusinessMonthEnd) OnOffset(ts time.Time) bool {
	return ts.Day() == lastBusinessDay(ts.Year(), ts.Month())
}

func (b BusinessMonthEnd) Apply(ts time.Time) (time.Time, error) {
	n := stepMonthsAnchored(b.n, ts.Day(), lastBusinessDay(ts.Year(), ts.Month()))
	y, mo := monthsLanding(ts.Year(), ts.Month(), n)
	d := lastBusinessDay(y, mo)
	result := time.Date(y, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if b.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (b BusinessMonthEnd) RollForward(ts time.Time) (time.Time, error) {
	return rollForwardDefault(b, ts)
}
func (b BusinessMonthEnd) RollBack(ts time.Time) (time.Time, error) { return rollBackDefault(b, ts) }

func (b BusinessMonthEnd) FreqStr() string { return formatN(b.n) + "BM" }

func (b BusinessMonthEnd) Equal(other Offset) bool {
	ob, ok := other.(BusinessMonthEnd)
	return ok && b.n == ob.n && b.normalize == ob.normalize
}

func (b BusinessMonthEnd) withN(n int) Offset { b.n = n; return b }

// BusinessMonthBegin steps to the first business day of the month.
type BusinessMonthBegin struct {
	n         int
	normalize bool
}

func NewBusinessMonthBegin(n int) BusinessMonthBegin { return BusinessMonthBegin{n: n} }

func (b BusinessMonthBegin) WithNormalize(v bool) BusinessMonthBegin { b.normalize = v; return b }

func (b BusinessMonthBegin) N() int           { return b.n }
func (b BusinessMonthBegin) IsAnchored() bool { return b.n == 1 }

func (b BusinessMonthBegin) OnOffset(ts time.Time) bool {
	return ts.Day() == firstBusinessDay(ts.Year(), ts.Month())
}

func (b BusinessMonthBegin) Apply(ts time.Time) (time.Time, error) {
	n := stepMonthsAnchored(b.n, ts.Day(), firstBusinessDay(ts.Year(), ts.Month()))
	y, mo := monthsLanding(ts.Year(), ts.Month(), n)
	d := firstBusinessDay(y, mo)
	result := time.Date(y, mo, d, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())
	if b.normalize {
		result = time.Date(result.Year(), result.Month(), result.Day(), 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (b BusinessMonthBegin) RollForward(ts time.Time) (time.Time, error) {
	return rollForwardDefault(b, ts)
}
func (b BusinessMonthBegin) RollBack(ts time.Time) (time.Time, error) { return rollBackDefault(b, ts) }

func (b BusinessMonthBegin) FreqStr() string { return formatN(b.n) + "BMS" }

func (b BusinessMonthBegin) Equal(other Offset) bool {
	ob, ok := other.(BusinessMonthBegin)
	return ok && b.n == ob.n && b.normalize == ob.normalize
}

func (b BusinessMonthBegin) withN(n int) Offset { b.n = n; return b }
