package aoffsets

import (
	"time"

	"github.com/jpfluger/dateoffsets/acalendar"
)

// CustomBusinessDay is BusinessDay generalized with an arbitrary weekmask
// and holiday calendar. The calendar is a derived cache: built once at
// construction, read-only thereafter, never persisted (a serialized
// CustomBusinessDay must carry only the calendar's name/definition and
// rebuild it on load).
type CustomBusinessDay struct {
	n         int
	normalize bool
	offset    time.Duration
	calendar  *acalendar.Calendar
}

// NewCustomBusinessDay constructs a CustomBusinessDay stepping n business
// days under the given calendar's weekmask and holidays.
func NewCustomBusinessDay(n int, calendar *acalendar.Calendar) CustomBusinessDay {
	if calendar == nil {
		calendar = acalendar.NewCalendar()
	}
	return CustomBusinessDay{n: n, calendar: calendar}
}

func (c CustomBusinessDay) WithNormalize(normalize bool) CustomBusinessDay {
	c.normalize = normalize
	return c
}

func (c CustomBusinessDay) WithSubDelta(d time.Duration) CustomBusinessDay {
	c.offset += d
	return c
}

func (c CustomBusinessDay) N() int { return c.n }

func (c CustomBusinessDay) IsAnchored() bool { return c.n == 1 }

func (c CustomBusinessDay) OnOffset(ts time.Time) bool {
	return c.calendar.IsBusinessDay(ts)
}

// Apply converts ts to day precision, rolls it onto a business day
// (backward when n>0, forward when n<=0 — matching numpy's busday_offset
// convention the source offset wraps), steps |n| business days in the
// direction of n, then re-attaches ts's original time-of-day. Re-attaching
// the intra-day remainder after the business-day step, rather than
// building the whole result from a datetime64 increment, is the fix for
// the transcription bug the source exhibits when handling datetime64
// operands.
func (c CustomBusinessDay) Apply(ts time.Time) (time.Time, error) {
	dayPart := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())

	forward := c.n <= 0
	rolled := rollToBusinessDay(dayPart, forward, c.calendar)
	stepped := stepBusinessDays(rolled, c.n, c.calendar)

	result := withClock(stepped, ts)
	if c.normalize {
		y, m, d := result.Date()
		result = time.Date(y, m, d, 0, 0, 0, 0, result.Location())
	}
	if c.offset != 0 {
		result = result.Add(c.offset)
	}
	return result, nil
}

func rollToBusinessDay(ts time.Time, forward bool, cal *acalendar.Calendar) time.Time {
	step := -1
	if forward {
		step = 1
	}
	for !cal.IsBusinessDay(ts) {
		ts = ts.AddDate(0, 0, step)
	}
	return ts
}

func stepBusinessDays(ts time.Time, n int, cal *acalendar.Calendar) time.Time {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for i := 0; i < n; i++ {
		ts = ts.AddDate(0, 0, step)
		for !cal.IsBusinessDay(ts) {
			ts = ts.AddDate(0, 0, step)
		}
	}
	return ts
}

func (c CustomBusinessDay) RollForward(ts time.Time) (time.Time, error) {
	return rollForwardDefault(c, ts)
}

func (c CustomBusinessDay) RollBack(ts time.Time) (time.Time, error) {
	return rollBackDefault(c, ts)
}

func (c CustomBusinessDay) FreqStr() string {
	s := formatN(c.n) + "C"
	if c.offset != 0 {
		s += signedDurationSuffix(c.offset)
	}
	return s
}

func (c CustomBusinessDay) Equal(other Offset) bool {
	oc, ok := other.(CustomBusinessDay)
	if !ok {
		return false
	}
	return c.n == oc.n && c.normalize == oc.normalize && c.offset == oc.offset && c.calendar == oc.calendar
}

func (c CustomBusinessDay) withN(n int) Offset {
	c.n = n
	return c
}
