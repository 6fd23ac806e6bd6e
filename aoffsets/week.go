package aoffsets

import "time"

// Week steps n weeks at a time. With no target weekday it is a pure 7-day
// tick; with a target weekday it snaps onto that weekday before stepping
// whole weeks, the same way Week.apply does in the algebra this
// generalizes.
type Week struct {
	n         int
	weekday   *Weekday
	normalize bool
}

// NewWeek constructs a Week. weekday is nil for a plain 7-day tick, or a
// pointer to the target weekday to anchor on. n=0 is rejected when a
// weekday is set (it has no well-defined anchor to roll onto).
func NewWeek(n int, weekday *Weekday) (Week, error) {
	if weekday != nil && n == 0 {
		return Week{}, newValidationError("n", "0", "Week with a weekday requires n != 0")
	}
	return Week{n: n, weekday: weekday}, nil
}

func (w Week) WithNormalize(v bool) Week { w.normalize = v; return w }

func (w Week) N() int { return w.n }

func (w Week) IsAnchored() bool { return w.n == 1 && w.weekday != nil }

func (w Week) OnOffset(ts time.Time) bool {
	if w.weekday == nil {
		return true
	}
	return DayOfWeek(ts) == *w.weekday
}

func (w Week) Apply(ts time.Time) (time.Time, error) {
	if w.weekday == nil {
		result := ts.AddDate(0, 0, 7*w.n)
		return w.maybeNormalize(result), nil
	}

	k := w.n
	otherDay := int(DayOfWeek(ts))
	target := int(*w.weekday)
	if otherDay != target {
		ts = ts.AddDate(0, 0, floorMod(target-otherDay, 7))
		if w.n > 0 {
			k--
		}
	}
	result := ts.AddDate(0, 0, 7*k)
	return w.maybeNormalize(result), nil
}

func (w Week) maybeNormalize(ts time.Time) time.Time {
	if !w.normalize {
		return ts
	}
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

func (w Week) RollForward(ts time.Time) (time.Time, error) { return rollForwardDefault(w, ts) }
func (w Week) RollBack(ts time.Time) (time.Time, error)    { return rollBackDefault(w, ts) }

func (w Week) FreqStr() string {
	if w.weekday == nil {
		return formatN(w.n) + "W"
	}
	return formatN(w.n) + "W-" + w.weekday.String()
}

func (w Week) Equal(other Offset) bool {
	ow, ok := other.(Week)
	if !ok || w.n != ow.n || w.normalize != ow.normalize {
		return false
	}
	if (w.weekday == nil) != (ow.weekday == nil) {
		return false
	}
	return w.weekday == nil || *w.weekday == *ow.weekday
}

func (w Week) withN(n int) Offset { w.n = n; return w }
