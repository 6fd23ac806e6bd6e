package aoffsets

import "time"

// Tick is a fixed-duration offset (nanosecond through day) that never
// anchors to any calendar feature: OnOffset is always true, IsAnchored is
// always false. Ticks of different kinds compare equal when their total
// duration matches (Hour(1) == Minute(60)).
type Tick struct {
	n      int
	inc    time.Duration
	prefix string
}

var (
	tickNanoInc   = time.Nanosecond
	tickMicroInc  = time.Microsecond
	tickMilliInc  = time.Millisecond
	tickSecondInc = time.Second
	tickMinuteInc = time.Minute
	tickHourInc   = time.Hour
	tickDayInc    = 24 * time.Hour
)

// NewNano, NewMicro, ... construct the seven tick kinds the algebra names:
// nanosecond through day, each a thin wrapper over a fixed time.Duration
// increment multiplied by n.
func NewNano(n int) Tick   { return Tick{n: n, inc: tickNanoInc, prefix: "N"} }
func NewMicro(n int) Tick  { return Tick{n: n, inc: tickMicroInc, prefix: "U"} }
func NewMilli(n int) Tick  { return Tick{n: n, inc: tickMilliInc, prefix: "L"} }
func NewSecond(n int) Tick { return Tick{n: n, inc: tickSecondInc, prefix: "S"} }
func NewMinute(n int) Tick { return Tick{n: n, inc: tickMinuteInc, prefix: "T"} }
func NewHour(n int) Tick   { return Tick{n: n, inc: tickHourInc, prefix: "H"} }
func NewDay(n int) Tick    { return Tick{n: n, inc: tickDayInc, prefix: "D"} }

// Delta returns the total signed duration this tick represents.
func (t Tick) Delta() time.Duration { return time.Duration(t.n) * t.inc }

func (t Tick) Apply(ts time.Time) (time.Time, error) {
	return ts.Add(t.Delta()), nil
}

// OnOffset is always true: ticks do not anchor to a calendar feature.
func (t Tick) OnOffset(time.Time) bool { return true }

func (t Tick) RollForward(ts time.Time) (time.Time, error) { return ts, nil }
func (t Tick) RollBack(ts time.Time) (time.Time, error)    { return ts, nil }

func (t Tick) N() int { return t.n }

func (t Tick) FreqStr() string { return formatN(t.n) + t.prefix }

func (t Tick) IsAnchored() bool { return false }

func (t Tick) Equal(other Offset) bool {
	ot, ok := other.(Tick)
	if !ok {
		return false
	}
	return t.Delta() == ot.Delta()
}

func (t Tick) withN(n int) Offset { return Tick{n: n, inc: t.inc, prefix: t.prefix} }

// AddTicks implements tick + tick normalization: the sum collapses to the
// coarsest tick kind whose increment divides the combined delta exactly,
// falling back to nanoseconds when no coarser kind divides it evenly.
func AddTicks(a, b Tick) Tick {
	total := a.Delta() + b.Delta()
	candidates := []struct {
		inc    time.Duration
		prefix string
	}{
		{tickDayInc, "D"},
		{tickHourInc, "H"},
		{tickMinuteInc, "T"},
		{tickSecondInc, "S"},
		{tickMilliInc, "L"},
		{tickMicroInc, "U"},
		{tickNanoInc, "N"},
	}
	for _, c := range candidates {
		if total%c.inc == 0 {
			return Tick{n: int(total / c.inc), inc: c.inc, prefix: c.prefix}
		}
	}
	return Tick{n: int(total), inc: tickNanoInc, prefix: "N"}
}
