package aoffsets

import (
	"strconv"
	"time"
)

// Offset is the polymorphic contract every date-offset kind implements.
// Offsets are immutable value objects: construct, never mutate, share
// freely. Apply, OnOffset, RollForward and RollBack are pure functions of
// (offset, timestamp) with no global state and no I/O.
type Offset interface {
	// Apply steps ts by this offset's semantic unit, n times.
	Apply(ts time.Time) (time.Time, error)
	// OnOffset reports whether ts is a member of the set this offset
	// generates, ignoring n.
	OnOffset(ts time.Time) bool
	// RollForward returns ts unchanged if OnOffset(ts), else advances to
	// the next conforming date.
	RollForward(ts time.Time) (time.Time, error)
	// RollBack returns ts unchanged if OnOffset(ts), else recedes to the
	// previous conforming date.
	RollBack(ts time.Time) (time.Time, error)
	// N returns the signed step count.
	N() int
	// FreqStr renders the rule-code string, e.g. "3BQ-FEB".
	FreqStr() string
	// IsAnchored reports n==1 with all phase parameters at their
	// canonical values — the representative instance of its class.
	IsAnchored() bool
	// Equal reports whether other is the same class with the same
	// normalized parameters, including n.
	Equal(other Offset) bool
}

// unitStepper is implemented by offsets that can produce a copy of
// themselves with a different n; the default RollForward/RollBack
// implementations use it to build a one-unit (+1 or -1) step.
type unitStepper interface {
	withN(n int) Offset
}

// rollForwardDefault returns ts unchanged if OnOffset holds, else applies
// one unit step of o (n=+1), per the "subtract/add one copy of self" rule
// in §4.1.
func rollForwardDefault(o Offset, ts time.Time) (time.Time, error) {
	if o.OnOffset(ts) {
		return ts, nil
	}
	us, ok := o.(unitStepper)
	if !ok {
		return ts, newApplyTypeError("offset", "rollforward-unsupported")
	}
	step := us.withN(1)
	return step.Apply(ts)
}

// rollBackDefault returns ts unchanged if OnOffset holds, else applies one
// unit step of o (n=-1).
func rollBackDefault(o Offset, ts time.Time) (time.Time, error) {
	if o.OnOffset(ts) {
		return ts, nil
	}
	us, ok := o.(unitStepper)
	if !ok {
		return ts, newApplyTypeError("offset", "rollback-unsupported")
	}
	step := us.withN(-1)
	return step.Apply(ts)
}

// AddTimestamp implements `ts + O` for any offset.
func AddTimestamp(ts time.Time, o Offset) (time.Time, error) {
	return o.Apply(ts)
}

// Negate implements `-O == class(-n, params)`.
func Negate(o Offset) (Offset, error) {
	us, ok := o.(unitStepper)
	if !ok {
		return nil, newApplyTypeError(o.FreqStr(), "negate-unsupported")
	}
	return us.withN(-o.N()), nil
}

// Scale implements `k*O == class(k*n, params)`.
func Scale(o Offset, k int) (Offset, error) {
	us, ok := o.(unitStepper)
	if !ok {
		return nil, newApplyTypeError(o.FreqStr(), "scale-unsupported")
	}
	return us.withN(k * o.N()), nil
}

// formatN renders the leading step count of a freqstr: empty for n==1,
// otherwise the signed integer.
func formatN(n int) string {
	if n == 1 {
		return ""
	}
	return strconv.Itoa(n)
}
