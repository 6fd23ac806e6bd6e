package aoffsets

import (
	"strconv"
	"time"
)

// FY5253Quarter wraps an inner FY5253 fiscal calendar into a 4-4-5 quarter
// model: 13-week quarters, except the designated quarter grows to 14 weeks
// in a 53-week (371-day) fiscal year.
type FY5253Quarter struct {
	n                int
	inner            FY5253
	qtrWithExtraWeek int // 1..4
	normalize        bool
}

// NewFY5253Quarter constructs an FY5253Quarter. n=0 is rejected, as is a
// qtrWithExtraWeek outside 1..4.
func NewFY5253Quarter(n int, inner FY5253, qtrWithExtraWeek int) (FY5253Quarter, error) {
	if n == 0 {
		return FY5253Quarter{}, newValidationError("n", "0", "FY5253Quarter requires n != 0")
	}
	if qtrWithExtraWeek < 1 || qtrWithExtraWeek > 4 {
		return FY5253Quarter{}, newValidationError("qtrWithExtraWeek", strconv.Itoa(qtrWithExtraWeek), "must be in 1..4")
	}
	return FY5253Quarter{n: n, inner: inner, qtrWithExtraWeek: qtrWithExtraWeek}, nil
}

func (f FY5253Quarter) WithNormalize(v bool) FY5253Quarter { f.normalize = v; return f }

func (f FY5253Quarter) N() int           { return f.n }
func (f FY5253Quarter) IsAnchored() bool { return f.n == 1 }

// yearHasExtraWeek reports whether the fiscal year ending at
// inner.yearEnd(y) spans 53 weeks (371 days) rather than the usual 52.
func (f FY5253Quarter) yearHasExtraWeek(y int) bool {
	span := f.inner.yearEnd(y).Sub(f.inner.yearEnd(y - 1))
	return span == 371*24*time.Hour
}

// quarterBoundaries returns the four cumulative quarter-end dates for the
// fiscal year ending at inner.yearEnd(y), counting forward in weeks from
// inner.yearEnd(y-1).
func (f FY5253Quarter) quarterBoundaries(y int) [4]time.Time {
	lengths := [4]int{13, 13, 13, 13}
	if f.yearHasExtraWeek(y) {
		lengths[f.qtrWithExtraWeek-1] = 14
	}
	var boundaries [4]time.Time
	cur := f.inner.yearEnd(y - 1)
	for i, wlen := range lengths {
		cur = cur.AddDate(0, 0, 7*wlen)
		boundaries[i] = cur
	}
	return boundaries
}

// qpos identifies a single quarter boundary: the idx-th (0..3) quarter end
// of the fiscal year ending in calendar year `year`. Treating year*4+idx
// as a continuous integer line lets quarter boundaries be stepped forward
// or backward by whole quarters without re-deriving week lengths each time.
type qpos struct {
	year int
	idx  int
}

func stepQPos(p qpos, delta int) qpos {
	total := p.year*4 + p.idx + delta
	return qpos{year: floorDiv(total, 4), idx: floorMod(total, 4)}
}

func (f FY5253Quarter) boundaryAt(p qpos) time.Time {
	return f.quarterBoundaries(p.year)[p.idx]
}

// enclosingYear finds the Y such that inner.yearEnd(Y-1) < ts <= inner.yearEnd(Y).
func (f FY5253Quarter) enclosingYear(ts time.Time) int {
	y := ts.Year()
	for ts.After(f.inner.yearEnd(y)) {
		y++
	}
	for !ts.After(f.inner.yearEnd(y - 1)) {
		y--
	}
	return y
}

// locate finds idx0 (the latest quarter boundary <= ts) and idx1 (the
// earliest quarter boundary >= ts). They coincide when ts sits exactly on
// a boundary.
func (f FY5253Quarter) locate(ts time.Time) (idx0, idx1 qpos, onBoundary bool) {
	y := f.enclosingYear(ts)
	b := f.quarterBoundaries(y)
	for i := 0; i < 4; i++ {
		if sameDay(ts, b[i]) {
			p := qpos{year: y, idx: i}
			return p, p, true
		}
		if ts.Before(b[i]) {
			idx1 = qpos{year: y, idx: i}
			idx0 = stepQPos(idx1, -1)
			return idx0, idx1, false
		}
	}
	// Unreachable: enclosingYear guarantees ts <= b[3].
	return qpos{year: y, idx: 2}, qpos{year: y, idx: 3}, false
}

// OnOffset reports whether ts equals a fiscal year-end or one of the
// cumulative quarter boundaries within its enclosing fiscal year.
func (f FY5253Quarter) OnOffset(ts time.Time) bool {
	_, _, onBoundary := f.locate(ts)
	return onBoundary
}

// Apply finds ts's position among quarter boundaries and steps n quarters
// forward (from the boundary at-or-before ts) or backward (from the
// boundary at-or-after ts), per the same "consume one unit reaching the
// straddling anchor" rule FY5253 itself uses.
func (f FY5253Quarter) Apply(ts time.Time) (time.Time, error) {
	idx0, idx1, _ := f.locate(ts)

	var target qpos
	if f.n > 0 {
		target = stepQPos(idx0, f.n)
	} else {
		target = stepQPos(idx1, f.n)
	}

	result := withClock(f.boundaryAt(target), ts)
	if f.normalize {
		y, m, d := result.Date()
		result = time.Date(y, m, d, 0, 0, 0, 0, result.Location())
	}
	return result, nil
}

func (f FY5253Quarter) RollForward(ts time.Time) (time.Time, error) {
	return rollForwardDefault(f, ts)
}
func (f FY5253Quarter) RollBack(ts time.Time) (time.Time, error) { return rollBackDefault(f, ts) }

func (f FY5253Quarter) FreqStr() string {
	variationCode := "L"
	if f.inner.variation == VariationNearest {
		variationCode = "N"
	}
	return formatN(f.n) + "REQ-" + variationCode + "-" + monthName(f.inner.startingMonth) + "-" +
		f.inner.weekday.String() + "-" + strconv.Itoa(f.qtrWithExtraWeek)
}

func (f FY5253Quarter) Equal(other Offset) bool {
	of, ok := other.(FY5253Quarter)
	return ok && f.n == of.n && f.qtrWithExtraWeek == of.qtrWithExtraWeek && f.normalize == of.normalize &&
		f.inner.Equal(of.inner)
}

func (f FY5253Quarter) withN(n int) Offset { f.n = n; return f }
