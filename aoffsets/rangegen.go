package aoffsets

import "time"

// RangeIterator lazily enumerates the dates an offset visits starting at
// an anchored point, stopping at an end bound, a period count, or
// whichever comes first. It is forward-only and not safe for concurrent
// use from multiple goroutines; exhaust it once.
type RangeIterator struct {
	offset    Offset
	cur       time.Time
	started   bool
	done      bool
	end       *time.Time
	remaining *int
}

// GenerateRange builds a RangeIterator anchored at start. start is rolled
// onto the first conforming date via RollForward (offset.N() >= 0) or
// RollBack (offset.N() < 0) before iteration begins. At least one of end
// or periods must be supplied to bound the sequence; supplying both stops
// at whichever bound is hit first.
func GenerateRange(start time.Time, end *time.Time, periods *int, offset Offset) (*RangeIterator, error) {
	if offset == nil {
		return nil, newValidationError("offset", "nil", "generate_range requires a non-nil offset")
	}
	if end == nil && periods == nil {
		return nil, newValidationError("end/periods", "nil", "generate_range requires an end bound or a periods count")
	}
	if periods != nil && *periods < 0 {
		return nil, newValidationError("periods", formatN(*periods), "must be >= 0")
	}

	var anchored time.Time
	var err error
	if offset.N() >= 0 {
		anchored, err = offset.RollForward(start)
	} else {
		anchored, err = offset.RollBack(start)
	}
	if err != nil {
		return nil, err
	}

	var remaining *int
	if periods != nil {
		p := *periods
		remaining = &p
	}
	return &RangeIterator{offset: offset, cur: anchored, end: end, remaining: remaining}, nil
}

// Next returns the next date in the sequence. ok is false once the
// sequence is exhausted (the end bound or period count was reached); no
// further calls are required after that. A non-nil error means the
// offset failed to make forward progress (ErrLiveness) or Apply itself
// failed — the iterator is permanently done in either case.
func (r *RangeIterator) Next() (time.Time, bool, error) {
	if r.done {
		return time.Time{}, false, nil
	}

	if !r.started {
		r.started = true
		if r.pastEnd(r.cur) {
			r.done = true
			return time.Time{}, false, nil
		}
		if r.remaining != nil {
			if *r.remaining <= 0 {
				r.done = true
				return time.Time{}, false, nil
			}
			*r.remaining--
		}
		return r.cur, true, nil
	}

	next, err := r.offset.Apply(r.cur)
	if err != nil {
		r.done = true
		return time.Time{}, false, err
	}
	if r.offset.N() > 0 && !next.After(r.cur) {
		r.done = true
		logger().Warn().Str("offset", r.offset.FreqStr()).Time("at", r.cur).Msg("offset did not advance timestamp, stopping range")
		return time.Time{}, false, ErrLiveness
	}
	if r.offset.N() < 0 && !next.Before(r.cur) {
		r.done = true
		logger().Warn().Str("offset", r.offset.FreqStr()).Time("at", r.cur).Msg("offset did not recede timestamp, stopping range")
		return time.Time{}, false, ErrLiveness
	}
	r.cur = next

	if r.pastEnd(r.cur) {
		r.done = true
		return time.Time{}, false, nil
	}
	if r.remaining != nil {
		if *r.remaining <= 0 {
			r.done = true
			return time.Time{}, false, nil
		}
		*r.remaining--
	}
	return r.cur, true, nil
}

func (r *RangeIterator) pastEnd(ts time.Time) bool {
	if r.end == nil {
		return false
	}
	if r.offset.N() >= 0 {
		return ts.After(*r.end)
	}
	return ts.Before(*r.end)
}

// CollectRange drains a RangeIterator into a slice. Intended for bounded
// ranges (a periods cap or a narrow end bound); an unbounded forward
// iterator with no end will run until a liveness failure or exhaust the
// caller's patience first.
func CollectRange(start time.Time, end *time.Time, periods *int, offset Offset) ([]time.Time, error) {
	it, err := GenerateRange(start, end, periods, offset)
	if err != nil {
		return nil, err
	}
	var out []time.Time
	for {
		ts, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, ts)
	}
}
