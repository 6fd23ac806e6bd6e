package aoffsets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFY5253Quarter(t *testing.T, n int) FY5253Quarter {
	inner, err := NewFY5253(1, 12, Friday, VariationLast)
	assert.NoError(t, err)
	q, err := NewFY5253Quarter(n, inner, 4)
	assert.NoError(t, err)
	return q
}

func TestFY5253QuarterLastBoundaryMatchesYearEnd(t *testing.T) {
	q := newTestFY5253Quarter(t, 1)
	yearEnd := q.inner.yearEnd(2024)
	assert.Equal(t, yearEnd, q.boundaryAt(qpos{year: 2024, idx: 3}))
}

func TestFY5253QuarterOnOffsetAtYearEnd(t *testing.T) {
	q := newTestFY5253Quarter(t, 1)
	yearEnd := q.inner.yearEnd(2024)
	assert.True(t, q.OnOffset(yearEnd))
	assert.False(t, q.OnOffset(yearEnd.AddDate(0, 0, 1)))
}

func TestFY5253QuarterApplyFromYearEndSteps(t *testing.T) {
	q := newTestFY5253Quarter(t, 1)
	yearEnd := q.inner.yearEnd(2024)

	got, err := q.Apply(yearEnd)
	assert.NoError(t, err)

	idx0, _, onBoundary := q.locate(yearEnd)
	assert.True(t, onBoundary)
	want := withClock(q.boundaryAt(stepQPos(idx0, 1)), yearEnd)
	assert.Equal(t, want, got)
}

func TestFY5253QuarterRejectsInvalidQtr(t *testing.T) {
	inner, err := NewFY5253(1, 12, Friday, VariationLast)
	assert.NoError(t, err)
	_, err = NewFY5253Quarter(1, inner, 5)
	assert.Error(t, err)
	_, err = NewFY5253Quarter(0, inner, 1)
	assert.Error(t, err)
}

func TestFY5253QuarterFreqStr(t *testing.T) {
	q := newTestFY5253Quarter(t, 1)
	assert.Equal(t, "REQ-L-DEC-FRI-4", q.FreqStr())
}

func TestStepQPosWraps(t *testing.T) {
	p := stepQPos(qpos{year: 2024, idx: 3}, 1)
	assert.Equal(t, qpos{year: 2025, idx: 0}, p)

	p2 := stepQPos(qpos{year: 2024, idx: 0}, -1)
	assert.Equal(t, qpos{year: 2023, idx: 3}, p2)
}
