package aoffsets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickApply(t *testing.T) {
	d := NewDay(3)
	got, err := d.Apply(mustDate(2024, time.January, 1))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 4), got)
}

func TestTickOnOffsetAlwaysTrue(t *testing.T) {
	h := NewHour(1)
	assert.True(t, h.OnOffset(mustDate(2024, time.January, 1)))
}

func TestTickRollIsNoop(t *testing.T) {
	h := NewHour(1)
	ts := mustDate(2024, time.January, 1)
	fwd, err := h.RollForward(ts)
	assert.NoError(t, err)
	assert.Equal(t, ts, fwd)

	back, err := h.RollBack(ts)
	assert.NoError(t, err)
	assert.Equal(t, ts, back)
}

func TestTickEqualAcrossKinds(t *testing.T) {
	assert.True(t, NewHour(1).Equal(NewMinute(60)))
	assert.False(t, NewHour(1).Equal(NewMinute(59)))
}

func TestTickFreqStr(t *testing.T) {
	assert.Equal(t, "D", NewDay(1).FreqStr())
	assert.Equal(t, "3H", NewHour(3).FreqStr())
}

func TestAddTicksCollapsesToCoarsestKind(t *testing.T) {
	sum := AddTicks(NewMinute(30), NewMinute(30))
	assert.Equal(t, "H", sum.FreqStr())
	assert.Equal(t, time.Hour, sum.Delta())
}

func TestAddTicksFallsBackToNano(t *testing.T) {
	sum := AddTicks(NewNano(1), NewMicro(1))
	assert.Equal(t, 1001*time.Nanosecond, sum.Delta())
}
