package aoffsets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDayApplyBasic(t *testing.T) {
	b := NewBusinessDay(1)

	// Friday + 1 business day -> Monday
	fri := mustDate(2024, time.January, 5)
	got, err := b.Apply(fri)
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 8), got)

	// Monday + 1 business day -> Tuesday
	mon := mustDate(2024, time.January, 8)
	got, err = b.Apply(mon)
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 9), got)
}

func TestBusinessDayApplyNegative(t *testing.T) {
	b := NewBusinessDay(-1)

	// Monday - 1 business day -> Friday
	mon := mustDate(2024, time.January, 8)
	got, err := b.Apply(mon)
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 5), got)
}

func TestBusinessDayApplyMultiWeek(t *testing.T) {
	b := NewBusinessDay(10)
	mon := mustDate(2024, time.January, 1) // Monday
	got, err := b.Apply(mon)
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 15), got)
}

func TestBusinessDayOnOffset(t *testing.T) {
	b := NewBusinessDay(1)
	assert.True(t, b.OnOffset(mustDate(2024, time.January, 5)))  // Friday
	assert.False(t, b.OnOffset(mustDate(2024, time.January, 6))) // Saturday
}

func TestBusinessDayFromWeekend(t *testing.T) {
	b := NewBusinessDay(1)
	sat := mustDate(2024, time.January, 6)
	got, err := b.Apply(sat)
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 8), got)

	bNeg := NewBusinessDay(-1)
	got, err = bNeg.Apply(sat)
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 5), got)
}

func TestBusinessDayFreqStr(t *testing.T) {
	assert.Equal(t, "B", NewBusinessDay(1).FreqStr())
	assert.Equal(t, "3B", NewBusinessDay(3).FreqStr())
	assert.Equal(t, "-2B", NewBusinessDay(-2).FreqStr())
}

func TestBusinessDayRollForwardBack(t *testing.T) {
	b := NewBusinessDay(1)
	sat := mustDate(2024, time.January, 6)
	fwd, err := b.RollForward(sat)
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 8), fwd)

	back, err := b.RollBack(sat)
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 5), back)

	fri := mustDate(2024, time.January, 5)
	same, err := b.RollForward(fri)
	assert.NoError(t, err)
	assert.Equal(t, fri, same)
}
