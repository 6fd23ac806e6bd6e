package aoffsets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearEndApplyBeforeAnchorMonth(t *testing.T) {
	y, err := NewYearEnd(1, 12)
	assert.NoError(t, err)

	got, err := y.Apply(mustDate(2023, time.March, 15))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2023, time.December, 31), got)
}

func TestYearEndApplyWithinAnchorMonth(t *testing.T) {
	y, err := NewYearEnd(1, 12)
	assert.NoError(t, err)

	got, err := y.Apply(mustDate(2023, time.December, 15))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2023, time.December, 31), got)
}

func TestYearEndApplyOnAnchor(t *testing.T) {
	y, err := NewYearEnd(1, 12)
	assert.NoError(t, err)

	got, err := y.Apply(mustDate(2023, time.December, 31))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.December, 31), got)
}

func TestYearEndApplyNegative(t *testing.T) {
	y, err := NewYearEnd(-1, 6)
	assert.NoError(t, err)

	got, err := y.Apply(mustDate(2023, time.March, 15))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2022, time.June, 30), got)
}

func TestYearBeginApply(t *testing.T) {
	y, err := NewYearBegin(1, 1)
	assert.NoError(t, err)

	got, err := y.Apply(mustDate(2023, time.June, 15))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 1), got)
}

func TestBYearEndApply(t *testing.T) {
	b, err := NewBYearEnd(1, 6)
	assert.NoError(t, err)

	got, err := b.Apply(mustDate(2023, time.January, 15))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2023, time.June, 30), got) // June 30, 2023 is a Friday
}

func TestYearEndFreqStr(t *testing.T) {
	y, err := NewYearEnd(1, 12)
	assert.NoError(t, err)
	assert.Equal(t, "A-DEC", y.FreqStr())
}
