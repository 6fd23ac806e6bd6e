package aoffsets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthEndApply(t *testing.T) {
	m := NewMonthEnd(1)
	got, err := m.Apply(mustDate(2024, time.January, 15))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.January, 31), got)

	// Already at month end: steps to next month end.
	got, err = m.Apply(mustDate(2024, time.January, 31))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.February, 29), got) // 2024 is a leap year
}

func TestMonthEndOnOffset(t *testing.T) {
	m := NewMonthEnd(1)
	assert.True(t, m.OnOffset(mustDate(2024, time.February, 29)))
	assert.False(t, m.OnOffset(mustDate(2024, time.February, 28)))
}

func TestMonthBeginApply(t *testing.T) {
	m := NewMonthBegin(1)
	got, err := m.Apply(mustDate(2024, time.January, 15))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.February, 1), got)
}

func TestMonthEndNegative(t *testing.T) {
	m := NewMonthEnd(-1)
	got, err := m.Apply(mustDate(2024, time.March, 15))
	assert.NoError(t, err)
	assert.Equal(t, mustDate(2024, time.February, 29), got)
}
