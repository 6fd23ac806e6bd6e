package acalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeekmaskIsWorkday(t *testing.T) {
	assert.True(t, DefaultWeekmask.IsWorkday(time.Monday))
	assert.True(t, DefaultWeekmask.IsWorkday(time.Friday))
	assert.False(t, DefaultWeekmask.IsWorkday(time.Saturday))
	assert.False(t, DefaultWeekmask.IsWorkday(time.Sunday))
}

func TestCalendarIsBusinessDay(t *testing.T) {
	c := NewCalendar()
	fri := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	sat := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	assert.True(t, c.IsBusinessDay(fri))
	assert.False(t, c.IsBusinessDay(sat))
}

func TestCalendarHolidayOverridesWeekday(t *testing.T) {
	c := NewCalendar()
	mon := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	c.AddHoliday(mon)
	assert.True(t, c.IsHoliday(mon))
	assert.False(t, c.IsBusinessDay(mon))
}

func TestCalendarHolidayIgnoresTimeOfDay(t *testing.T) {
	c := NewCalendar()
	c.AddHoliday(time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC))
	laterInDay := time.Date(2024, time.January, 8, 23, 59, 0, 0, time.UTC)
	assert.True(t, c.IsHoliday(laterInDay))
}

func TestCalendarSortedHolidaysDedupedAndSorted(t *testing.T) {
	c := NewCalendar()
	c.AddHoliday(
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC), // same day, dup
	)
	got := c.SortedHolidays()
	assert.Equal(t, []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}, got)
}

func TestCalendarSetWeekmask(t *testing.T) {
	c := NewCalendar()
	c.SetWeekmask(Weekmask{true, true, true, true, true, true, false}) // Sat is a workday
	sat := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	assert.True(t, c.IsBusinessDay(sat))
}

func TestGetSetCalendarRegistry(t *testing.T) {
	c := NewCalendar()
	SetCalendar("test-registry-cal", c)
	got, err := GetCalendar("Test-Registry-Cal") // name normalization: trimmed, lowercase
	assert.NoError(t, err)
	assert.Same(t, c, got)
}

func TestGetCalendarUnknownName(t *testing.T) {
	_, err := GetCalendar("no-such-calendar-xyz")
	assert.Error(t, err)
}

func TestNewNamedCalendarUS(t *testing.T) {
	c, err := NewNamedCalendar("us")
	assert.NoError(t, err)
	assert.NotNil(t, c)
	newYearsDay2024 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, c.IsHoliday(newYearsDay2024))
}

func TestNewNamedCalendarUnknown(t *testing.T) {
	_, err := NewNamedCalendar("not-a-real-calendar")
	assert.Error(t, err)
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "us", CleanName("  US  "))
}
