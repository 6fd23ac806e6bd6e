package acalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildFromConfigWeekmaskAndHolidays(t *testing.T) {
	cfg := CalendarFileConfig{
		Weekmask: []bool{true, true, true, true, true, true, false}, // Sat workday
		Holidays: []string{"2024-01-08"},
	}
	c, err := buildFromConfig(cfg)
	assert.NoError(t, err)

	sat := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	assert.True(t, c.IsBusinessDay(sat))

	holiday := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	assert.True(t, c.IsHoliday(holiday))
}

func TestBuildFromConfigNamedBase(t *testing.T) {
	cfg := CalendarFileConfig{Name: "us"}
	c, err := buildFromConfig(cfg)
	assert.NoError(t, err)
	assert.True(t, c.IsHoliday(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBuildFromConfigRejectsBadHolidayDate(t *testing.T) {
	cfg := CalendarFileConfig{Holidays: []string{"not-a-date"}}
	_, err := buildFromConfig(cfg)
	assert.Error(t, err)
}

func TestBuildFromConfigRejectsUnknownName(t *testing.T) {
	cfg := CalendarFileConfig{Name: "nonexistent-calendar-xyz"}
	_, err := buildFromConfig(cfg)
	assert.Error(t, err)
}

func TestCalendarFileConfigValidation(t *testing.T) {
	valid := CalendarFileConfig{
		Name:     "us2024",
		Weekmask: []bool{true, true, true, true, true, false, false},
		Holidays: []string{"2024-01-01", "2024-12-25"},
	}
	assert.NoError(t, configValidate.Struct(valid))

	invalidName := CalendarFileConfig{Name: "not valid!"}
	assert.Error(t, configValidate.Struct(invalidName))

	invalidWeekmaskLen := CalendarFileConfig{Weekmask: []bool{true, false}}
	assert.Error(t, configValidate.Struct(invalidWeekmaskLen))

	invalidHolidayFormat := CalendarFileConfig{Holidays: []string{"01/01/2024"}}
	assert.Error(t, configValidate.Struct(invalidHolidayFormat))
}
