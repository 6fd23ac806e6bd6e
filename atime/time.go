package atime

import (
	"time"

	"github.com/teambition/rrule-go"
)

// TimeWeekdayToRRuleWeekday converts a single time.Weekday to its corresponding rrule.Weekday.
func TimeWeekdayToRRuleWeekday(d time.Weekday) rrule.Weekday {
	switch d {
	case time.Sunday:
		return rrule.SU
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.MO // fallback to Monday... otherwise `panic("invalid time.Weekday value")`
	}
}
