package aoffsets

import (
	"strconv"
	"strings"

	"github.com/jpfluger/dateoffsets/acalendar"
)

// parseRuleCode splits a frequency string like "3BQ-FEB" or
// "REQ-N-JAN-TUE-2" into its leading step count (default 1), prefix, and
// suffix argument list. Every "@" separator is normalized to "-"
// before splitting, per the grammar in the algebra this registry
// implements.
func parseRuleCode(code string) (n int, prefix string, args []string, err error) {
	normalized := strings.ReplaceAll(code, "@", "-")

	i := 0
	if i < len(normalized) && (normalized[i] == '+' || normalized[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(normalized) && normalized[i] >= '0' && normalized[i] <= '9' {
		i++
	}
	n = 1
	if i > digitsStart {
		numPart := normalized[:i]
		parsed, convErr := strconv.Atoi(numPart)
		if convErr != nil {
			return 0, "", nil, newBadSuffixError(code, convErr)
		}
		n = parsed
	}

	remainder := normalized[i:]
	parts := strings.Split(remainder, "-")
	if len(parts) == 0 || parts[0] == "" {
		return 0, "", nil, newBadSuffixError(code, nil)
	}
	return n, parts[0], parts[1:], nil
}

func parseMonthName(code, name string) (int, error) {
	for m := 1; m <= 12; m++ {
		if monthName(m) == name {
			return m, nil
		}
	}
	return 0, newBadSuffixError(code, newValidationError("month", name, "unrecognized month abbreviation"))
}

func parseVariation(code, letter string) (FY5253Variation, error) {
	switch letter {
	case "L":
		return VariationLast, nil
	case "N":
		return VariationNearest, nil
	default:
		return "", newBadSuffixError(code, newValidationError("variation", letter, `must be "L" or "N"`))
	}
}

// parseWeekOfMonthSuffix parses the "<week+1><WEEKDAY>" suffix of a
// WeekOfMonth/LastWeekOfMonth rule code, e.g. "2TUE".
func parseWeekOfMonthSuffix(code, s string) (week int, weekday Weekday, err error) {
	if len(s) < 4 {
		return 0, 0, newBadSuffixError(code, nil)
	}
	weekDigits, wdStr := s[:len(s)-3], s[len(s)-3:]
	weekNum, convErr := strconv.Atoi(weekDigits)
	if convErr != nil {
		return 0, 0, newBadSuffixError(code, convErr)
	}
	weekday, err = WeekdayFromName(wdStr)
	if err != nil {
		return 0, 0, newBadSuffixError(code, err)
	}
	return weekNum - 1, weekday, nil
}

// MakeOffset reconstructs an offset from a frequency string such as "B",
// "3BQ-FEB", "WOM-2TUE", or "REQ-N-JAN-TUE-2". Unknown prefixes fail with
// ErrUnknownPrefix; malformed suffixes fail with ErrBadSuffix.
func MakeOffset(code string) (Offset, error) {
	n, prefix, args, err := parseRuleCode(code)
	if err != nil {
		return nil, err
	}

	switch prefix {
	case "B":
		return NewBusinessDay(n), nil
	case "C":
		if len(args) != 1 {
			return nil, newBadSuffixError(code, nil)
		}
		cal, err := acalendar.GetCalendar(args[0])
		if err != nil {
			return nil, newBadSuffixError(code, err)
		}
		return NewCustomBusinessDay(n, cal), nil
	case "D":
		return NewDay(n), nil
	case "H":
		return NewHour(n), nil
	case "T":
		return NewMinute(n), nil
	case "S":
		return NewSecond(n), nil
	case "L":
		return NewMilli(n), nil
	case "U":
		return NewMicro(n), nil
	case "N":
		return NewNano(n), nil
	case "M":
		return NewMonthEnd(n), nil
	case "MS":
		return NewMonthBegin(n), nil
	case "BM":
		return NewBusinessMonthEnd(n), nil
	case "BMS":
		return NewBusinessMonthBegin(n), nil
	case "Q":
		return makeQuarterEnd(code, n, args)
	case "QS":
		return makeQuarterBegin(code, n, args)
	case "BQ":
		return makeBQuarterEnd(code, n, args)
	case "BQS":
		return makeBQuarterBegin(code, n, args)
	case "A":
		return makeYearEnd(code, n, args)
	case "AS":
		return makeYearBegin(code, n, args)
	case "BA":
		return makeBYearEnd(code, n, args)
	case "BAS":
		return makeBYearBegin(code, n, args)
	case "W":
		return makeWeek(code, n, args)
	case "WOM":
		return makeWeekOfMonth(code, n, args)
	case "LWOM":
		return makeLastWeekOfMonth(code, n, args)
	case "RE":
		return makeFY5253(code, n, args)
	case "REQ":
		return makeFY5253Quarter(code, n, args)
	default:
		err := newUnknownPrefixError(code)
		logger().Warn().Str("ruleCode", code).Err(err).Msg("unrecognized rule-code prefix")
		return nil, err
	}
}

const defaultQuarterEndMonth = 3
const defaultQuarterBeginMonth = 1
const defaultYearEndMonth = 12
const defaultYearBeginMonth = 1

func quarterMonthArg(code string, args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	return parseMonthName(code, args[0])
}

func makeQuarterEnd(code string, n int, args []string) (Offset, error) {
	m, err := quarterMonthArg(code, args, defaultQuarterEndMonth)
	if err != nil {
		return nil, err
	}
	return NewQuarterEnd(n, m)
}

func makeQuarterBegin(code string, n int, args []string) (Offset, error) {
	m, err := quarterMonthArg(code, args, defaultQuarterBeginMonth)
	if err != nil {
		return nil, err
	}
	return NewQuarterBegin(n, m)
}

func makeBQuarterEnd(code string, n int, args []string) (Offset, error) {
	m, err := quarterMonthArg(code, args, defaultQuarterEndMonth)
	if err != nil {
		return nil, err
	}
	return NewBQuarterEnd(n, m)
}

func makeBQuarterBegin(code string, n int, args []string) (Offset, error) {
	m, err := quarterMonthArg(code, args, defaultQuarterBeginMonth)
	if err != nil {
		return nil, err
	}
	return NewBQuarterBegin(n, m)
}

func makeYearEnd(code string, n int, args []string) (Offset, error) {
	m, err := quarterMonthArg(code, args, defaultYearEndMonth)
	if err != nil {
		return nil, err
	}
	return NewYearEnd(n, m)
}

func makeYearBegin(code string, n int, args []string) (Offset, error) {
	m, err := quarterMonthArg(code, args, defaultYearBeginMonth)
	if err != nil {
		return nil, err
	}
	return NewYearBegin(n, m)
}

func makeBYearEnd(code string, n int, args []string) (Offset, error) {
	m, err := quarterMonthArg(code, args, defaultYearEndMonth)
	if err != nil {
		return nil, err
	}
	return NewBYearEnd(n, m)
}

func makeBYearBegin(code string, n int, args []string) (Offset, error) {
	m, err := quarterMonthArg(code, args, defaultYearBeginMonth)
	if err != nil {
		return nil, err
	}
	return NewBYearBegin(n, m)
}

func makeWeek(code string, n int, args []string) (Offset, error) {
	if len(args) == 0 {
		return NewWeek(n, nil)
	}
	wd, err := WeekdayFromName(args[0])
	if err != nil {
		return nil, newBadSuffixError(code, err)
	}
	return NewWeek(n, &wd)
}

func makeWeekOfMonth(code string, n int, args []string) (Offset, error) {
	if len(args) != 1 {
		return nil, newBadSuffixError(code, nil)
	}
	week, wd, err := parseWeekOfMonthSuffix(code, args[0])
	if err != nil {
		return nil, err
	}
	return NewWeekOfMonth(n, week, wd)
}

func makeLastWeekOfMonth(code string, n int, args []string) (Offset, error) {
	if len(args) != 1 {
		return nil, newBadSuffixError(code, nil)
	}
	wd, err := WeekdayFromName(args[0])
	if err != nil {
		return nil, newBadSuffixError(code, err)
	}
	return NewLastWeekOfMonth(n, wd)
}

func makeFY5253(code string, n int, args []string) (Offset, error) {
	if len(args) != 3 {
		return nil, newBadSuffixError(code, nil)
	}
	variation, err := parseVariation(code, args[0])
	if err != nil {
		return nil, err
	}
	month, err := parseMonthName(code, args[1])
	if err != nil {
		return nil, err
	}
	wd, err := WeekdayFromName(args[2])
	if err != nil {
		return nil, newBadSuffixError(code, err)
	}
	return NewFY5253(n, month, wd, variation)
}

func makeFY5253Quarter(code string, n int, args []string) (Offset, error) {
	if len(args) != 4 {
		return nil, newBadSuffixError(code, nil)
	}
	variation, err := parseVariation(code, args[0])
	if err != nil {
		return nil, err
	}
	month, err := parseMonthName(code, args[1])
	if err != nil {
		return nil, err
	}
	wd, err := WeekdayFromName(args[2])
	if err != nil {
		return nil, newBadSuffixError(code, err)
	}
	qtr, convErr := strconv.Atoi(args[3])
	if convErr != nil {
		return nil, newBadSuffixError(code, convErr)
	}
	inner, err := NewFY5253(1, month, wd, variation)
	if err != nil {
		return nil, err
	}
	return NewFY5253Quarter(n, inner, qtr)
}
