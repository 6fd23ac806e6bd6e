package aoffsets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeOffsetSimplePrefixes(t *testing.T) {
	cases := map[string]string{
		"B":    "B",
		"3B":   "3B",
		"-2B":  "-2B",
		"D":    "D",
		"H":    "H",
		"T":    "T",
		"S":    "S",
		"L":    "L",
		"U":    "U",
		"N":    "N",
		"M":    "M",
		"MS":   "MS",
		"BM":   "BM",
		"BMS":  "BMS",
	}
	for code, want := range cases {
		o, err := MakeOffset(code)
		assert.NoError(t, err, code)
		assert.Equal(t, want, o.FreqStr(), code)
	}
}

func TestMakeOffsetQuarterAndYear(t *testing.T) {
	o, err := MakeOffset("Q")
	assert.NoError(t, err)
	assert.Equal(t, "Q-MAR", o.FreqStr())

	o, err = MakeOffset("BQ-FEB")
	assert.NoError(t, err)
	assert.Equal(t, "BQ-FEB", o.FreqStr())

	o, err = MakeOffset("2A-DEC")
	assert.NoError(t, err)
	assert.Equal(t, "2A-DEC", o.FreqStr())

	o, err = MakeOffset("AS")
	assert.NoError(t, err)
	assert.Equal(t, "AS-JAN", o.FreqStr())
}

func TestMakeOffsetWeekForms(t *testing.T) {
	o, err := MakeOffset("W")
	assert.NoError(t, err)
	assert.Equal(t, "W", o.FreqStr())

	o, err = MakeOffset("W-FRI")
	assert.NoError(t, err)
	assert.Equal(t, "W-FRI", o.FreqStr())

	o, err = MakeOffset("WOM-2TUE")
	assert.NoError(t, err)
	assert.Equal(t, "WOM-2TUE", o.FreqStr())

	o, err = MakeOffset("LWOM-FRI")
	assert.NoError(t, err)
	assert.Equal(t, "LWOM-FRI", o.FreqStr())
}

func TestMakeOffsetFY5253Forms(t *testing.T) {
	o, err := MakeOffset("RE-L-DEC-FRI")
	assert.NoError(t, err)
	assert.Equal(t, "RE-L-DEC-FRI", o.FreqStr())

	o, err = MakeOffset("REQ-N-JAN-TUE-2")
	assert.NoError(t, err)
	assert.Equal(t, "REQ-N-JAN-TUE-2", o.FreqStr())
}

func TestMakeOffsetUnknownPrefix(t *testing.T) {
	_, err := MakeOffset("ZZZ")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPrefix))
}

func TestMakeOffsetBadSuffix(t *testing.T) {
	_, err := MakeOffset("WOM-BADSUFFIX")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadSuffix))
}

func TestParseRuleCodeLeadingSign(t *testing.T) {
	n, prefix, args, err := parseRuleCode("-3BQ-FEB")
	assert.NoError(t, err)
	assert.Equal(t, -3, n)
	assert.Equal(t, "BQ", prefix)
	assert.Equal(t, []string{"FEB"}, args)
}

func TestParseRuleCodeDefaultN(t *testing.T) {
	n, prefix, args, err := parseRuleCode("BQ-FEB")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "BQ", prefix)
	assert.Equal(t, []string{"FEB"}, args)
}

func TestParseRuleCodeAtSeparator(t *testing.T) {
	n, prefix, args, err := parseRuleCode("REQ@N@JAN@TUE@2")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "REQ", prefix)
	assert.Equal(t, []string{"N", "JAN", "TUE", "2"}, args)
}
