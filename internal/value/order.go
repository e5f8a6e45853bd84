package value

import (
	"cmp"
	"strings"
)

// Payload comparisons used by the value spaces. Callers must pass values of
// the family the comparison is written for; no copies are made.

// CompareBoolean orders false before true.
func CompareBoolean(a, b Value) int {
	switch {
	case a.flag == b.flag:
		return 0
	case !a.flag:
		return -1
	default:
		return 1
	}
}

// CompareInteger orders integer payloads numerically.
func CompareInteger(a, b Value) int {
	return a.num.Cmp(b.num)
}

// CompareDecimal orders decimal payloads numerically.
func CompareDecimal(a, b Value) int {
	return a.rat.Cmp(b.rat)
}

// CompareFloat orders float or double payloads numerically. NaN must be
// excluded by the caller.
func CompareFloat(a, b Value) int {
	return cmp.Compare(a.float, b.float)
}

// CompareText orders string payloads by code point (byte order of UTF-8).
func CompareText(a, b Value) int {
	return strings.Compare(a.text, b.text)
}

// CompareTime orders calendar payloads chronologically.
func CompareTime(a, b Value) int {
	return a.when.Compare(b.when)
}

// CompareDuration orders durations by mean length, then by months.
// The order is total and agrees with the XML Schema partial order wherever
// the latter is determinate.
func CompareDuration(a, b Value) int {
	if c := a.MeanSeconds().Cmp(b.MeanSeconds()); c != 0 {
		return c
	}
	return cmp.Compare(a.months, b.months)
}
