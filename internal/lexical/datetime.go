package lexical

import (
	"fmt"
	"strings"
	"time"

	"github.com/jacoelho/xsdspace/internal/value"
)

// maxYearDigits keeps parsed years inside the range time.Time can carry
// without overflow in calendar arithmetic.
const maxYearDigits = 9

// ParseDateTime parses an xs:dateTime lexical value.
func ParseDateTime(lexical string) (value.Value, error) {
	trimmed := TrimXMLWhitespace(lexical)
	main, tz, err := splitAndParseTimezone(trimmed, "dateTime")
	if err != nil {
		return value.Value{}, err
	}
	datePart, timePart, ok := strings.Cut(main, "T")
	if !ok {
		return value.Value{}, fmt.Errorf("invalid dateTime: %s", trimmed)
	}
	year, month, day, err := parseDate(datePart, "dateTime")
	if err != nil {
		return value.Value{}, err
	}
	hour, minute, second, nanos, err := parseClock(timePart, "dateTime")
	if err != nil {
		return value.Value{}, err
	}
	return value.NewDateTime(year, time.Month(month), day, hour, minute, second, nanos, tz), nil
}

// ParseTime parses an xs:time lexical value.
func ParseTime(lexical string) (value.Value, error) {
	trimmed := TrimXMLWhitespace(lexical)
	if trimmed == "" {
		return value.Value{}, fmt.Errorf("invalid time: empty string")
	}
	main, tz, err := splitAndParseTimezone(trimmed, "time")
	if err != nil {
		return value.Value{}, err
	}
	hour, minute, second, nanos, err := parseClock(main, "time")
	if err != nil {
		return value.Value{}, err
	}
	return value.NewTime(hour, minute, second, nanos, tz), nil
}

// ParseDate parses an xs:date lexical value.
func ParseDate(lexical string) (value.Value, error) {
	trimmed := TrimXMLWhitespace(lexical)
	main, tz, err := splitAndParseTimezone(trimmed, "date")
	if err != nil {
		return value.Value{}, err
	}
	year, month, day, err := parseDate(main, "date")
	if err != nil {
		return value.Value{}, err
	}
	return value.NewDate(year, time.Month(month), day, tz), nil
}

// ParseGYearMonth parses an xs:gYearMonth lexical value.
func ParseGYearMonth(lexical string) (value.Value, error) {
	trimmed := TrimXMLWhitespace(lexical)
	main, tz, err := splitAndParseTimezone(trimmed, "gYearMonth")
	if err != nil {
		return value.Value{}, err
	}
	year, rest, err := parseYear(main, "gYearMonth")
	if err != nil {
		return value.Value{}, err
	}
	if len(rest) != 3 || rest[0] != '-' {
		return value.Value{}, fmt.Errorf("invalid gYearMonth: %s", trimmed)
	}
	month, ok := parseFixedDigits(rest, 1, 2)
	if !ok || month < 1 || month > 12 {
		return value.Value{}, fmt.Errorf("invalid gYearMonth: %s", trimmed)
	}
	return value.NewGYearMonth(year, time.Month(month), tz), nil
}

// ParseGYear parses an xs:gYear lexical value.
func ParseGYear(lexical string) (value.Value, error) {
	trimmed := TrimXMLWhitespace(lexical)
	main, tz, err := splitAndParseTimezone(trimmed, "gYear")
	if err != nil {
		return value.Value{}, err
	}
	year, rest, err := parseYear(main, "gYear")
	if err != nil {
		return value.Value{}, err
	}
	if rest != "" {
		return value.Value{}, fmt.Errorf("invalid gYear: %s", trimmed)
	}
	return value.NewGYear(year, tz), nil
}

// ParseGMonthDay parses an xs:gMonthDay lexical value.
func ParseGMonthDay(lexical string) (value.Value, error) {
	trimmed := TrimXMLWhitespace(lexical)
	main, tz, err := splitAndParseTimezone(trimmed, "gMonthDay")
	if err != nil {
		return value.Value{}, err
	}
	if len(main) != 7 || !strings.HasPrefix(main, "--") || main[4] != '-' {
		return value.Value{}, fmt.Errorf("invalid gMonthDay: %s", trimmed)
	}
	month, okMonth := parseFixedDigits(main, 2, 2)
	day, okDay := parseFixedDigits(main, 5, 2)
	if !okMonth || !okDay || month < 1 || month > 12 || !isValidDate(value.ReferenceYear, month, day) {
		return value.Value{}, fmt.Errorf("invalid gMonthDay: %s", trimmed)
	}
	return value.NewGMonthDay(time.Month(month), day, tz), nil
}

// ParseGMonth parses an xs:gMonth lexical value.
func ParseGMonth(lexical string) (value.Value, error) {
	trimmed := TrimXMLWhitespace(lexical)
	main, tz, err := splitAndParseTimezone(trimmed, "gMonth")
	if err != nil {
		return value.Value{}, err
	}
	if len(main) != 4 || !strings.HasPrefix(main, "--") {
		return value.Value{}, fmt.Errorf("invalid gMonth: %s", trimmed)
	}
	month, ok := parseFixedDigits(main, 2, 2)
	if !ok || month < 1 || month > 12 {
		return value.Value{}, fmt.Errorf("invalid gMonth: %s", trimmed)
	}
	return value.NewGMonth(time.Month(month), tz), nil
}

// ParseGDay parses an xs:gDay lexical value.
func ParseGDay(lexical string) (value.Value, error) {
	trimmed := TrimXMLWhitespace(lexical)
	main, tz, err := splitAndParseTimezone(trimmed, "gDay")
	if err != nil {
		return value.Value{}, err
	}
	if len(main) != 5 || !strings.HasPrefix(main, "---") {
		return value.Value{}, fmt.Errorf("invalid gDay: %s", trimmed)
	}
	day, ok := parseFixedDigits(main, 3, 2)
	if !ok || day < 1 || day > 31 {
		return value.Value{}, fmt.Errorf("invalid gDay: %s", trimmed)
	}
	return value.NewGDay(day, tz), nil
}

func splitAndParseTimezone(lexical, kind string) (string, value.Timezone, error) {
	if lexical == "" {
		return "", value.NoTimezone, fmt.Errorf("invalid %s: empty string", kind)
	}
	main, tzText := splitTimezone(lexical)
	tz, err := parseTimezone(tzText)
	if err != nil {
		return "", value.NoTimezone, err
	}
	return main, tz, nil
}

func splitTimezone(value string) (string, string) {
	if value == "" {
		return value, ""
	}
	last := value[len(value)-1]
	if last == 'Z' {
		return value[:len(value)-1], "Z"
	}
	if len(value) >= 6 {
		tz := value[len(value)-6:]
		if (tz[0] == '+' || tz[0] == '-') && tz[3] == ':' {
			return value[:len(value)-6], tz
		}
	}
	return value, ""
}

func parseTimezone(tz string) (value.Timezone, error) {
	switch tz {
	case "":
		return value.NoTimezone, nil
	case "Z":
		return value.UTC, nil
	}
	if err := validateTimezoneOffset(tz); err != nil {
		return value.NoTimezone, err
	}
	hour, _ := parseFixedDigits(tz, 1, 2)
	minute, _ := parseFixedDigits(tz, 4, 2)
	offset := hour*60 + minute
	if tz[0] == '-' {
		offset = -offset
	}
	return value.TimezoneOffset(offset), nil
}

// parseYear consumes a signed year of at least four digits from the front of
// s. Leading zeros are only allowed in four-digit years and 0000 is rejected.
func parseYear(s, kind string) (int, string, error) {
	rest := s
	negative := false
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	}
	if strings.HasPrefix(rest, "+") {
		return 0, "", fmt.Errorf("invalid %s: leading '+' is not allowed", kind)
	}
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n < 4 {
		return 0, "", fmt.Errorf("invalid %s: year must have at least 4 digits", kind)
	}
	if n > 4 && rest[0] == '0' {
		return 0, "", fmt.Errorf("invalid %s: year has leading zeros", kind)
	}
	if n > maxYearDigits {
		return 0, "", fmt.Errorf("invalid %s: year out of range", kind)
	}
	year, _ := parseFixedDigits(rest, 0, n)
	if year == 0 {
		return 0, "", fmt.Errorf("invalid %s: year 0000 is not allowed", kind)
	}
	if negative {
		year = -year
	}
	return year, rest[n:], nil
}

func parseDate(s, kind string) (int, int, int, error) {
	year, rest, err := parseYear(s, kind)
	if err != nil {
		return 0, 0, 0, err
	}
	if len(rest) != 6 || rest[0] != '-' || rest[3] != '-' {
		return 0, 0, 0, fmt.Errorf("invalid %s: %s", kind, s)
	}
	month, okMonth := parseFixedDigits(rest, 1, 2)
	day, okDay := parseFixedDigits(rest, 4, 2)
	if !okMonth || !okDay || month < 1 || month > 12 || !isValidDate(value.AstronomicalYear(year), month, day) {
		return 0, 0, 0, fmt.Errorf("invalid %s: %s", kind, s)
	}
	return year, month, day, nil
}

// parseClock parses hh:mm:ss(.f+)? and returns nanoseconds. 24:00:00 and the
// leap second 23:59:60 are returned as-is; the calendar constructors
// normalize them into the following day and minute.
func parseClock(s, kind string) (int, int, int, int, error) {
	hour, minute, second, fractionLength, ok := parseTimeParts(s)
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("invalid %s: %s", kind, s)
	}
	if fractionLength > 9 {
		return 0, 0, 0, 0, fmt.Errorf("invalid %s: fractional seconds exceed 9 digits", kind)
	}
	switch {
	case hour == 24:
		if minute != 0 || second != 0 || !is24HourZero(s) {
			return 0, 0, 0, 0, fmt.Errorf("invalid %s: %s", kind, s)
		}
	case second == 60:
		if hour != 23 || minute != 59 {
			return 0, 0, 0, 0, fmt.Errorf("invalid %s: leap second outside 23:59", kind)
		}
	case hour > 23 || minute > 59 || second > 59:
		return 0, 0, 0, 0, fmt.Errorf("invalid %s: %s", kind, s)
	}
	nanos := 0
	if fractionLength > 0 {
		frac := s[9:]
		nanos, _ = parseFixedDigits(frac+strings.Repeat("0", 9-len(frac)), 0, 9)
	}
	return hour, minute, second, nanos, nil
}

func parseTimeParts(value string) (int, int, int, int, bool) {
	if len(value) < 8 || value[2] != ':' || value[5] != ':' {
		return 0, 0, 0, 0, false
	}
	hour, ok := parseFixedDigits(value, 0, 2)
	if !ok {
		return 0, 0, 0, 0, false
	}
	minute, ok := parseFixedDigits(value, 3, 2)
	if !ok {
		return 0, 0, 0, 0, false
	}
	second, ok := parseFixedDigits(value, 6, 2)
	if !ok {
		return 0, 0, 0, 0, false
	}
	if len(value) == 8 {
		return hour, minute, second, 0, true
	}
	if value[8] != '.' || len(value) == 9 {
		return 0, 0, 0, 0, false
	}
	for i := 9; i < len(value); i++ {
		ch := value[i]
		if ch < '0' || ch > '9' {
			return 0, 0, 0, 0, false
		}
	}
	fractionLength := len(value) - 9
	return hour, minute, second, fractionLength, true
}

func parseFixedDigits(value string, start, length int) (int, bool) {
	if start < 0 || length <= 0 || start+length > len(value) {
		return 0, false
	}
	n := 0
	for i := range length {
		ch := value[start+i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

func validateTimezoneOffset(tz string) error {
	if tz == "" || tz == "Z" {
		return nil
	}
	if len(tz) != 6 {
		return fmt.Errorf("invalid timezone format: %s", tz)
	}
	if tz[0] != '+' && tz[0] != '-' {
		return fmt.Errorf("invalid timezone format: %s", tz)
	}
	if tz[3] != ':' {
		return fmt.Errorf("invalid timezone format: %s", tz)
	}
	hour, ok := parseFixedDigits(tz, 1, 2)
	if !ok {
		return fmt.Errorf("invalid timezone format: %s", tz)
	}
	minute, ok := parseFixedDigits(tz, 4, 2)
	if !ok {
		return fmt.Errorf("invalid timezone format: %s", tz)
	}
	if hour < 0 || hour > 14 || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid timezone offset: %s", tz)
	}
	if hour == 14 && minute != 0 {
		return fmt.Errorf("invalid timezone offset: %s", tz)
	}
	return nil
}

func isValidDate(year, month, day int) bool {
	if day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func is24HourZero(timePart string) bool {
	const prefix = "24:00:00"
	if !strings.HasPrefix(timePart, prefix) {
		return false
	}
	if len(timePart) == len(prefix) {
		return true
	}
	if timePart[len(prefix)] != '.' || len(timePart) == len(prefix)+1 {
		return false
	}
	for i := len(prefix) + 1; i < len(timePart); i++ {
		if timePart[i] != '0' {
			return false
		}
	}
	return true
}
