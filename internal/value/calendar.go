package value

import (
	"fmt"
	"time"
)

// Reference year and month used to carry calendar fragments as full dates.
// 2000 is a leap year, so --02-29 is representable.
const (
	ReferenceYear  = 2000
	ReferenceMonth = time.January
)

// Timezone is an optional timezone offset in minutes.
type Timezone struct {
	offset int16
	set    bool
}

// NoTimezone is the absent timezone.
var NoTimezone = Timezone{}

// UTC is the Z timezone.
var UTC = Timezone{set: true}

// TimezoneOffset returns a timezone with the given offset in minutes east of UTC.
func TimezoneOffset(minutes int) Timezone {
	return Timezone{offset: int16(minutes), set: true}
}

// IsSet reports whether a timezone was given.
func (tz Timezone) IsSet() bool {
	return tz.set
}

// Minutes returns the offset in minutes east of UTC.
func (tz Timezone) Minutes() int {
	return int(tz.offset)
}

// Location returns a fixed location for the offset; UTC when absent.
func (tz Timezone) Location() *time.Location {
	if !tz.set || tz.offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", int(tz.offset)*60)
}

// String renders the timezone suffix: "", "Z" or "+hh:mm".
func (tz Timezone) String() string {
	if !tz.set {
		return ""
	}
	if tz.offset == 0 {
		return "Z"
	}
	offset := int(tz.offset)
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/60, offset%60)
}

// AstronomicalYear maps an XML Schema 1.0 year (no year zero) onto the
// proleptic Gregorian year numbering used by time.Time.
func AstronomicalYear(year int) int {
	if year < 0 {
		return year + 1
	}
	return year
}

// SchemaYear is the inverse of AstronomicalYear.
func SchemaYear(year int) int {
	if year <= 0 {
		return year - 1
	}
	return year
}

// NewDateTime returns a dateTime value. Local fields are interpreted in tz
// (UTC when absent) and stored as a UTC instant.
func NewDateTime(year int, month time.Month, day, hour, minute, second, nanos int, tz Timezone) Value {
	local := time.Date(AstronomicalYear(year), month, day, hour, minute, second, nanos, tz.Location())
	return Value{family: FamilyDateTime, when: local.UTC(), tz: tz}
}

// NewTime returns a time value. The UTC clock reading is kept on the
// reference date, so 24:00:00 and timezone shifts wrap around midnight.
func NewTime(hour, minute, second, nanos int, tz Timezone) Value {
	u := time.Date(ReferenceYear, ReferenceMonth, 1, hour, minute, second, nanos, tz.Location()).UTC()
	when := time.Date(ReferenceYear, ReferenceMonth, 1, u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC)
	return Value{family: FamilyTime, when: when, tz: tz}
}

// NewDate returns a date value.
func NewDate(year int, month time.Month, day int, tz Timezone) Value {
	return calendarValue(FamilyDate, AstronomicalYear(year), month, day, tz)
}

// NewGYearMonth returns a gYearMonth value.
func NewGYearMonth(year int, month time.Month, tz Timezone) Value {
	return calendarValue(FamilyGYearMonth, AstronomicalYear(year), month, 1, tz)
}

// NewGYear returns a gYear value.
func NewGYear(year int, tz Timezone) Value {
	return calendarValue(FamilyGYear, AstronomicalYear(year), time.January, 1, tz)
}

// NewGMonthDay returns a gMonthDay value on the reference year.
func NewGMonthDay(month time.Month, day int, tz Timezone) Value {
	return calendarValue(FamilyGMonthDay, ReferenceYear, month, day, tz)
}

// NewGMonth returns a gMonth value on the reference year.
func NewGMonth(month time.Month, tz Timezone) Value {
	return calendarValue(FamilyGMonth, ReferenceYear, month, 1, tz)
}

// NewGDay returns a gDay value on the reference month.
func NewGDay(day int, tz Timezone) Value {
	return calendarValue(FamilyGDay, ReferenceYear, ReferenceMonth, day, tz)
}

// Discrete calendar families keep their local fields at midnight UTC;
// the timezone is carried for rendering only.
func calendarValue(f Family, year int, month time.Month, day int, tz Timezone) Value {
	return Value{family: f, when: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), tz: tz}
}

// Time returns the calendar payload in UTC.
func (v Value) Time() time.Time {
	return v.when
}

// Timezone returns the timezone the value was written with.
func (v Value) Timezone() Timezone {
	return v.tz
}

// WithTime returns a copy of a calendar value carrying t (converted to UTC).
// Family and timezone are preserved.
func (v Value) WithTime(t time.Time) Value {
	out := v
	out.when = t.UTC()
	return out
}

func formatYear(year int) string {
	year = SchemaYear(year)
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	return fmt.Sprintf("%04d", year)
}

func formatFraction(nanos int) string {
	if nanos == 0 {
		return ""
	}
	frac := fmt.Sprintf("%09d", nanos)
	i := len(frac)
	for i > 0 && frac[i-1] == '0' {
		i--
	}
	return "." + frac[:i]
}

func (v Value) calendarString() string {
	t := v.when
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	fraction := formatFraction(t.Nanosecond())
	tz := v.tz.String()
	if v.tz.IsSet() && (v.family == FamilyDateTime || v.family == FamilyTime) {
		// canonical form of a timezoned instant is its UTC rendering
		tz = "Z"
	}

	switch v.family {
	case FamilyDateTime:
		return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%02d%s%s", formatYear(year), int(month), day, hour, minute, second, fraction, tz)
	case FamilyTime:
		return fmt.Sprintf("%02d:%02d:%02d%s%s", hour, minute, second, fraction, tz)
	case FamilyDate:
		return fmt.Sprintf("%s-%02d-%02d%s", formatYear(year), int(month), day, tz)
	case FamilyGYearMonth:
		return fmt.Sprintf("%s-%02d%s", formatYear(year), int(month), tz)
	case FamilyGYear:
		return fmt.Sprintf("%s%s", formatYear(year), tz)
	case FamilyGMonthDay:
		return fmt.Sprintf("--%02d-%02d%s", int(month), day, tz)
	case FamilyGMonth:
		return fmt.Sprintf("--%02d%s", int(month), tz)
	case FamilyGDay:
		return fmt.Sprintf("---%02d%s", day, tz)
	default:
		return t.Format(time.RFC3339Nano)
	}
}
