package valuespace

import (
	"math"
	"time"

	"github.com/jacoelho/xsdspace/internal/value"
)

const secondsPerDay = 86400

// calendarUnit is the step of a discrete calendar family.
type calendarUnit uint8

const (
	unitDay calendarUnit = iota
	unitMonth
	unitYear
)

// calendarSpace covers the discrete calendar families. Values sit at
// midnight UTC; fragments live on the reference year 2000 (and month
// January for gDay), so every family steps by days, months or years through
// plain calendar arithmetic. Timezones do not take part in the order.
type calendarSpace struct {
	min, max *value.Value
	family   value.Family
	unit     calendarUnit
}

func newCalendarSpace(f value.Family, unit calendarUnit, lo, hi *value.Value) calendarSpace {
	return calendarSpace{family: f, unit: unit, min: lo, max: hi}
}

func (s calendarSpace) Family() value.Family { return s.family }

func (s calendarSpace) Name() string { return s.family.String() }

func (s calendarSpace) Min() (value.Value, bool) {
	if s.min == nil {
		return value.Value{}, false
	}
	return *s.min, true
}

func (s calendarSpace) Max() (value.Value, bool) {
	if s.max == nil {
		return value.Value{}, false
	}
	return *s.max, true
}

func (s calendarSpace) Contains(v value.Value) bool {
	if v.Family() != s.family {
		return false
	}
	o := s.ordinal(v)
	if s.min != nil && o < s.ordinal(*s.min) {
		return false
	}
	if s.max != nil && o > s.ordinal(*s.max) {
		return false
	}
	return true
}

func (calendarSpace) Compare(a, b value.Value) int { return value.CompareTime(a, b) }

func (calendarSpace) Discrete() bool { return true }

func (calendarSpace) sealed() {}

// ordinal numbers members consecutively: days since the Unix epoch, months
// since year zero, or the astronomical year.
func (s calendarSpace) ordinal(v value.Value) int64 {
	t := v.Time()
	switch s.unit {
	case unitMonth:
		return int64(t.Year())*12 + int64(t.Month()) - 1
	case unitYear:
		return int64(t.Year())
	default:
		return t.Unix() / secondsPerDay
	}
}

func (s calendarSpace) fromOrdinal(like value.Value, o int64) value.Value {
	var t time.Time
	switch s.unit {
	case unitMonth:
		year, month := o/12, o%12
		if month < 0 {
			year, month = year-1, month+12
		}
		t = time.Date(int(year), time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	case unitYear:
		t = time.Date(int(o), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		t = time.Unix(o*secondsPerDay, 0).UTC()
	}
	return like.WithTime(t)
}

// ordinalLimits bounds ordinals so that time.Time arithmetic cannot
// overflow; the unbounded families are capped at about ±2^34 years.
func (s calendarSpace) ordinalLimits() (int64, int64) {
	const maxYear = 1 << 34
	lo, hi := int64(-maxYear), int64(maxYear)
	switch s.unit {
	case unitMonth:
		lo, hi = lo*12, hi*12
	case unitDay:
		lo, hi = lo*366, hi*366
	}
	if s.min != nil {
		lo = s.ordinal(*s.min)
	}
	if s.max != nil {
		hi = s.ordinal(*s.max)
	}
	return lo, hi
}

func (s calendarSpace) Succ(v value.Value, n int64) (value.Value, error) {
	if err := Check(s, v); err != nil {
		return value.Value{}, err
	}
	o := s.ordinal(v)
	lo, hi := s.ordinalLimits()
	if (n > 0 && o > hi-n) || (n < 0 && o < lo-n) || n == math.MinInt64 {
		return value.Value{}, outOfDomain(s, v, n)
	}
	return s.fromOrdinal(v, o+n), nil
}

func (s calendarSpace) Count(start, end value.Value) Count {
	return CountOf(s.ordinal(end) - s.ordinal(start) + 1)
}

func (s calendarSpace) Next(v value.Value) (value.Value, bool) {
	next, err := s.Succ(v, 1)
	return next, err == nil
}

func (s calendarSpace) Prev(v value.Value) (value.Value, bool) {
	prev, err := s.Succ(v, -1)
	return prev, err == nil
}
