package valuespace

import "github.com/jacoelho/xsdspace/internal/value"

type boolSpace struct{}

func (boolSpace) Family() value.Family { return value.FamilyBoolean }

func (boolSpace) Name() string { return "boolean" }

func (boolSpace) Min() (value.Value, bool) { return value.NewBoolean(false), true }

func (boolSpace) Max() (value.Value, bool) { return value.NewBoolean(true), true }

func (boolSpace) Contains(v value.Value) bool { return v.Family() == value.FamilyBoolean }

func (boolSpace) Compare(a, b value.Value) int { return value.CompareBoolean(a, b) }

func (boolSpace) Discrete() bool { return true }

func (boolSpace) sealed() {}

func boolOrdinal(v value.Value) int64 {
	if v.Bool() {
		return 1
	}
	return 0
}

func (s boolSpace) Succ(v value.Value, n int64) (value.Value, error) {
	if err := Check(s, v); err != nil {
		return value.Value{}, err
	}
	o := boolOrdinal(v)
	if (n > 0 && n > 1-o) || (n < 0 && n < -o) {
		return value.Value{}, outOfDomain(s, v, n)
	}
	return value.NewBoolean(o+n == 1), nil
}

func (boolSpace) Count(start, end value.Value) Count {
	return CountOf(boolOrdinal(end) - boolOrdinal(start) + 1)
}

func (boolSpace) Next(v value.Value) (value.Value, bool) {
	if v.Bool() {
		return value.Value{}, false
	}
	return value.NewBoolean(true), true
}

func (boolSpace) Prev(v value.Value) (value.Value, bool) {
	if !v.Bool() {
		return value.Value{}, false
	}
	return value.NewBoolean(false), true
}
