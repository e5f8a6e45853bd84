package valuespace

import "github.com/jacoelho/xsdspace/internal/value"

// instantSpace orders dateTime and time values as UTC instants.
type instantSpace struct {
	dense
	family value.Family
}

func (s instantSpace) Family() value.Family { return s.family }

func (s instantSpace) Name() string { return s.family.String() }

func (instantSpace) Min() (value.Value, bool) { return value.Value{}, false }

func (instantSpace) Max() (value.Value, bool) { return value.Value{}, false }

func (s instantSpace) Contains(v value.Value) bool { return v.Family() == s.family }

func (instantSpace) Compare(a, b value.Value) int { return value.CompareTime(a, b) }

func (s instantSpace) Succ(value.Value, int64) (value.Value, error) {
	return value.Value{}, notDiscrete(s)
}

func (s instantSpace) Count(start, end value.Value) Count {
	return denseCount(s.Compare(start, end))
}

// durationSpace orders durations by mean length, then by months.
type durationSpace struct {
	dense
}

func (durationSpace) Family() value.Family { return value.FamilyDuration }

func (durationSpace) Name() string { return "duration" }

func (durationSpace) Min() (value.Value, bool) { return value.Value{}, false }

func (durationSpace) Max() (value.Value, bool) { return value.Value{}, false }

func (durationSpace) Contains(v value.Value) bool { return v.Family() == value.FamilyDuration }

func (durationSpace) Compare(a, b value.Value) int { return value.CompareDuration(a, b) }

func (s durationSpace) Succ(value.Value, int64) (value.Value, error) {
	return value.Value{}, notDiscrete(s)
}

func (s durationSpace) Count(start, end value.Value) Count {
	return denseCount(s.Compare(start, end))
}
