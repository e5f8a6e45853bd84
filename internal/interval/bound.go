package interval

import (
	"github.com/jacoelho/xsdspace/internal/value"
	"github.com/jacoelho/xsdspace/internal/valuespace"
)

// Bound is one end of an interval: a value with an inclusive flag, or
// unbounded.
type Bound struct {
	v         value.Value
	unbounded bool
	inclusive bool
}

// Unbounded returns the open-ended bound.
func Unbounded() Bound {
	return Bound{unbounded: true}
}

// Inclusive returns a closed bound at v.
func Inclusive(v value.Value) Bound {
	return Bound{v: v, inclusive: true}
}

// Exclusive returns an open bound at v.
func Exclusive(v value.Value) Bound {
	return Bound{v: v}
}

// IsUnbounded reports whether b is open-ended.
func (b Bound) IsUnbounded() bool {
	return b.unbounded
}

// IsInclusive reports whether the bound value belongs to the interval.
func (b Bound) IsInclusive() bool {
	return !b.unbounded && b.inclusive
}

// Value returns the bound value; false when unbounded.
func (b Bound) Value() (value.Value, bool) {
	if b.unbounded {
		return value.Value{}, false
	}
	return b.v, true
}

// flip turns the upper end of one interval into the lower end of the
// adjacent gap, and vice versa.
func (b Bound) flip() Bound {
	if b.unbounded {
		return b
	}
	return Bound{v: b.v, inclusive: !b.inclusive}
}

func (b Bound) equal(s valuespace.Space, o Bound) bool {
	if b.unbounded || o.unbounded {
		return b.unbounded == o.unbounded
	}
	return b.inclusive == o.inclusive && s.Compare(b.v, o.v) == 0
}

// compareLower orders lower bounds: unbounded first, and at equal values an
// inclusive bound before an exclusive one.
func compareLower(s valuespace.Space, a, b Bound) int {
	switch {
	case a.unbounded && b.unbounded:
		return 0
	case a.unbounded:
		return -1
	case b.unbounded:
		return 1
	}
	if c := s.Compare(a.v, b.v); c != 0 {
		return c
	}
	return compareFlags(b.inclusive, a.inclusive)
}

// compareUpper orders upper bounds: unbounded last, and at equal values an
// exclusive bound before an inclusive one.
func compareUpper(s valuespace.Space, a, b Bound) int {
	switch {
	case a.unbounded && b.unbounded:
		return 0
	case a.unbounded:
		return 1
	case b.unbounded:
		return -1
	}
	if c := s.Compare(a.v, b.v); c != 0 {
		return c
	}
	return compareFlags(a.inclusive, b.inclusive)
}

func compareFlags(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// Interval is the set of values between two bounds.
type Interval struct {
	Lower Bound
	Upper Bound
}

// Closed returns the interval [lo, hi].
func Closed(lo, hi value.Value) Interval {
	return Interval{Lower: Inclusive(lo), Upper: Inclusive(hi)}
}

// isEmpty reports whether no value lies between the bounds. Bounds must
// already be canonical for the space.
func (iv Interval) isEmpty(s valuespace.Space) bool {
	if iv.Lower.unbounded || iv.Upper.unbounded {
		return false
	}
	c := s.Compare(iv.Lower.v, iv.Upper.v)
	if c != 0 {
		return c > 0
	}
	return !iv.Lower.inclusive || !iv.Upper.inclusive
}

// isPoint reports whether the interval holds exactly one value.
func (iv Interval) isPoint(s valuespace.Space) bool {
	return iv.Lower.IsInclusive() && iv.Upper.IsInclusive() && s.Compare(iv.Lower.v, iv.Upper.v) == 0
}

// contains reports whether v lies inside the interval.
func (iv Interval) contains(s valuespace.Space, v value.Value) bool {
	if !iv.Lower.unbounded {
		c := s.Compare(iv.Lower.v, v)
		if c > 0 || (c == 0 && !iv.Lower.inclusive) {
			return false
		}
	}
	return !iv.above(s, v)
}

// above reports whether v lies beyond the upper bound.
func (iv Interval) above(s valuespace.Space, v value.Value) bool {
	if iv.Upper.unbounded {
		return false
	}
	c := s.Compare(v, iv.Upper.v)
	return c > 0 || (c == 0 && !iv.Upper.inclusive)
}
