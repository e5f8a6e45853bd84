// Package interval implements canonical interval lists over a value space:
// the set algebra used to decide emptiness and cardinality of datatype
// restrictions.
package interval

import (
	"iter"
	"sort"
	"strings"

	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/value"
	"github.com/jacoelho/xsdspace/internal/valuespace"
)

// List is an immutable, canonical union of disjoint intervals over one
// value space. Intervals are sorted, never overlap or touch, and use the
// canonical bounds of the space, so equal sets have equal lists.
type List struct {
	space     valuespace.Space
	intervals []Interval
}

func build(s valuespace.Space, raw []Interval) *List {
	return &List{space: s, intervals: normalize(s, raw)}
}

// Full returns the whole value space.
func Full(s valuespace.Space) *List {
	return build(s, []Interval{{Lower: Unbounded(), Upper: Unbounded()}})
}

// Empty returns the empty list over s.
func Empty(s valuespace.Space) *List {
	return &List{space: s}
}

// New builds a list from arbitrary intervals over s. Bound values must be
// members of s.
func New(s valuespace.Space, intervals ...Interval) (*List, error) {
	for _, iv := range intervals {
		for _, b := range []Bound{iv.Lower, iv.Upper} {
			if v, ok := b.Value(); ok {
				if err := valuespace.Check(s, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return build(s, intervals), nil
}

// Point returns the single-value list {v}.
func Point(s valuespace.Space, v value.Value) (*List, error) {
	return New(s, Closed(v, v))
}

// Points returns the list holding exactly the given values.
func Points(s valuespace.Space, vs ...value.Value) (*List, error) {
	raw := make([]Interval, len(vs))
	for i, v := range vs {
		raw[i] = Closed(v, v)
	}
	return New(s, raw...)
}

// AtLeast returns the values above v, including v when inclusive.
func AtLeast(s valuespace.Space, v value.Value, inclusive bool) (*List, error) {
	return New(s, Interval{Lower: bound(v, inclusive), Upper: Unbounded()})
}

// AtMost returns the values below v, including v when inclusive.
func AtMost(s valuespace.Space, v value.Value, inclusive bool) (*List, error) {
	return New(s, Interval{Lower: Unbounded(), Upper: bound(v, inclusive)})
}

// Between returns the values between lo and hi.
func Between(s valuespace.Space, lo value.Value, loInclusive bool, hi value.Value, hiInclusive bool) (*List, error) {
	return New(s, Interval{Lower: bound(lo, loInclusive), Upper: bound(hi, hiInclusive)})
}

func bound(v value.Value, inclusive bool) Bound {
	if inclusive {
		return Inclusive(v)
	}
	return Exclusive(v)
}

// Space returns the value space of the list.
func (l *List) Space() valuespace.Space {
	return l.space
}

// Intervals returns a copy of the canonical intervals.
func (l *List) Intervals() []Interval {
	out := make([]Interval, len(l.intervals))
	copy(out, l.intervals)
	return out
}

func (l *List) compatible(o *List) error {
	if l.space.Family() != o.space.Family() {
		return xsderrors.Newf(xsderrors.ErrIncompatibleValueSpace,
			"cannot combine %s and %s value spaces", l.space.Name(), o.space.Name())
	}
	return nil
}

// Union returns l ∪ o.
func (l *List) Union(o *List) (*List, error) {
	if err := l.compatible(o); err != nil {
		return nil, err
	}
	raw := make([]Interval, 0, len(l.intervals)+len(o.intervals))
	raw = append(raw, l.intervals...)
	raw = append(raw, o.intervals...)
	return build(l.space, raw), nil
}

// Intersect returns l ∩ o.
func (l *List) Intersect(o *List) (*List, error) {
	if err := l.compatible(o); err != nil {
		return nil, err
	}
	s := l.space
	var raw []Interval
	i, j := 0, 0
	for i < len(l.intervals) && j < len(o.intervals) {
		a, b := l.intervals[i], o.intervals[j]
		iv := Interval{Lower: a.Lower, Upper: a.Upper}
		if compareLower(s, b.Lower, iv.Lower) > 0 {
			iv.Lower = b.Lower
		}
		if compareUpper(s, b.Upper, iv.Upper) < 0 {
			iv.Upper = b.Upper
		}
		if !iv.isEmpty(s) {
			raw = append(raw, iv)
		}
		if compareUpper(s, a.Upper, b.Upper) < 0 {
			i++
		} else {
			j++
		}
	}
	return build(s, raw), nil
}

// Complement returns the values of the space not in l.
func (l *List) Complement() *List {
	raw := make([]Interval, 0, len(l.intervals)+1)
	lower := Unbounded()
	for _, iv := range l.intervals {
		if !iv.Lower.unbounded {
			raw = append(raw, Interval{Lower: lower, Upper: iv.Lower.flip()})
		}
		lower = iv.Upper.flip()
		if iv.Upper.unbounded {
			return build(l.space, raw)
		}
	}
	raw = append(raw, Interval{Lower: lower, Upper: Unbounded()})
	return build(l.space, raw)
}

// Difference returns l ∖ o.
func (l *List) Difference(o *List) (*List, error) {
	if err := l.compatible(o); err != nil {
		return nil, err
	}
	return l.Intersect(o.Complement())
}

// IsEmpty reports whether the list holds no value.
func (l *List) IsEmpty() bool {
	return len(l.intervals) == 0
}

// IsFull reports whether the list is the whole space.
func (l *List) IsFull() bool {
	return l.Equal(Full(l.space))
}

// Cardinality returns the number of values in the list.
func (l *List) Cardinality() valuespace.Count {
	total := valuespace.Count{}
	for _, iv := range l.intervals {
		total = total.Add(l.intervalCount(iv))
		if total.IsInfinite() {
			return total
		}
	}
	return total
}

// intervalCount counts one canonical interval. Unbounded or open ends of
// a canonical non-empty interval always enclose infinitely many values.
func (l *List) intervalCount(iv Interval) valuespace.Count {
	if !iv.Lower.IsInclusive() || !iv.Upper.IsInclusive() {
		return valuespace.Infinite
	}
	return l.space.Count(iv.Lower.v, iv.Upper.v)
}

// Contains reports whether v is in the list.
func (l *List) Contains(v value.Value) bool {
	if !l.space.Contains(v) {
		return false
	}
	i := sort.Search(len(l.intervals), func(i int) bool {
		return !l.intervals[i].above(l.space, v)
	})
	return i < len(l.intervals) && l.intervals[i].contains(l.space, v)
}

// Min returns the lower bound of the first interval; false when empty.
func (l *List) Min() (Bound, bool) {
	if len(l.intervals) == 0 {
		return Bound{}, false
	}
	return l.intervals[0].Lower, true
}

// Max returns the upper bound of the last interval; false when empty.
func (l *List) Max() (Bound, bool) {
	if len(l.intervals) == 0 {
		return Bound{}, false
	}
	return l.intervals[len(l.intervals)-1].Upper, true
}

// Equal reports whether both lists hold the same values.
func (l *List) Equal(o *List) bool {
	if l.space.Family() != o.space.Family() || len(l.intervals) != len(o.intervals) {
		return false
	}
	for i, iv := range l.intervals {
		ov := o.intervals[i]
		if !iv.Lower.equal(l.space, ov.Lower) || !iv.Upper.equal(l.space, ov.Upper) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every value of l is in o.
func (l *List) SubsetOf(o *List) (bool, error) {
	d, err := l.Difference(o)
	if err != nil {
		return false, err
	}
	return d.IsEmpty(), nil
}

// HasAtLeast reports whether the list holds n values or more.
func (l *List) HasAtLeast(n int64) bool {
	return l.Cardinality().Cmp(valuespace.CountOf(n)) >= 0
}

// Values yields the members of the list in ascending order. Enumeration
// stops at the first interval without a least member, or whose members
// past the first cannot be reached by successors.
func (l *List) Values() iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		for _, iv := range l.intervals {
			if !iv.Lower.IsInclusive() {
				return
			}
			if !l.space.Discrete() && l.intervalCount(iv).IsInfinite() {
				return
			}
			for v := iv.Lower.v; !iv.above(l.space, v); {
				if !yield(v) {
					return
				}
				next, ok := l.space.Next(v)
				if !ok {
					break
				}
				v = next
			}
		}
	}
}

// Nth returns the member at zero-based position n in ascending order.
func (l *List) Nth(n int64) (value.Value, bool) {
	if n < 0 {
		return value.Value{}, false
	}
	for _, iv := range l.intervals {
		if !iv.Lower.IsInclusive() {
			return value.Value{}, false
		}
		c := l.intervalCount(iv)
		if c.IsInfinite() && !l.space.Discrete() {
			return value.Value{}, false
		}
		if size, ok := c.Int64(); ok && n >= size {
			n -= size
			continue
		}
		return l.step(iv, n)
	}
	return value.Value{}, false
}

// step moves n members from the lower bound of iv. Discrete spaces jump
// directly; elsewhere the finite interval is walked with Next.
func (l *List) step(iv Interval, n int64) (value.Value, bool) {
	if l.space.Discrete() {
		v, err := l.space.Succ(iv.Lower.v, n)
		if err != nil || iv.above(l.space, v) {
			return value.Value{}, false
		}
		return v, true
	}
	v := iv.Lower.v
	for ; n > 0; n-- {
		next, ok := l.space.Next(v)
		if !ok {
			return value.Value{}, false
		}
		v = next
	}
	return v, !iv.above(l.space, v)
}

// String renders the list as a union of intervals, e.g. "[1, 5] ∪ {7}".
func (l *List) String() string {
	if len(l.intervals) == 0 {
		return "∅"
	}
	parts := make([]string, len(l.intervals))
	for i, iv := range l.intervals {
		parts[i] = l.formatInterval(iv)
	}
	return strings.Join(parts, " ∪ ")
}

func (l *List) formatInterval(iv Interval) string {
	if iv.isPoint(l.space) {
		return "{" + iv.Lower.v.String() + "}"
	}
	var b strings.Builder
	if iv.Lower.IsInclusive() {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if iv.Lower.unbounded {
		b.WriteString("-∞")
	} else {
		b.WriteString(iv.Lower.v.String())
	}
	b.WriteString(", ")
	if iv.Upper.unbounded {
		b.WriteString("+∞")
	} else {
		b.WriteString(iv.Upper.v.String())
	}
	if iv.Upper.IsInclusive() {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
