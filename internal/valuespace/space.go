// Package valuespace implements the ordered value space of every XML Schema
// primitive family: order, bounds, successor arithmetic and counting.
package valuespace

import (
	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/value"
)

// Space is the ordered value space of one family.
// Implementations are stateless and shared; the set is closed.
type Space interface {
	// Family returns the family whose values the space holds.
	Family() value.Family
	// Name returns the primitive type name of the space.
	Name() string
	// Min returns the least value; false when the space is unbounded below.
	Min() (value.Value, bool)
	// Max returns the greatest value; false when the space is unbounded above.
	Max() (value.Value, bool)
	// Contains reports whether v is a member of the space.
	Contains(v value.Value) bool
	// Compare orders two members: -1, 0 or +1.
	Compare(a, b value.Value) int
	// Succ moves n steps along the order; negative n moves backwards.
	// It fails with OutOfDomain when the result leaves a bounded space and
	// with NotDiscrete in dense spaces.
	Succ(v value.Value, n int64) (value.Value, error)
	// Count returns the number of members in [start, end].
	Count(start, end value.Value) Count
	// Discrete reports whether every member has an immediate successor.
	Discrete() bool
	// Next returns the immediate successor of v when one exists.
	Next(v value.Value) (value.Value, bool)
	// Prev returns the immediate predecessor of v when one exists.
	Prev(v value.Value) (value.Value, bool)

	sealed()
}

var spaces = [...]Space{
	boolSpace{},
	integerSpace{},
	decimalSpace{},
	floatSpace{family: value.FamilyFloat},
	floatSpace{family: value.FamilyDouble},
	textSpace{family: value.FamilyString},
	textSpace{family: value.FamilyAnyURI},
	textSpace{family: value.FamilyHexBinary},
	textSpace{family: value.FamilyBase64Binary},
	durationSpace{},
	instantSpace{family: value.FamilyDateTime},
	instantSpace{family: value.FamilyTime},
	newCalendarSpace(value.FamilyDate, unitDay, nil, nil),
	newCalendarSpace(value.FamilyGYearMonth, unitMonth, nil, nil),
	newCalendarSpace(value.FamilyGYear, unitYear, nil, nil),
	newCalendarSpace(value.FamilyGMonthDay, unitDay,
		ptr(value.NewGMonthDay(1, 1, value.NoTimezone)), ptr(value.NewGMonthDay(12, 31, value.NoTimezone))),
	newCalendarSpace(value.FamilyGDay, unitDay,
		ptr(value.NewGDay(1, value.NoTimezone)), ptr(value.NewGDay(31, value.NoTimezone))),
	newCalendarSpace(value.FamilyGMonth, unitMonth,
		ptr(value.NewGMonth(1, value.NoTimezone)), ptr(value.NewGMonth(12, value.NoTimezone))),
}

var byFamily = func() map[value.Family]Space {
	m := make(map[value.Family]Space, len(spaces))
	for _, s := range spaces {
		m[s.Family()] = s
	}
	return m
}()

// For returns the value space of family f.
func For(f value.Family) (Space, bool) {
	s, ok := byFamily[f]
	return s, ok
}

// MustFor is For for families known to exist; it panics otherwise.
func MustFor(f value.Family) Space {
	s, ok := For(f)
	if !ok {
		panic("valuespace: no space for family " + f.String())
	}
	return s
}

// All returns every value space in family order.
func All() []Space {
	out := make([]Space, len(spaces))
	copy(out, spaces[:])
	return out
}

// Check reports why v cannot be used with s, or nil when v is a member.
func Check(s Space, v value.Value) error {
	if v.Family() != s.Family() {
		return xsderrors.Newf(xsderrors.ErrIncompatibleValueSpace,
			"%s value used in the %s value space", v.Family(), s.Name()).WithDatatype(s.Name())
	}
	if !s.Contains(v) {
		return xsderrors.New(xsderrors.ErrOutOfDomain, "value outside the value space").
			WithDatatype(s.Name()).WithActual(v.String())
	}
	return nil
}

func notDiscrete(s Space) error {
	return xsderrors.New(xsderrors.ErrNotDiscrete, "value space has no successor function").WithDatatype(s.Name())
}

func outOfDomain(s Space, v value.Value, n int64) error {
	return xsderrors.Newf(xsderrors.ErrOutOfDomain, "successor %d leaves the value space", n).
		WithDatatype(s.Name()).WithActual(v.String())
}

func ptr[T any](v T) *T {
	return &v
}

// dense carries the members shared by spaces without successors.
type dense struct{}

func (dense) Discrete() bool { return false }

func (dense) Next(value.Value) (value.Value, bool) { return value.Value{}, false }

func (dense) Prev(value.Value) (value.Value, bool) { return value.Value{}, false }

func (dense) sealed() {}

// denseCount is the count of [start, end] in a dense space.
func denseCount(c int) Count {
	switch {
	case c > 0:
		return Count{}
	case c == 0:
		return CountOf(1)
	default:
		return Infinite
	}
}
