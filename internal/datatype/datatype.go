// Package datatype implements atomic datatypes as restrictions of a value
// space: the built-in hierarchy plus derivation, Boolean combination and
// counting over it.
package datatype

import (
	"fmt"
	"iter"
	"strings"

	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/interval"
	"github.com/jacoelho/xsdspace/internal/value"
	"github.com/jacoelho/xsdspace/internal/valuespace"
	"github.com/jacoelho/xsdspace/internal/xiter"
)

// ResolveLimit is the largest finite list whose members are enumerated to
// apply filters exactly.
const ResolveLimit = 1 << 16

// Datatype is an immutable atomic datatype: an interval list over one value
// space, optionally narrowed by filters.
//
// Filters over a finite list of at most ResolveLimit members are applied
// when the datatype is built, leaving an exact point list. Otherwise they
// are kept, membership stays exact, and Cardinality reports the size of
// the list as an upper bound (see Exact).
type Datatype struct {
	space     valuespace.Space
	base      *Datatype
	primitive *Datatype
	list      *interval.List
	name      TypeName
	filters   []Filter
}

func newPrimitive(s valuespace.Space) *Datatype {
	return &Datatype{name: TypeName(s.Name()), space: s, list: interval.Full(s)}
}

func derive(base *Datatype, name TypeName, list *interval.List, filters []Filter) *Datatype {
	d := &Datatype{
		name:      name,
		space:     base.space,
		base:      base,
		primitive: base.Primitive(),
		list:      list,
		filters:   filters,
	}
	d.resolve()
	return d
}

func (d *Datatype) resolve() {
	if len(d.filters) == 0 {
		return
	}
	size, ok := d.list.Cardinality().Int64()
	if !ok || size > ResolveLimit {
		return
	}
	members := xiter.Collect(xiter.Filter(d.list.Values(), d.keep))
	list, err := interval.Points(d.space, members...)
	if err != nil {
		return
	}
	d.list = list
	d.filters = nil
}

// Name returns the built-in name; restrictions are anonymous.
func (d *Datatype) Name() TypeName {
	return d.name
}

// IsBuiltin reports whether d is a registered built-in datatype.
func (d *Datatype) IsBuiltin() bool {
	return d.name != ""
}

// Space returns the value space d restricts.
func (d *Datatype) Space() valuespace.Space {
	return d.space
}

// Base returns the datatype d was derived from; nil for primitives.
func (d *Datatype) Base() *Datatype {
	return d.base
}

// Primitive returns the unrestricted datatype of d's value space.
// Primitives return themselves.
func (d *Datatype) Primitive() *Datatype {
	if d.primitive == nil {
		return d
	}
	return d.primitive
}

// List returns the interval list of d. With filters present it is a
// superset of d's members.
func (d *Datatype) List() *interval.List {
	return d.list
}

// Filters returns the names of the filters still applied on top of the list.
func (d *Datatype) Filters() []string {
	return filterNames(d.filters)
}

// Exact reports whether the list is exactly the member set, which makes
// Cardinality and IsSatisfiable exact.
func (d *Datatype) Exact() bool {
	return len(d.filters) == 0
}

func (d *Datatype) keep(v value.Value) bool {
	for _, f := range d.filters {
		if !f.Keep(v) {
			return false
		}
	}
	return true
}

func (d *Datatype) label() string {
	if d.name != "" {
		return string(d.name)
	}
	return "restriction of " + d.Primitive().label()
}

func (d *Datatype) incompatible(family value.Family) error {
	return xsderrors.Newf(xsderrors.ErrIncompatibleValueSpace,
		"cannot combine %s value space with %s", d.space.Name(), family).WithDatatype(d.label())
}

// RestrictBy returns the datatype whose list is d's list intersected with l.
func (d *Datatype) RestrictBy(l *interval.List) (*Datatype, error) {
	if l.Space().Family() != d.space.Family() {
		return nil, d.incompatible(l.Space().Family())
	}
	narrowed, err := d.list.Intersect(l)
	if err != nil {
		return nil, fmt.Errorf("restrict %s: %w", d.label(), err)
	}
	return derive(d, "", narrowed, d.filters), nil
}

// Filtered returns d narrowed by additional filters. Filters already
// present by name are not repeated.
func (d *Datatype) Filtered(filters ...Filter) *Datatype {
	return derive(d, "", d.list, appendFilters(d.filters, filters...))
}

// IsSatisfiable reports whether d has a member. Filters left over a list
// are checked against the first ResolveLimit candidates; when none of them
// passes, the answer is undecided and the set is assumed non-empty. This
// covers infinite lists and finite lists larger than ResolveLimit alike
// (see Satisfiability).
func (d *Datatype) IsSatisfiable() bool {
	sat, _ := d.Satisfiability()
	return sat
}

// Satisfiability reports whether d has a member and whether that answer
// was decided. Undecided answers are true.
func (d *Datatype) Satisfiability() (sat, decided bool) {
	if d.list.IsEmpty() {
		return false, true
	}
	if d.Exact() {
		return true, true
	}
	scanned := int64(0)
	for v := range xiter.Take(d.list.Values(), ResolveLimit) {
		if d.keep(v) {
			return true, true
		}
		scanned++
	}
	if size, ok := d.list.Cardinality().Int64(); ok && scanned >= size {
		return false, true
	}
	return true, false
}

// Cardinality returns the number of members of d; an upper bound when
// Exact is false.
func (d *Datatype) Cardinality() valuespace.Count {
	return d.list.Cardinality()
}

// Contains reports whether v is a member of d.
func (d *Datatype) Contains(v value.Value) bool {
	return d.list.Contains(v) && d.keep(v)
}

// Intersect returns the datatype of the values in both d and o.
func (d *Datatype) Intersect(o *Datatype) (*Datatype, error) {
	if o.space.Family() != d.space.Family() {
		return nil, d.incompatible(o.space.Family())
	}
	narrowed, err := d.list.Intersect(o.list)
	if err != nil {
		return nil, fmt.Errorf("intersect %s: %w", d.label(), err)
	}
	return derive(d, "", narrowed, appendFilters(d.filters, o.filters...)), nil
}

// Union returns the datatype of the values in d or o. Filters of either
// side become one disjunctive filter over the joined lists.
func (d *Datatype) Union(o *Datatype) (*Datatype, error) {
	if o.space.Family() != d.space.Family() {
		return nil, d.incompatible(o.space.Family())
	}
	joined, err := d.list.Union(o.list)
	if err != nil {
		return nil, fmt.Errorf("union %s: %w", d.label(), err)
	}
	if d.Exact() && o.Exact() {
		return derive(d, "", joined, nil), nil
	}
	either := NewFilter(unionName(d, o), func(v value.Value) bool {
		return d.Contains(v) || o.Contains(v)
	})
	return derive(d, "", joined, []Filter{either}), nil
}

func unionName(a, b *Datatype) string {
	side := func(d *Datatype) string {
		if d.Exact() {
			return d.list.String()
		}
		return d.list.String() + " where " + strings.Join(d.Filters(), " and ")
	}
	return "(" + side(a) + ") or (" + side(b) + ")"
}

// Complement returns the values of d's value space not in d. Filters left
// over an infinite list have no complement as an interval list and fail
// with UnsupportedFacet.
func (d *Datatype) Complement() (*Datatype, error) {
	if !d.Exact() {
		return nil, xsderrors.Newf(xsderrors.ErrUnsupportedFacet,
			"cannot complement %s constrained by %s", d.label(), strings.Join(d.Filters(), ", ")).WithDatatype(d.label())
	}
	return derive(d.Primitive(), "", d.list.Complement(), nil), nil
}

// Equivalent reports whether d and o have the same members. Datatypes with
// differing filters, or with filters over differing lists, cannot be
// compared and fail with UnsupportedFacet.
func (d *Datatype) Equivalent(o *Datatype) (bool, error) {
	if o.space.Family() != d.space.Family() {
		return false, d.incompatible(o.space.Family())
	}
	if !coversFilters(d.filters, o.filters) || !coversFilters(o.filters, d.filters) {
		return false, xsderrors.Newf(xsderrors.ErrUnsupportedFacet,
			"cannot compare %s and %s under different filters", d.label(), o.label()).WithDatatype(d.label())
	}
	if d.list.Equal(o.list) {
		return true, nil
	}
	if !d.Exact() {
		return false, xsderrors.Newf(xsderrors.ErrUnsupportedFacet,
			"cannot compare %s and %s constrained by %s", d.label(), o.label(), strings.Join(d.Filters(), ", ")).WithDatatype(d.label())
	}
	return false, nil
}

// SubsumedBy reports whether every member of d is a member of o.
func (d *Datatype) SubsumedBy(o *Datatype) (bool, error) {
	if o.space.Family() != d.space.Family() {
		return false, d.incompatible(o.space.Family())
	}
	if d.list.IsEmpty() {
		return true, nil
	}
	if !coversFilters(d.filters, o.filters) {
		return false, xsderrors.Newf(xsderrors.ErrUnsupportedFacet,
			"cannot decide subsumption by %s constrained by %s", o.label(), strings.Join(o.Filters(), ", ")).WithDatatype(d.label())
	}
	within, err := d.list.SubsetOf(o.list)
	if err != nil {
		return false, fmt.Errorf("subsume %s: %w", d.label(), err)
	}
	if !within && !d.Exact() {
		return false, xsderrors.Newf(xsderrors.ErrUnsupportedFacet,
			"cannot decide subsumption of %s constrained by %s", d.label(), strings.Join(d.Filters(), ", ")).WithDatatype(d.label())
	}
	return within, nil
}

// Values yields the members of d in ascending order. See interval.List.Values
// for where enumeration of infinite lists stops. With filters left over the
// list only the first ResolveLimit candidates are tested, so the sequence
// may miss members past them.
func (d *Datatype) Values() iter.Seq[value.Value] {
	if d.Exact() {
		return d.list.Values()
	}
	return xiter.Filter(xiter.Take(d.list.Values(), ResolveLimit), d.keep)
}

// Nth returns the member at zero-based position n. With filters left over
// the list it reports false when the member is not among the values
// yielded by Values.
func (d *Datatype) Nth(n int64) (value.Value, bool) {
	if d.Exact() {
		return d.list.Nth(n)
	}
	if n < 0 {
		return value.Value{}, false
	}
	for v := range d.Values() {
		if n == 0 {
			return v, true
		}
		n--
	}
	return value.Value{}, false
}

// HasAtLeast reports whether d has n members or more. Without an exact
// list it scans up to ResolveLimit candidates and otherwise falls back to
// the list size.
func (d *Datatype) HasAtLeast(n int64) bool {
	if n <= 0 {
		return true
	}
	if d.Exact() {
		return d.list.HasAtLeast(n)
	}
	found := int64(0)
	for range xiter.Filter(xiter.Take(d.list.Values(), ResolveLimit), d.keep) {
		found++
		if found >= n {
			return true
		}
	}
	return d.list.HasAtLeast(n)
}

// String renders the datatype name or its list and filters.
func (d *Datatype) String() string {
	if d.name != "" {
		return string(d.name)
	}
	var b strings.Builder
	b.WriteString(d.Primitive().label())
	b.WriteByte(' ')
	b.WriteString(d.list.String())
	if !d.Exact() {
		b.WriteString(" where ")
		b.WriteString(strings.Join(d.Filters(), " and "))
	}
	return b.String()
}
