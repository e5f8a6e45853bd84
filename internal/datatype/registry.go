package datatype

import (
	"math/big"

	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/interval"
	"github.com/jacoelho/xsdspace/internal/lexical"
	"github.com/jacoelho/xsdspace/internal/num"
	"github.com/jacoelho/xsdspace/internal/value"
	"github.com/jacoelho/xsdspace/internal/valuespace"
)

type registry struct {
	byName  map[TypeName]*Datatype
	ordered []*Datatype
}

type derivation struct {
	name TypeName
	base TypeName
}

// Integer-derived built-ins, parents first.
var integerDerivations = []derivation{
	{TypeNameNonPositiveInteger, TypeNameInteger},
	{TypeNameNegativeInteger, TypeNameNonPositiveInteger},
	{TypeNameLong, TypeNameInteger},
	{TypeNameInt, TypeNameLong},
	{TypeNameShort, TypeNameInt},
	{TypeNameByte, TypeNameShort},
	{TypeNameNonNegativeInteger, TypeNameInteger},
	{TypeNameUnsignedLong, TypeNameNonNegativeInteger},
	{TypeNameUnsignedInt, TypeNameUnsignedLong},
	{TypeNameUnsignedShort, TypeNameUnsignedInt},
	{TypeNameUnsignedByte, TypeNameUnsignedShort},
	{TypeNamePositiveInteger, TypeNameNonNegativeInteger},
}

// String-derived built-ins, parents first, with the lexical rule each adds.
var stringDerivations = []struct {
	validate func(string) error
	derivation
}{
	{lexical.ValidateNormalizedString, derivation{TypeNameNormalizedString, TypeNameString}},
	{lexical.ValidateToken, derivation{TypeNameToken, TypeNameNormalizedString}},
	{lexical.ValidateLanguage, derivation{TypeNameLanguage, TypeNameToken}},
	{lexical.ValidateNMTOKEN, derivation{TypeNameNMTOKEN, TypeNameToken}},
	{lexical.ValidateName, derivation{TypeNameName, TypeNameToken}},
	{lexical.ValidateNCName, derivation{TypeNameNCName, TypeNameName}},
	{lexical.ValidateNCName, derivation{TypeNameID, TypeNameNCName}},
	{lexical.ValidateNCName, derivation{TypeNameIDREF, TypeNameNCName}},
	{lexical.ValidateNCName, derivation{TypeNameENTITY, TypeNameNCName}},
}

var defaultRegistry = newRegistry()

func newRegistry() *registry {
	r := &registry{byName: make(map[TypeName]*Datatype)}
	for _, s := range valuespace.All() {
		r.add(newPrimitive(s))
	}
	for _, d := range integerDerivations {
		base := r.byName[d.base]
		rng, ok := num.RangeOf(string(d.name))
		if !ok {
			panic("datatype: no range for " + string(d.name))
		}
		list, err := interval.New(base.space, interval.Interval{Lower: integerBound(rng.Min), Upper: integerBound(rng.Max)})
		if err != nil {
			panic("datatype: " + err.Error())
		}
		narrowed, err := base.list.Intersect(list)
		if err != nil {
			panic("datatype: " + err.Error())
		}
		r.add(derive(base, d.name, narrowed, base.filters))
	}
	for _, d := range stringDerivations {
		base := r.byName[d.base]
		validate := d.validate
		rule := NewFilter(string(d.name), func(v value.Value) bool {
			return validate(v.Text()) == nil
		})
		r.add(derive(base, d.name, base.list, appendFilters(base.filters, rule)))
	}
	return r
}

func integerBound(n *big.Int) interval.Bound {
	if n == nil {
		return interval.Unbounded()
	}
	return interval.Inclusive(value.NewInteger(n))
}

func (r *registry) add(d *Datatype) {
	r.byName[d.name] = d
	r.ordered = append(r.ordered, d)
}

// Get returns the built-in datatype by local name; nil when unknown.
func Get(name TypeName) *Datatype {
	return defaultRegistry.byName[name]
}

// MustGet returns the built-in datatype and panics when unknown.
func MustGet(name TypeName) *Datatype {
	d := Get(name)
	if d != nil {
		return d
	}
	panic("datatype: unknown type " + string(name))
}

// Lookup returns the built-in datatype named name.
func Lookup(name string) (*Datatype, error) {
	d := Get(TypeName(name))
	if d == nil {
		return nil, xsderrors.Newf(xsderrors.ErrUnknownDatatype, "unknown datatype %q", name).WithDatatype(name)
	}
	return d, nil
}

// Builtins returns the built-in datatypes: primitives in family order,
// then the derived types, parents before children.
func Builtins() []*Datatype {
	out := make([]*Datatype, len(defaultRegistry.ordered))
	copy(out, defaultRegistry.ordered)
	return out
}
