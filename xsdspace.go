// Package xsdspace decides emptiness, cardinality and membership of XML
// Schema atomic datatypes restricted by constraining facets.
//
// Datatypes are immutable. Restrict derives new ones from the built-ins,
// and Reasoner evaluates batches of lexical queries concurrently.
package xsdspace

import (
	"fmt"
	"strconv"

	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/datatype"
	"github.com/jacoelho/xsdspace/internal/facet"
	"github.com/jacoelho/xsdspace/internal/interval"
	"github.com/jacoelho/xsdspace/internal/lexical"
	"github.com/jacoelho/xsdspace/internal/value"
	"github.com/jacoelho/xsdspace/internal/valuespace"
)

type (
	// Value is a typed member of a value space.
	Value = value.Value
	// Datatype is an atomic datatype: a restriction of one value space.
	Datatype = datatype.Datatype
	// Facet is one constraining facet.
	Facet = facet.Facet
	// Count is a finite cardinality or infinity.
	Count = valuespace.Count
)

// MinInclusive returns a minInclusive facet.
func MinInclusive(v Value) Facet { return facet.MinInclusive(v) }

// MinExclusive returns a minExclusive facet.
func MinExclusive(v Value) Facet { return facet.MinExclusive(v) }

// MaxInclusive returns a maxInclusive facet.
func MaxInclusive(v Value) Facet { return facet.MaxInclusive(v) }

// MaxExclusive returns a maxExclusive facet.
func MaxExclusive(v Value) Facet { return facet.MaxExclusive(v) }

// Enumeration returns an enumeration facet.
func Enumeration(vs ...Value) Facet { return facet.Enumeration(vs...) }

// Pattern returns a pattern facet in the XML Schema regular expression dialect.
func Pattern(xsd string) Facet { return facet.Pattern(xsd) }

// Length returns a length facet.
func Length(n uint64) Facet { return facet.Length(n) }

// MinLength returns a minLength facet.
func MinLength(n uint64) Facet { return facet.MinLength(n) }

// MaxLength returns a maxLength facet.
func MaxLength(n uint64) Facet { return facet.MaxLength(n) }

// TotalDigits returns a totalDigits facet.
func TotalDigits(n uint64) Facet { return facet.TotalDigits(n) }

// FractionDigits returns a fractionDigits facet.
func FractionDigits(n uint64) Facet { return facet.FractionDigits(n) }

// Lookup returns the built-in datatype with the given local name.
func Lookup(name string) (*Datatype, error) {
	return datatype.Lookup(name)
}

// Builtins returns every built-in datatype.
func Builtins() []*Datatype {
	return datatype.Builtins()
}

// Restrict derives a datatype from the built-in name by the facets.
func Restrict(name string, facets ...Facet) (*Datatype, error) {
	base, err := datatype.Lookup(name)
	if err != nil {
		return nil, err
	}
	d, err := facet.Compile(base, facets...)
	if err != nil {
		return nil, fmt.Errorf("restrict %s: %w", name, err)
	}
	return d, nil
}

// ParseLiteral parses text as a literal of the named built-in datatype.
// Literals outside the datatype (a lexically valid 300 for byte) fail
// with InvalidLiteral too.
func ParseLiteral(text, datatypeName string) (Value, error) {
	d, err := datatype.Lookup(datatypeName)
	if err != nil {
		return Value{}, err
	}
	return parseFor(d, text)
}

// parseLexical parses text in d's value space, applying the whiteSpace
// facet of built-in string types first.
func parseLexical(d *Datatype, text string) (Value, error) {
	family := d.Space().Family()
	if family == value.FamilyString && d.IsBuiltin() {
		text = lexical.NormalizeWhitespace(lexical.WhitespaceFor(string(d.Name())), text)
	}
	return lexical.Parse(family, text)
}

func parseFor(d *Datatype, text string) (Value, error) {
	v, err := parseLexical(d, text)
	if err != nil {
		return Value{}, err
	}
	if !d.Contains(v) {
		return Value{}, xsderrors.Newf(xsderrors.ErrInvalidLiteral, "value not in the value space of %s", d).
			WithDatatype(d.String()).WithActual(text)
	}
	return v, nil
}

// Successor returns the value n steps after the literal in the named
// datatype (before it when n is negative). Both ends must be members.
func Successor(datatypeName, literal string, n int64) (Value, error) {
	d, err := datatype.Lookup(datatypeName)
	if err != nil {
		return Value{}, err
	}
	v, err := parseFor(d, literal)
	if err != nil {
		return Value{}, err
	}
	next, err := d.Space().Succ(v, n)
	if err != nil {
		return Value{}, fmt.Errorf("successor of %s: %w", literal, err)
	}
	if !d.Contains(next) {
		return Value{}, xsderrors.Newf(xsderrors.ErrOutOfDomain, "successor %d of %s leaves %s", n, literal, d).
			WithDatatype(d.String()).WithActual(next.String())
	}
	return next, nil
}

// CountBetween returns the number of members of the named datatype in the
// closed range [from, to].
func CountBetween(datatypeName, from, to string) (Count, error) {
	d, err := datatype.Lookup(datatypeName)
	if err != nil {
		return Count{}, err
	}
	family := d.Space().Family()
	lo, err := lexical.Parse(family, from)
	if err != nil {
		return Count{}, err
	}
	hi, err := lexical.Parse(family, to)
	if err != nil {
		return Count{}, err
	}
	bounds, err := interval.Between(d.Space(), lo, true, hi, true)
	if err != nil {
		return Count{}, fmt.Errorf("count %s: %w", datatypeName, err)
	}
	within, err := d.RestrictBy(bounds)
	if err != nil {
		return Count{}, fmt.Errorf("count %s: %w", datatypeName, err)
	}
	return within.Cardinality(), nil
}

// FacetSpec is a facet in lexical form. Value holds the single value of a
// range facet, the pattern, or the count of a length or digits facet;
// Values holds enumeration members (Value is accepted for one member).
type FacetSpec struct {
	Kind   string   `yaml:"kind" json:"kind"`
	Value  string   `yaml:"value,omitempty" json:"value,omitempty"`
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`
}

// ParseFacet converts a lexical facet into a facet over d's value space.
func ParseFacet(d *Datatype, spec FacetSpec) (Facet, error) {
	kind, ok := facet.KindByName(spec.Kind)
	if !ok {
		return Facet{}, xsderrors.Newf(xsderrors.ErrInvalidFacet, "unknown facet %q", spec.Kind).WithDatatype(d.String())
	}
	family := d.Space().Family()
	switch kind {
	case facet.KindPattern:
		return facet.Pattern(spec.Value), nil
	case facet.KindLength, facet.KindMinLength, facet.KindMaxLength, facet.KindTotalDigits, facet.KindFractionDigits:
		n, err := strconv.ParseUint(spec.Value, 10, 64)
		if err != nil {
			return Facet{}, xsderrors.Newf(xsderrors.ErrInvalidFacet, "%s needs a non-negative integer", kind).
				WithDatatype(d.String()).WithFacet(kind.String()).WithActual(spec.Value)
		}
		return Facet{Kind: kind, Length: n}, nil
	case facet.KindEnumeration:
		texts := spec.Values
		if len(texts) == 0 && spec.Value != "" {
			texts = []string{spec.Value}
		}
		vs := make([]Value, 0, len(texts))
		for _, text := range texts {
			v, err := lexical.Parse(family, text)
			if err != nil {
				return Facet{}, fmt.Errorf("%s facet: %w", kind, err)
			}
			vs = append(vs, v)
		}
		return facet.Enumeration(vs...), nil
	default:
		v, err := lexical.Parse(family, spec.Value)
		if err != nil {
			return Facet{}, fmt.Errorf("%s facet: %w", kind, err)
		}
		return Facet{Kind: kind, Values: []Value{v}}, nil
	}
}
