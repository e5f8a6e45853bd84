package facet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/btree"

	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/datatype"
	"github.com/jacoelho/xsdspace/internal/interval"
	"github.com/jacoelho/xsdspace/internal/pattern"
	"github.com/jacoelho/xsdspace/internal/value"
	"github.com/jacoelho/xsdspace/internal/valuespace"
)

// enumerationDegree is the B-tree degree used to order enumeration values.
const enumerationDegree = 16

// Compile restricts dt by every facet. Facets combine by conjunction,
// except that enumeration values and patterns given in one call form one
// enumeration and one pattern set, as facets of a single derivation step do.
func Compile(dt *datatype.Datatype, facets ...Facet) (*datatype.Datatype, error) {
	s := dt.Space()
	restricted := dt
	var (
		enumerated []value.Value
		hasEnum    bool
		patterns   pattern.Set
		filters    []datatype.Filter
	)

	for _, f := range facets {
		if f.Kind == KindInvalid || f.Kind >= kindCount {
			return nil, xsderrors.Newf(xsderrors.ErrInvalidFacet, "unknown facet kind %d", f.Kind).WithDatatype(dt.String())
		}
		if !applicable(f.Kind, s.Family()) {
			return nil, xsderrors.Newf(xsderrors.ErrUnsupportedFacet,
				"facet %s is not applicable to %s", f.Kind, s.Name()).WithDatatype(dt.String()).WithFacet(f.Kind.String())
		}

		switch {
		case f.Kind.IsRange():
			list, err := rangeList(s, f)
			if err != nil {
				return nil, withFacet(err, dt, f.Kind)
			}
			if restricted, err = restricted.RestrictBy(list); err != nil {
				return nil, fmt.Errorf("%s facet: %w", f.Kind, err)
			}
		case f.Kind == KindEnumeration:
			if len(f.Values) == 0 {
				return nil, xsderrors.New(xsderrors.ErrInvalidFacet, "enumeration facet has no values").
					WithDatatype(dt.String()).WithFacet(f.Kind.String())
			}
			for _, v := range f.Values {
				coerced, err := coerce(s, v)
				if err != nil {
					return nil, withFacet(err, dt, f.Kind)
				}
				enumerated = append(enumerated, coerced)
			}
			hasEnum = true
		case f.Kind == KindPattern:
			p, err := pattern.Compile(f.Pattern)
			if err != nil {
				return nil, xsderrors.New(xsderrors.ErrInvalidFacet, err.Error()).
					WithDatatype(dt.String()).WithFacet(f.Kind.String()).WithActual(f.Pattern)
			}
			patterns = append(patterns, p)
		case f.Kind == KindTotalDigits && s.Family() == value.FamilyInteger:
			list, err := integerDigitsList(s, f.Length)
			if err != nil {
				return nil, withFacet(err, dt, f.Kind)
			}
			if restricted, err = restricted.RestrictBy(list); err != nil {
				return nil, fmt.Errorf("%s facet: %w", f.Kind, err)
			}
		case f.Kind == KindFractionDigits && s.Family() == value.FamilyInteger:
			// integers have no fraction digits
		default:
			filter, err := countFilter(s.Family(), f)
			if err != nil {
				return nil, withFacet(err, dt, f.Kind)
			}
			filters = append(filters, filter)
		}
	}

	if hasEnum {
		list, err := enumerationList(s, enumerated)
		if err != nil {
			return nil, withFacet(err, dt, KindEnumeration)
		}
		if restricted, err = restricted.RestrictBy(list); err != nil {
			return nil, fmt.Errorf("%s facet: %w", KindEnumeration, err)
		}
	}
	if len(patterns) > 0 {
		filters = append(filters, datatype.NewFilter("pattern "+patterns.String(), func(v value.Value) bool {
			return patterns.Match(v.String())
		}))
	}
	if len(filters) > 0 {
		restricted = restricted.Filtered(filters...)
	}
	return restricted, nil
}

// withFacet records the facet and datatype on a datatype error.
func withFacet(err error, dt *datatype.Datatype, k Kind) error {
	var de *xsderrors.Datatype
	if errors.As(err, &de) {
		out := de.WithFacet(k.String())
		if out.Datatype == "" {
			out = out.WithDatatype(dt.String())
		}
		return out
	}
	return fmt.Errorf("%s facet: %w", k, err)
}

// coerce converts v into a member of s, promoting integers into the
// decimal space.
func coerce(s valuespace.Space, v value.Value) (value.Value, error) {
	if v.Family() != s.Family() {
		if promoted, ok := v.Promote(s.Family()); ok {
			v = promoted
		}
	}
	if err := valuespace.Check(s, v); err != nil {
		return value.Value{}, err
	}
	return v, nil
}

func rangeList(s valuespace.Space, f Facet) (*interval.List, error) {
	if len(f.Values) != 1 {
		return nil, xsderrors.Newf(xsderrors.ErrInvalidFacet, "%s facet needs exactly one value, got %d", f.Kind, len(f.Values))
	}
	v, err := coerce(s, f.Values[0])
	if err != nil {
		return nil, err
	}
	switch f.Kind {
	case KindMinInclusive:
		return interval.AtLeast(s, v, true)
	case KindMinExclusive:
		return interval.AtLeast(s, v, false)
	case KindMaxInclusive:
		return interval.AtMost(s, v, true)
	default:
		return interval.AtMost(s, v, false)
	}
}

// enumerationList orders and deduplicates vs in the order of s.
func enumerationList(s valuespace.Space, vs []value.Value) (*interval.List, error) {
	tree := btree.NewG[value.Value](enumerationDegree, func(a, b value.Value) bool {
		return s.Compare(a, b) < 0
	})
	for _, v := range vs {
		tree.ReplaceOrInsert(v)
	}
	ordered := make([]value.Value, 0, tree.Len())
	tree.Ascend(func(v value.Value) bool {
		ordered = append(ordered, v)
		return true
	})
	return interval.Points(s, ordered...)
}

// String renders the facet as name=value, e.g. "maxExclusive=---10".
func (f Facet) String() string {
	switch {
	case f.Kind == KindPattern:
		return f.Kind.String() + "='" + f.Pattern + "'"
	case f.Kind.takesLength():
		return f.Kind.String() + "=" + strconv.FormatUint(f.Length, 10)
	case f.Kind == KindEnumeration:
		parts := make([]string, len(f.Values))
		for i, v := range f.Values {
			parts[i] = v.String()
		}
		return f.Kind.String() + "={" + strings.Join(parts, ", ") + "}"
	case len(f.Values) == 1:
		return f.Kind.String() + "=" + f.Values[0].String()
	default:
		return f.Kind.String()
	}
}
