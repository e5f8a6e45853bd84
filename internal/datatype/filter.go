package datatype

import (
	"slices"

	"github.com/jacoelho/xsdspace/internal/value"
)

// Filter is a membership constraint that interval lists cannot express:
// a pattern, a length facet or the lexical rule of a derived string type.
// Name identifies the predicate; two filters with the same name must
// accept the same values.
type Filter struct {
	Keep func(value.Value) bool
	Name string
}

// NewFilter returns a named filter.
func NewFilter(name string, keep func(value.Value) bool) Filter {
	return Filter{Name: name, Keep: keep}
}

// appendFilters adds the filters of extra not already present by name.
func appendFilters(base []Filter, extra ...Filter) []Filter {
	out := slices.Clone(base)
	for _, f := range extra {
		if !hasFilter(out, f.Name) {
			out = append(out, f)
		}
	}
	return out
}

func hasFilter(filters []Filter, name string) bool {
	return slices.ContainsFunc(filters, func(f Filter) bool { return f.Name == name })
}

// coversFilters reports whether every filter of sub is also in super.
func coversFilters(super, sub []Filter) bool {
	for _, f := range sub {
		if !hasFilter(super, f.Name) {
			return false
		}
	}
	return true
}

func filterNames(filters []Filter) []string {
	names := make([]string, len(filters))
	for i, f := range filters {
		names[i] = f.Name
	}
	return names
}
