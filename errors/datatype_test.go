package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDatatypeErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		e    *Datatype
	}{
		{
			name: "message only",
			e:    New(ErrOutOfDomain, "successor beyond maximum"),
			want: "[xsd-out-of-domain] successor beyond maximum",
		},
		{
			name: "with datatype",
			e:    New(ErrOutOfDomain, "successor beyond maximum").WithDatatype("gDay"),
			want: "[xsd-out-of-domain] successor beyond maximum (datatype: gDay)",
		},
		{
			name: "with all",
			e: Newf(ErrUnsupportedFacet, "facet %s not applicable", "minInclusive").
				WithDatatype("string").WithFacet("minInclusive").WithActual("a"),
			want: "[cos-applicable-facets] facet minInclusive not applicable (datatype: string) (facet: minInclusive) (actual: a)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDatatypeErrorIs(t *testing.T) {
	err := fmt.Errorf("restrict integer: %w", New(ErrIncompatibleValueSpace, "date list"))
	if !errors.Is(err, IncompatibleValueSpace) {
		t.Fatalf("expected errors.Is to match IncompatibleValueSpace")
	}
	if errors.Is(err, OutOfDomain) {
		t.Fatalf("expected errors.Is not to match OutOfDomain")
	}
}

func TestCodeOf(t *testing.T) {
	if _, ok := CodeOf(nil); ok {
		t.Fatalf("CodeOf(nil) reported a code")
	}
	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Fatalf("CodeOf(plain) reported a code")
	}
	code, ok := CodeOf(fmt.Errorf("wrap: %w", New(ErrNotDiscrete, "decimal")))
	if !ok || code != ErrNotDiscrete {
		t.Fatalf("CodeOf = %q, %v; want %q, true", code, ok, ErrNotDiscrete)
	}
}

func TestWithDoesNotMutateSentinel(t *testing.T) {
	_ = OutOfDomain.WithDatatype("gDay")
	if OutOfDomain.Datatype != "" {
		t.Fatalf("sentinel mutated: %q", OutOfDomain.Datatype)
	}
}
