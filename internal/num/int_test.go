package num

import (
	"math/big"
	"testing"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		errKind ParseErrKind
		wantErr bool
	}{
		{name: "zero", input: "0", want: "0"},
		{name: "neg zero", input: "-0", want: "0"},
		{name: "pos sign zero", input: "+000", want: "0"},
		{name: "positive", input: "123", want: "123"},
		{name: "negative", input: "-456", want: "-456"},
		{name: "leading zeros", input: "0007", want: "7"},
		{name: "huge", input: "123456789012345678901234567890", want: "123456789012345678901234567890"},
		{name: "empty", input: "", wantErr: true, errKind: ParseEmpty},
		{name: "sign only", input: "+", wantErr: true, errKind: ParseNoDigits},
		{name: "bad char", input: "12a", wantErr: true, errKind: ParseBadChar},
		{name: "fraction", input: "1.0", wantErr: true, errKind: ParseBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInteger([]byte(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("ParseInteger(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *big.Rat
		errKind ParseErrKind
		wantErr bool
	}{
		{name: "integer", input: "12", want: big.NewRat(12, 1)},
		{name: "fraction", input: "-1.25", want: big.NewRat(-5, 4)},
		{name: "leading dot", input: ".5", want: big.NewRat(1, 2)},
		{name: "trailing dot", input: "3.", want: big.NewRat(3, 1)},
		{name: "signed zero", input: "-0.0", want: new(big.Rat)},
		{name: "empty", input: "", wantErr: true, errKind: ParseEmpty},
		{name: "dot only", input: ".", wantErr: true, errKind: ParseNoDigits},
		{name: "two dots", input: "1.2.3", wantErr: true, errKind: ParseMultipleDots},
		{name: "exponent", input: "1e3", wantErr: true, errKind: ParseBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDecimal([]byte(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Cmp(tc.want) != 0 {
				t.Fatalf("ParseDecimal(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestRangeOf(t *testing.T) {
	r, ok := RangeOf("byte")
	if !ok {
		t.Fatalf("byte range missing")
	}
	if r.Min.Int64() != -128 || r.Max.Int64() != 127 {
		t.Fatalf("byte range = [%s, %s]", r.Min, r.Max)
	}
	r.Min.SetInt64(0)
	again, _ := RangeOf("byte")
	if again.Min.Int64() != -128 {
		t.Fatalf("RangeOf exposed shared bound")
	}
	pos, _ := RangeOf("positiveInteger")
	if pos.Max != nil || pos.Min.Int64() != 1 {
		t.Fatalf("positiveInteger range = [%v, %v]", pos.Min, pos.Max)
	}
	if _, ok := RangeOf("decimal"); ok {
		t.Fatalf("decimal is not an integer-derived type")
	}
}
