package num

import (
	"math"
	"testing"
)

func TestParseFloat32(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		class   FloatClass
		wantErr bool
		errKind ParseErrKind
	}{
		{name: "inf", input: "INF", class: FloatPosInf},
		{name: "neg inf", input: "-INF", class: FloatNegInf},
		{name: "nan", input: "NaN", class: FloatNaN},
		{name: "finite", input: "1.25", class: FloatFinite},
		{name: "plus inf invalid", input: "+INF", wantErr: true, errKind: ParseBadChar},
		{name: "bad char", input: "1e", wantErr: true, errKind: ParseBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			val, class, err := ParseFloat32([]byte(tc.input))
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
			if class != tc.class {
				t.Fatalf("class = %v, want %v", class, tc.class)
			}
			switch class {
			case FloatNaN:
				if !math.IsNaN(float64(val)) {
					t.Fatalf("expected NaN")
				}
			case FloatPosInf:
				if !math.IsInf(float64(val), 1) {
					t.Fatalf("expected +Inf")
				}
			case FloatNegInf:
				if !math.IsInf(float64(val), -1) {
					t.Fatalf("expected -Inf")
				}
			}
		})
	}
}

func TestParseFloat64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		class   FloatClass
		wantErr bool
		errKind ParseErrKind
	}{
		{name: "inf", input: "INF", class: FloatPosInf},
		{name: "neg inf", input: "-INF", class: FloatNegInf},
		{name: "nan", input: "NaN", class: FloatNaN},
		{name: "finite", input: "1.25", class: FloatFinite},
		{name: "plus inf invalid", input: "+INF", wantErr: true, errKind: ParseBadChar},
		{name: "bad char", input: "1e", wantErr: true, errKind: ParseBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			val, class, err := ParseFloat64([]byte(tc.input))
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
			if class != tc.class {
				t.Fatalf("class = %v, want %v", class, tc.class)
			}
			switch class {
			case FloatNaN:
				if !math.IsNaN(val) {
					t.Fatalf("expected NaN")
				}
			case FloatPosInf:
				if !math.IsInf(val, 1) {
					t.Fatalf("expected +Inf")
				}
			case FloatNegInf:
				if !math.IsInf(val, -1) {
					t.Fatalf("expected -Inf")
				}
			}
		})
	}
}

func TestParseFloatOverflow(t *testing.T) {
	val, class, err := ParseFloat32([]byte("1e39"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if class != FloatPosInf || !math.IsInf(float64(val), 1) {
		t.Fatalf("1e39 as float = %v (%v), want +Inf", val, class)
	}
	if _, _, err := ParseFloat64([]byte(".")); err == nil {
		t.Fatalf("expected error for lone dot")
	}
}
