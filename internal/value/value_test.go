package value

import (
	"math"
	"math/big"
	"testing"
	"time"
)

func TestCanonicalString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "true", v: NewBoolean(true), want: "true"},
		{name: "integer", v: NewInt64(-42), want: "-42"},
		{name: "decimal integral", v: NewDecimal(big.NewRat(12, 1)), want: "12.0"},
		{name: "decimal fraction", v: NewDecimal(big.NewRat(-1234, 100)), want: "-12.34"},
		{name: "decimal zero", v: NewDecimal(new(big.Rat)), want: "0.0"},
		{name: "decimal third", v: NewDecimal(big.NewRat(1, 3)), want: "0.33333333333333333333"},
		{name: "float", v: NewFloat(1.5), want: "1.5E0"},
		{name: "double negative zero", v: NewDouble(math.Copysign(0, -1)), want: "0.0E0"},
		{name: "double inf", v: NewDouble(math.Inf(-1)), want: "-INF"},
		{name: "hex", v: NewHexBinary([]byte{0x0f, 0xa0}), want: "0FA0"},
		{name: "base64", v: NewBase64Binary([]byte("hi")), want: "aGk="},
		{name: "gDay", v: NewGDay(5, NoTimezone), want: "---05"},
		{name: "gDay tz", v: NewGDay(5, TimezoneOffset(-300)), want: "---05-05:00"},
		{name: "gMonth", v: NewGMonth(time.March, UTC), want: "--03Z"},
		{name: "gMonthDay", v: NewGMonthDay(time.February, 29, NoTimezone), want: "--02-29"},
		{name: "gYear bce", v: NewGYear(-1, NoTimezone), want: "-0001"},
		{name: "gYearMonth", v: NewGYearMonth(1999, time.December, NoTimezone), want: "1999-12"},
		{name: "date", v: NewDate(2024, time.February, 29, NoTimezone), want: "2024-02-29"},
		{name: "dateTime utc", v: NewDateTime(2000, time.January, 1, 1, 30, 0, 0, TimezoneOffset(120)), want: "1999-12-31T23:30:00Z"},
		{name: "dateTime fraction", v: NewDateTime(2000, time.January, 1, 0, 0, 0, 500000000, NoTimezone), want: "2000-01-01T00:00:00.5"},
		{name: "time", v: NewTime(13, 20, 0, 0, NoTimezone), want: "13:20:00"},
		{name: "duration zero", v: NewDuration(0, nil), want: "PT0S"},
		{name: "duration mixed", v: NewDuration(14, big.NewRat(90061, 1)), want: "P1Y2M1DT1H1M1S"},
		{name: "duration negative", v: NewDuration(0, big.NewRat(-3, 2)), want: "-PT1.5S"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConstructorsCopyArguments(t *testing.T) {
	n := big.NewInt(7)
	v := NewInteger(n)
	n.SetInt64(8)
	if got := v.String(); got != "7" {
		t.Fatalf("integer payload aliased caller value: %s", got)
	}
	out := v.BigInt()
	out.SetInt64(9)
	if got := v.String(); got != "7" {
		t.Fatalf("BigInt() exposed payload: %s", got)
	}
}

func TestPromote(t *testing.T) {
	d, ok := NewInt64(5).Promote(FamilyDecimal)
	if !ok {
		t.Fatalf("integer did not promote to decimal")
	}
	if d.Family() != FamilyDecimal || d.String() != "5.0" {
		t.Fatalf("promoted = %s (%s)", d, d.Family())
	}
	if _, ok := NewString("a").Promote(FamilyDecimal); ok {
		t.Fatalf("string promoted to decimal")
	}
}

func TestSchemaYearRoundTrip(t *testing.T) {
	for _, year := range []int{-10, -1, 1, 2000} {
		if got := SchemaYear(AstronomicalYear(year)); got != year {
			t.Fatalf("SchemaYear(AstronomicalYear(%d)) = %d", year, got)
		}
	}
	if AstronomicalYear(-1) != 0 {
		t.Fatalf("year -1 should map to astronomical year 0")
	}
}

func TestCompareDuration(t *testing.T) {
	month := NewDuration(1, nil)
	tests := []struct {
		name  string
		other Value
		want  int
	}{
		{name: "shorter days", other: NewDuration(0, big.NewRat(27*secondsPerDay, 1)), want: 1},
		{name: "longer days", other: NewDuration(0, big.NewRat(32*secondsPerDay, 1)), want: -1},
		{name: "same", other: NewDuration(1, nil), want: 0},
		{name: "equal mean differs by months", other: NewDuration(0, big.NewRat(MeanMonthSeconds, 1)), want: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompareDuration(month, tc.other); got != tc.want {
				t.Fatalf("CompareDuration = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFamilyByName(t *testing.T) {
	for _, f := range Families() {
		got, ok := FamilyByName(f.String())
		if !ok || got != f {
			t.Fatalf("FamilyByName(%q) = %v, %v", f.String(), got, ok)
		}
	}
	if _, ok := FamilyByName("QName"); ok {
		t.Fatalf("QName has no value space family")
	}
}
