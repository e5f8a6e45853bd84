package valuespace

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/value"
)

func samples() map[value.Family][]value.Value {
	return map[value.Family][]value.Value{
		value.FamilyBoolean:    {value.NewBoolean(false)},
		value.FamilyInteger:    {value.NewInt64(-1), value.NewInt64(0), value.NewInteger(new(big.Int).Lsh(big.NewInt(1), 80))},
		value.FamilyFloat:      {value.NewFloat(-1), value.NewFloat(0), value.NewFloat(math.MaxFloat32), value.NewFloat(float32(math.Inf(-1)))},
		value.FamilyDouble:     {value.NewDouble(0), value.NewDouble(1.5), value.NewDouble(-math.SmallestNonzeroFloat64)},
		value.FamilyDate:       {value.NewDate(2024, time.February, 28, value.NoTimezone), value.NewDate(-1, time.December, 31, value.UTC)},
		value.FamilyGYearMonth: {value.NewGYearMonth(1999, time.December, value.NoTimezone), value.NewGYearMonth(-1, time.January, value.NoTimezone)},
		value.FamilyGYear:      {value.NewGYear(-1, value.NoTimezone), value.NewGYear(2000, value.NoTimezone)},
		value.FamilyGMonthDay:  {value.NewGMonthDay(time.February, 28, value.NoTimezone), value.NewGMonthDay(time.January, 31, value.NoTimezone)},
		value.FamilyGDay:       {value.NewGDay(1, value.NoTimezone), value.NewGDay(30, value.TimezoneOffset(60))},
		value.FamilyGMonth:     {value.NewGMonth(time.January, value.NoTimezone), value.NewGMonth(time.November, value.NoTimezone)},
	}
}

func TestSuccessorProperties(t *testing.T) {
	for family, values := range samples() {
		s := MustFor(family)
		if !s.Discrete() {
			t.Fatalf("%s should be discrete", family)
		}
		for _, v := range values {
			next, err := s.Succ(v, 1)
			if err != nil {
				t.Fatalf("%s: Succ(%s, 1) error = %v", family, v, err)
			}
			if s.Compare(v, next) != -1 {
				t.Fatalf("%s: Compare(%s, succ) = %d, want -1", family, v, s.Compare(v, next))
			}
			back, err := s.Succ(next, -1)
			if err != nil {
				t.Fatalf("%s: Succ(%s, -1) error = %v", family, next, err)
			}
			if s.Compare(back, v) != 0 {
				t.Fatalf("%s: succ(succ(%s, 1), -1) = %s", family, v, back)
			}
			if c, _ := s.Count(v, next).Int64(); c != 2 {
				t.Fatalf("%s: Count(%s, %s) = %d, want 2", family, v, next, c)
			}
		}
	}
}

func TestGDaySpace(t *testing.T) {
	s := MustFor(value.FamilyGDay)
	lo, ok := s.Min()
	if !ok || lo.String() != "---01" {
		t.Fatalf("Min() = %s, %v", lo, ok)
	}
	hi, ok := s.Max()
	if !ok || hi.String() != "---31" {
		t.Fatalf("Max() = %s, %v", hi, ok)
	}
	got, err := s.Succ(value.NewGDay(5, value.NoTimezone), 3)
	if err != nil || got.String() != "---08" {
		t.Fatalf("Succ(---05, 3) = %s, %v", got, err)
	}
	if c, _ := s.Count(lo, hi).Int64(); c != 31 {
		t.Fatalf("Count(---01, ---31) = %d, want 31", c)
	}
	if _, err := s.Succ(hi, 1); !errors.Is(err, xsderrors.OutOfDomain) {
		t.Fatalf("Succ(---31, 1) error = %v, want OutOfDomain", err)
	}
	if _, err := s.Succ(lo, -1); !errors.Is(err, xsderrors.OutOfDomain) {
		t.Fatalf("Succ(---01, -1) error = %v, want OutOfDomain", err)
	}
	if _, ok := s.Next(hi); ok {
		t.Fatalf("---31 has no successor")
	}
}

func TestDecimalSpace(t *testing.T) {
	s := MustFor(value.FamilyDecimal)
	five := value.NewDecimal(big.NewRat(5, 1))
	six := value.NewDecimal(big.NewRat(6, 1))
	if c, _ := s.Count(five, five).Int64(); c != 1 {
		t.Fatalf("Count(5.0, 5.0) = %d, want 1", c)
	}
	if !s.Count(five, six).IsInfinite() {
		t.Fatalf("Count(5.0, 6.0) should be infinite")
	}
	if !s.Count(six, five).IsZero() {
		t.Fatalf("Count(6.0, 5.0) should be zero")
	}
	if s.Discrete() {
		t.Fatalf("decimal is dense")
	}
	if _, err := s.Succ(five, 1); !errors.Is(err, xsderrors.NotDiscrete) {
		t.Fatalf("Succ on decimal error = %v, want NotDiscrete", err)
	}
}

func TestFloatSpace(t *testing.T) {
	s := MustFor(value.FamilyDouble)
	negZero := value.NewDouble(math.Copysign(0, -1))
	if s.Compare(negZero, value.NewDouble(0)) != 0 {
		t.Fatalf("-0 and +0 must be equal")
	}
	up, _ := s.Succ(negZero, 1)
	if up.Float64() != math.SmallestNonzeroFloat64 {
		t.Fatalf("succ(-0) = %v", up.Float64())
	}
	down, _ := s.Succ(value.NewDouble(math.SmallestNonzeroFloat64), -2)
	if down.Float64() != -math.SmallestNonzeroFloat64 {
		t.Fatalf("succ across zero = %v", down.Float64())
	}
	inf, err := s.Succ(value.NewDouble(math.MaxFloat64), 1)
	if err != nil || !math.IsInf(inf.Float64(), 1) {
		t.Fatalf("succ(MaxFloat64) = %v, %v", inf.Float64(), err)
	}
	if _, err := s.Succ(inf, 1); !errors.Is(err, xsderrors.OutOfDomain) {
		t.Fatalf("succ(+INF) error = %v, want OutOfDomain", err)
	}
	if s.Contains(value.NewDouble(math.NaN())) {
		t.Fatalf("NaN is not a member")
	}
	lo, _ := s.Min()
	hi, _ := s.Max()
	want := new(big.Int).Lsh(big.NewInt(0x7FF), 53)
	want.Add(want, big.NewInt(1))
	if got := s.Count(lo, hi).Int(); got.Cmp(want) != 0 {
		t.Fatalf("double cardinality = %s, want %s", got, want)
	}
	f := MustFor(value.FamilyFloat)
	one := value.NewFloat(1)
	next, _ := f.Succ(one, 1)
	if next.Float64() != float64(math.Nextafter32(1, 2)) {
		t.Fatalf("float succ(1) = %v", next.Float64())
	}
}

func TestCalendarArithmetic(t *testing.T) {
	md := MustFor(value.FamilyGMonthDay)
	got, err := md.Succ(value.NewGMonthDay(time.February, 28, value.NoTimezone), 1)
	if err != nil || got.String() != "--02-29" {
		t.Fatalf("succ(--02-28) = %s, %v", got, err)
	}
	got, _ = md.Succ(value.NewGMonthDay(time.January, 31, value.NoTimezone), 1)
	if got.String() != "--02-01" {
		t.Fatalf("succ(--01-31) = %s", got)
	}
	lo, _ := md.Min()
	hi, _ := md.Max()
	if c, _ := md.Count(lo, hi).Int64(); c != 366 {
		t.Fatalf("gMonthDay cardinality = %d, want 366", c)
	}

	date := MustFor(value.FamilyDate)
	from := value.NewDate(2023, time.January, 1, value.NoTimezone)
	to := value.NewDate(2024, time.December, 31, value.NoTimezone)
	if c, _ := date.Count(from, to).Int64(); c != 731 {
		t.Fatalf("date count across leap year = %d, want 731", c)
	}
	bce, _ := date.Succ(value.NewDate(1, time.January, 1, value.NoTimezone), -1)
	if bce.String() != "-0001-12-31" {
		t.Fatalf("pred(0001-01-01) = %s", bce)
	}

	ym := MustFor(value.FamilyGYearMonth)
	got, _ = ym.Succ(value.NewGYearMonth(1999, time.December, value.UTC), 1)
	if got.String() != "2000-01Z" {
		t.Fatalf("succ(1999-12Z) = %s", got)
	}
	got, _ = ym.Succ(value.NewGYearMonth(1, time.January, value.NoTimezone), -13)
	if got.String() != "-0002-12" {
		t.Fatalf("succ(0001-01, -13) = %s", got)
	}

	month := MustFor(value.FamilyGMonth)
	if _, err := month.Succ(value.NewGMonth(time.December, value.NoTimezone), 1); !errors.Is(err, xsderrors.OutOfDomain) {
		t.Fatalf("gMonth is not cyclic: %v", err)
	}
	if _, err := MustFor(value.FamilyGYear).Succ(value.NewGYear(2000, value.NoTimezone), math.MaxInt64); !errors.Is(err, xsderrors.OutOfDomain) {
		t.Fatalf("huge gYear step should leave the supported range: %v", err)
	}
}

func TestTextSpace(t *testing.T) {
	s := MustFor(value.FamilyString)
	a := value.NewString("a")
	next, ok := s.Next(a)
	if !ok || next.Text() != "a\t" {
		t.Fatalf("Next(a) = %q", next.Text())
	}
	prev, ok := s.Prev(next)
	if !ok || prev.Text() != "a" {
		t.Fatalf("Prev(a\\t) = %q", prev.Text())
	}
	if _, ok := s.Prev(a); ok {
		t.Fatalf("a has no immediate predecessor")
	}
	if c, _ := s.Count(a, value.NewString("a\t\t")).Int64(); c != 3 {
		t.Fatalf("Count(a, a\\t\\t) = %d, want 3", c)
	}
	if !s.Count(a, value.NewString("b")).IsInfinite() {
		t.Fatalf("Count(a, b) should be infinite")
	}
	if s.Discrete() {
		t.Fatalf("string space is dense")
	}
	if lo, ok := s.Min(); !ok || lo.Text() != "" {
		t.Fatalf("string Min() = %q, %v", lo.Text(), ok)
	}
	if s.Contains(value.NewString("\xff")) {
		t.Fatalf("invalid UTF-8 is not a string")
	}
	if !MustFor(value.FamilyHexBinary).Contains(value.NewHexBinary([]byte{0xff})) {
		t.Fatalf("binary values accept any byte")
	}
}

func TestDenseSpaces(t *testing.T) {
	for _, f := range []value.Family{value.FamilyDateTime, value.FamilyTime, value.FamilyDuration} {
		s := MustFor(f)
		if s.Discrete() {
			t.Fatalf("%s is dense", f)
		}
		if _, ok := s.Min(); ok {
			t.Fatalf("%s is unbounded", f)
		}
	}
	dur := MustFor(value.FamilyDuration)
	month := value.NewDuration(1, nil)
	days := value.NewDuration(0, big.NewRat(30*secondsPerDay, 1))
	if dur.Compare(days, month) != -1 {
		t.Fatalf("P30D should order before P1M")
	}
}

func TestCheck(t *testing.T) {
	s := MustFor(value.FamilyInteger)
	if err := Check(s, value.NewString("1")); !errors.Is(err, xsderrors.IncompatibleValueSpace) {
		t.Fatalf("Check(string in integer) = %v", err)
	}
	if err := Check(MustFor(value.FamilyFloat), value.NewFloat(float32(math.NaN()))); !errors.Is(err, xsderrors.OutOfDomain) {
		t.Fatalf("Check(NaN) = %v", err)
	}
	if err := Check(s, value.NewInt64(1)); err != nil {
		t.Fatalf("Check(integer) = %v", err)
	}
	if _, ok := For(value.FamilyInvalid); ok {
		t.Fatalf("invalid family has no space")
	}
	if len(All()) != len(value.Families()) {
		t.Fatalf("All() = %d spaces, want one per family", len(All()))
	}
}

func TestCount(t *testing.T) {
	three := CountOf(3)
	if got := three.Add(CountOf(4)); got.String() != "7" {
		t.Fatalf("3+4 = %s", got)
	}
	if !three.Add(Infinite).IsInfinite() {
		t.Fatalf("finite + infinite must be infinite")
	}
	if Infinite.Cmp(three) != 1 || three.Cmp(Infinite) != -1 || Infinite.Cmp(Infinite) != 0 {
		t.Fatalf("Infinite must order above finite counts")
	}
	if !CountOf(-5).IsZero() || !(Count{}).IsZero() {
		t.Fatalf("negative and zero-value counts are zero")
	}
	if _, ok := Infinite.Int64(); ok {
		t.Fatalf("Infinite has no int64 value")
	}
}

func TestTextSpaceCharacters(t *testing.T) {
	s := MustFor(value.FamilyString)
	tests := []struct {
		text string
		want bool
	}{
		{text: "a\tb\n", want: true},
		{text: "\u00e9\U0001F600", want: true},
		{text: "a\x00", want: false},
		{text: "\x01", want: false},
		{text: "\uFFFE", want: false},
	}
	for _, tt := range tests {
		if got := s.Contains(value.NewString(tt.text)); got != tt.want {
			t.Fatalf("Contains(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	hex := MustFor(value.FamilyHexBinary)
	zero := value.NewHexBinary([]byte{0})
	if !hex.Contains(zero) {
		t.Fatalf("hexBinary should contain a zero octet")
	}
	next, ok := hex.Next(value.NewHexBinary(nil))
	if !ok || hex.Compare(next, zero) != 0 {
		t.Fatalf("hexBinary Next(empty) = %s, want 00", next)
	}
}
