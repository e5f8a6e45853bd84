package valuespace

import (
	"math/big"

	"github.com/jacoelho/xsdspace/internal/num"
	"github.com/jacoelho/xsdspace/internal/value"
)

type integerSpace struct{}

func (integerSpace) Family() value.Family { return value.FamilyInteger }

func (integerSpace) Name() string { return "integer" }

func (integerSpace) Min() (value.Value, bool) { return value.Value{}, false }

func (integerSpace) Max() (value.Value, bool) { return value.Value{}, false }

func (integerSpace) Contains(v value.Value) bool { return v.Family() == value.FamilyInteger }

func (integerSpace) Compare(a, b value.Value) int { return value.CompareInteger(a, b) }

func (integerSpace) Discrete() bool { return true }

func (integerSpace) sealed() {}

func (s integerSpace) Succ(v value.Value, n int64) (value.Value, error) {
	if err := Check(s, v); err != nil {
		return value.Value{}, err
	}
	i := v.BigInt()
	return value.NewInteger(i.Add(i, big.NewInt(n))), nil
}

func (integerSpace) Count(start, end value.Value) Count {
	d := end.BigInt()
	d.Sub(d, start.BigInt())
	return Finite(d.Add(d, big.NewInt(1)))
}

func (s integerSpace) Next(v value.Value) (value.Value, bool) {
	next, err := s.Succ(v, 1)
	return next, err == nil
}

func (s integerSpace) Prev(v value.Value) (value.Value, bool) {
	prev, err := s.Succ(v, -1)
	return prev, err == nil
}

type decimalSpace struct {
	dense
}

func (decimalSpace) Family() value.Family { return value.FamilyDecimal }

func (decimalSpace) Name() string { return "decimal" }

func (decimalSpace) Min() (value.Value, bool) { return value.Value{}, false }

func (decimalSpace) Max() (value.Value, bool) { return value.Value{}, false }

func (decimalSpace) Contains(v value.Value) bool { return v.Family() == value.FamilyDecimal }

func (decimalSpace) Compare(a, b value.Value) int { return value.CompareDecimal(a, b) }

func (s decimalSpace) Succ(value.Value, int64) (value.Value, error) {
	return value.Value{}, notDiscrete(s)
}

func (s decimalSpace) Count(start, end value.Value) Count {
	return denseCount(s.Compare(start, end))
}

// floatSpace orders float and double values. NaN is not a member; -0 and
// +0 are one value. Every member has an IEEE neighbour, so the space is
// discrete, bounded by the infinities.
type floatSpace struct {
	family value.Family
}

func (s floatSpace) Family() value.Family { return s.family }

func (s floatSpace) Name() string { return s.family.String() }

func (s floatSpace) Min() (value.Value, bool) { return s.fromOrdinal(-s.maxOrdinal()), true }

func (s floatSpace) Max() (value.Value, bool) { return s.fromOrdinal(s.maxOrdinal()), true }

func (s floatSpace) Contains(v value.Value) bool { return v.Family() == s.family && !v.IsNaN() }

func (floatSpace) Compare(a, b value.Value) int { return value.CompareFloat(a, b) }

func (floatSpace) Discrete() bool { return true }

func (floatSpace) sealed() {}

func (s floatSpace) maxOrdinal() int64 {
	if s.family == value.FamilyFloat {
		return num.MaxFloat32Ordinal
	}
	return num.MaxFloat64Ordinal
}

func (s floatSpace) ordinal(v value.Value) int64 {
	if s.family == value.FamilyFloat {
		return num.Float32Ordinal(float32(v.Float64()))
	}
	return num.Float64Ordinal(v.Float64())
}

func (s floatSpace) fromOrdinal(o int64) value.Value {
	if s.family == value.FamilyFloat {
		return value.NewFloat(num.Float32FromOrdinal(o))
	}
	return value.NewDouble(num.Float64FromOrdinal(o))
}

func (s floatSpace) Succ(v value.Value, n int64) (value.Value, error) {
	if err := Check(s, v); err != nil {
		return value.Value{}, err
	}
	o, limit := s.ordinal(v), s.maxOrdinal()
	if (n > 0 && o > limit-n) || (n < 0 && o < -limit-n) {
		return value.Value{}, outOfDomain(s, v, n)
	}
	return s.fromOrdinal(o + n), nil
}

func (s floatSpace) Count(start, end value.Value) Count {
	// The double ordinal range spans more than an int64.
	d := big.NewInt(s.ordinal(end))
	d.Sub(d, big.NewInt(s.ordinal(start)))
	return Finite(d.Add(d, big.NewInt(1)))
}

func (s floatSpace) Next(v value.Value) (value.Value, bool) {
	next, err := s.Succ(v, 1)
	return next, err == nil
}

func (s floatSpace) Prev(v value.Value) (value.Value, bool) {
	prev, err := s.Succ(v, -1)
	return prev, err == nil
}
