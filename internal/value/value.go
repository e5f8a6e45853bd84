package value

import (
	"math"
	"math/big"
	"time"
)

// Value is an immutable typed datum of exactly one family.
// It is a fixed tagged union: the family selects which payload is meaningful.
// The zero Value is invalid.
type Value struct {
	when   time.Time // calendar payload, always in UTC
	num    *big.Int  // integer payload
	rat    *big.Rat  // decimal payload, duration seconds
	text   string    // string, anyURI and binary payloads
	float  float64   // float and double payload
	months int64     // duration months
	tz     Timezone
	family Family
	flag   bool // boolean payload
}

// Family returns the family tag of v.
func (v Value) Family() Family {
	return v.family
}

// IsValid reports whether v was built by a constructor.
func (v Value) IsValid() bool {
	return v.family.Valid()
}

// NewBoolean returns a boolean value.
func NewBoolean(b bool) Value {
	return Value{family: FamilyBoolean, flag: b}
}

// NewInteger returns an integer value. The argument is copied.
func NewInteger(i *big.Int) Value {
	if i == nil {
		i = new(big.Int)
	}
	return Value{family: FamilyInteger, num: new(big.Int).Set(i)}
}

// NewInt64 returns an integer value.
func NewInt64(n int64) Value {
	return Value{family: FamilyInteger, num: big.NewInt(n)}
}

// NewDecimal returns a decimal value. The argument is copied.
func NewDecimal(r *big.Rat) Value {
	if r == nil {
		r = new(big.Rat)
	}
	return Value{family: FamilyDecimal, rat: new(big.Rat).Set(r)}
}

// NewFloat returns a float value. Negative zero is stored as zero.
func NewFloat(f float32) Value {
	return Value{family: FamilyFloat, float: normalizeZero(float64(f))}
}

// NewDouble returns a double value. Negative zero is stored as zero.
func NewDouble(f float64) Value {
	return Value{family: FamilyDouble, float: normalizeZero(f)}
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{family: FamilyString, text: s}
}

// NewAnyURI returns an anyURI value.
func NewAnyURI(s string) Value {
	return Value{family: FamilyAnyURI, text: s}
}

// NewHexBinary returns a hexBinary value holding a copy of b.
func NewHexBinary(b []byte) Value {
	return Value{family: FamilyHexBinary, text: string(b)}
}

// NewBase64Binary returns a base64Binary value holding a copy of b.
func NewBase64Binary(b []byte) Value {
	return Value{family: FamilyBase64Binary, text: string(b)}
}

// Bool returns the boolean payload.
func (v Value) Bool() bool {
	return v.flag
}

// BigInt returns a copy of the integer payload, or nil for other families.
func (v Value) BigInt() *big.Int {
	if v.num == nil {
		return nil
	}
	return new(big.Int).Set(v.num)
}

// BigRat returns a copy of the decimal payload or the duration seconds,
// or nil for other families.
func (v Value) BigRat() *big.Rat {
	if v.rat == nil {
		return nil
	}
	return new(big.Rat).Set(v.rat)
}

// Float64 returns the float or double payload.
func (v Value) Float64() float64 {
	return v.float
}

// Text returns the string payload; binary families return their raw bytes.
func (v Value) Text() string {
	return v.text
}

// Bytes returns a copy of the binary payload.
func (v Value) Bytes() []byte {
	return []byte(v.text)
}

// Promote converts v into family f when the value spaces nest.
// Integers promote to decimals; every value promotes to its own family.
func (v Value) Promote(f Family) (Value, bool) {
	if v.family == f {
		return v, true
	}
	if v.family == FamilyInteger && f == FamilyDecimal {
		return NewDecimal(new(big.Rat).SetInt(v.num)), true
	}
	return Value{}, false
}

func normalizeZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// IsNaN reports whether v is a float or double NaN.
func (v Value) IsNaN() bool {
	return (v.family == FamilyFloat || v.family == FamilyDouble) && math.IsNaN(v.float)
}
