package num

import "math/big"

// IntegerRange is the inclusive range of an integer-derived built-in type.
// A nil side is unbounded.
type IntegerRange struct {
	Min *big.Int
	Max *big.Int
}

func mustInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("num: bad integer literal " + s)
	}
	return n
}

var integerRanges = map[string]IntegerRange{
	"nonPositiveInteger": {Max: mustInt("0")},
	"negativeInteger":    {Max: mustInt("-1")},
	"long":               {Min: mustInt("-9223372036854775808"), Max: mustInt("9223372036854775807")},
	"int":                {Min: mustInt("-2147483648"), Max: mustInt("2147483647")},
	"short":              {Min: mustInt("-32768"), Max: mustInt("32767")},
	"byte":               {Min: mustInt("-128"), Max: mustInt("127")},
	"nonNegativeInteger": {Min: mustInt("0")},
	"unsignedLong":       {Min: mustInt("0"), Max: mustInt("18446744073709551615")},
	"unsignedInt":        {Min: mustInt("0"), Max: mustInt("4294967295")},
	"unsignedShort":      {Min: mustInt("0"), Max: mustInt("65535")},
	"unsignedByte":       {Min: mustInt("0"), Max: mustInt("255")},
	"positiveInteger":    {Min: mustInt("1")},
}

// RangeOf returns the value range of an integer-derived built-in type.
// The returned bounds are copies.
func RangeOf(typeName string) (IntegerRange, bool) {
	r, ok := integerRanges[typeName]
	if !ok {
		return IntegerRange{}, false
	}
	out := IntegerRange{}
	if r.Min != nil {
		out.Min = new(big.Int).Set(r.Min)
	}
	if r.Max != nil {
		out.Max = new(big.Int).Set(r.Max)
	}
	return out, true
}
