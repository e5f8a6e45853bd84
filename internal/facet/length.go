package facet

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/datatype"
	"github.com/jacoelho/xsdspace/internal/interval"
	"github.com/jacoelho/xsdspace/internal/value"
	"github.com/jacoelho/xsdspace/internal/valuespace"
)

// maxTotalDigits bounds totalDigits so its integer range stays computable.
const maxTotalDigits = 1 << 20

// measureLength returns the length of v in the unit of its family:
// octets for hexBinary and base64Binary, characters otherwise.
func measureLength(v value.Value) uint64 {
	switch v.Family() {
	case value.FamilyHexBinary, value.FamilyBase64Binary:
		return uint64(len(v.Bytes()))
	default:
		return uint64(utf8.RuneCountInString(v.Text()))
	}
}

// countFilter builds the filter of a length or digits facet.
func countFilter(f value.Family, fc Facet) (datatype.Filter, error) {
	n := fc.Length
	name := fc.String()
	switch fc.Kind {
	case KindLength:
		return datatype.NewFilter(name, func(v value.Value) bool { return measureLength(v) == n }), nil
	case KindMinLength:
		return datatype.NewFilter(name, func(v value.Value) bool { return measureLength(v) >= n }), nil
	case KindMaxLength:
		return datatype.NewFilter(name, func(v value.Value) bool { return measureLength(v) <= n }), nil
	case KindTotalDigits:
		if n == 0 {
			return datatype.Filter{}, xsderrors.New(xsderrors.ErrInvalidFacet, "totalDigits must be positive")
		}
		return datatype.NewFilter(name, func(v value.Value) bool {
			total, _, ok := decimalDigits(v.BigRat())
			return ok && uint64(total) <= n
		}), nil
	case KindFractionDigits:
		return datatype.NewFilter(name, func(v value.Value) bool {
			_, fraction, ok := decimalDigits(v.BigRat())
			return ok && uint64(fraction) <= n
		}), nil
	default:
		return datatype.Filter{}, fmt.Errorf("facet %s on %s has no filter", fc.Kind, f)
	}
}

// integerDigitsList returns the integers with at most n digits.
func integerDigitsList(s valuespace.Space, n uint64) (*interval.List, error) {
	if n == 0 {
		return nil, xsderrors.New(xsderrors.ErrInvalidFacet, "totalDigits must be positive")
	}
	if n > maxTotalDigits {
		return nil, xsderrors.Newf(xsderrors.ErrInvalidFacet, "totalDigits %d exceeds %d", n, maxTotalDigits)
	}
	limit := new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(n), nil)
	limit.Sub(limit, big.NewInt(1))
	return interval.Between(s, value.NewInteger(new(big.Int).Neg(limit)), true, value.NewInteger(limit), true)
}

// decimalDigits returns the digit counts of r written as i × 10^-fraction
// with the smallest fraction: total is the number of digits of i.
// Non-terminating expansions report false.
func decimalDigits(r *big.Rat) (total, fraction int, ok bool) {
	d := new(big.Int).Set(r.Denom())
	two, five := big.NewInt(2), big.NewInt(5)
	mod := new(big.Int)
	twos, fives := 0, 0
	for {
		q, m := new(big.Int).QuoRem(d, two, mod)
		if m.Sign() != 0 {
			break
		}
		d, twos = q, twos+1
	}
	for {
		q, m := new(big.Int).QuoRem(d, five, mod)
		if m.Sign() != 0 {
			break
		}
		d, fives = q, fives+1
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, 0, false
	}
	fraction = max(twos, fives)
	scaled := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(fraction)), nil)
	scaled.Mul(scaled, new(big.Int).Abs(r.Num()))
	scaled.Quo(scaled, r.Denom())
	return len(scaled.String()), fraction, true
}
