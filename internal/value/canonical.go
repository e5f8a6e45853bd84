package value

import (
	"encoding/base64"
	"encoding/hex"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxFractionDigits bounds the rendering of non-terminating rationals.
const maxFractionDigits = 20

// String renders v in its XML Schema canonical lexical form.
func (v Value) String() string {
	switch v.family {
	case FamilyBoolean:
		return strconv.FormatBool(v.flag)
	case FamilyInteger:
		return v.num.String()
	case FamilyDecimal:
		return formatRat(v.rat, true)
	case FamilyFloat:
		return CanonicalFloat(v.float, 32)
	case FamilyDouble:
		return CanonicalFloat(v.float, 64)
	case FamilyString, FamilyAnyURI:
		return v.text
	case FamilyHexBinary:
		return strings.ToUpper(hex.EncodeToString([]byte(v.text)))
	case FamilyBase64Binary:
		return base64.StdEncoding.EncodeToString([]byte(v.text))
	case FamilyDuration:
		return v.durationString()
	case FamilyDateTime, FamilyTime, FamilyDate, FamilyGYearMonth, FamilyGYear,
		FamilyGMonthDay, FamilyGDay, FamilyGMonth:
		return v.calendarString()
	default:
		return "<invalid>"
	}
}

// CanonicalFloat returns the canonical lexical form for float/double values.
func CanonicalFloat(value float64, bits int) string {
	if math.IsNaN(value) {
		return "NaN"
	}
	if math.IsInf(value, 1) {
		return "INF"
	}
	if math.IsInf(value, -1) {
		return "-INF"
	}
	if value == 0 {
		return "0.0E0"
	}
	raw := strconv.FormatFloat(value, 'E', -1, bits)
	exponent := "0"
	mantissa := raw
	if e := strings.IndexByte(raw, 'E'); e >= 0 {
		mantissa = raw[:e]
		exponent = raw[e+1:]
	}
	if dot := strings.IndexByte(mantissa, '.'); dot == -1 {
		mantissa += ".0"
	} else {
		i := len(mantissa) - 1
		for i > dot+1 && mantissa[i] == '0' {
			i--
		}
		mantissa = mantissa[:i+1]
	}
	expVal, err := strconv.Atoi(exponent)
	if err != nil {
		return mantissa + "E" + exponent
	}
	return mantissa + "E" + strconv.Itoa(expVal)
}

// formatRat renders r as a decimal numeral. Terminating expansions are exact;
// others are cut at maxFractionDigits. With pointRequired the result always
// carries a fraction part ("12.0"), as the decimal canonical form requires.
func formatRat(r *big.Rat, pointRequired bool) string {
	if r == nil {
		r = new(big.Rat)
	}
	digits, exact := terminatingDigits(r.Denom())
	if !exact {
		digits = maxFractionDigits
	}
	s := r.FloatString(digits)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if pointRequired && !strings.Contains(s, ".") {
		s += ".0"
	}
	if s == "-0" || s == "-0.0" {
		s = s[1:]
	}
	return s
}

// terminatingDigits reports the number of fraction digits needed to render
// 1/denom exactly, or false when the expansion does not terminate.
func terminatingDigits(denom *big.Int) (int, bool) {
	d := new(big.Int).Set(denom)
	two, five := big.NewInt(2), big.NewInt(5)
	twos, fives := 0, 0
	mod := new(big.Int)
	for {
		q, m := new(big.Int).QuoRem(d, two, mod)
		if m.Sign() != 0 {
			break
		}
		d = q
		twos++
	}
	for {
		q, m := new(big.Int).QuoRem(d, five, mod)
		if m.Sign() != 0 {
			break
		}
		d = q
		fives++
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	return max(twos, fives), true
}
