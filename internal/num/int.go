package num

import "math/big"

// ParseInteger parses an xs:integer lexical value: an optional sign followed
// by one or more decimal digits.
func ParseInteger(b []byte) (*big.Int, *ParseError) {
	if len(b) == 0 {
		return nil, &ParseError{Kind: ParseEmpty}
	}
	digits, negative := splitSign(b)
	if len(digits) == 0 {
		return nil, &ParseError{Kind: ParseNoDigits}
	}
	for _, c := range digits {
		if !isDigit(c) {
			return nil, &ParseError{Kind: ParseBadChar}
		}
	}
	n, ok := new(big.Int).SetString(string(digits), 10)
	if !ok {
		return nil, &ParseError{Kind: ParseInvalid}
	}
	if negative {
		n.Neg(n)
	}
	return n, nil
}

// ParseDecimal parses an xs:decimal lexical value: an optional sign, digits
// and at most one decimal point, with at least one digit overall.
func ParseDecimal(b []byte) (*big.Rat, *ParseError) {
	if len(b) == 0 {
		return nil, &ParseError{Kind: ParseEmpty}
	}
	body, negative := splitSign(b)
	if len(body) == 0 {
		return nil, &ParseError{Kind: ParseNoDigits}
	}
	dot := -1
	digits := 0
	for i, c := range body {
		switch {
		case isDigit(c):
			digits++
		case c == '.':
			if dot >= 0 {
				return nil, &ParseError{Kind: ParseMultipleDots}
			}
			dot = i
		default:
			return nil, &ParseError{Kind: ParseBadChar}
		}
	}
	if digits == 0 {
		return nil, &ParseError{Kind: ParseNoDigits}
	}
	intPart, fracPart := body, []byte(nil)
	if dot >= 0 {
		intPart, fracPart = body[:dot], body[dot+1:]
	}
	coef := new(big.Int)
	if len(intPart)+len(fracPart) > 0 {
		if _, ok := coef.SetString(string(intPart)+string(fracPart), 10); !ok {
			return nil, &ParseError{Kind: ParseInvalid}
		}
	}
	r := new(big.Rat).SetFrac(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil))
	if negative {
		r.Neg(r)
	}
	return r, nil
}
