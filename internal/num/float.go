package num

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"unsafe"
)

// FloatClass identifies the ordering class of a float value.
type FloatClass uint8

const (
	FloatFinite FloatClass = iota
	FloatPosInf
	FloatNegInf
	FloatNaN
)

// ParseFloat32 parses an XSD float lexical value.
func ParseFloat32(b []byte) (float32, FloatClass, *ParseError) {
	f, class, err := parseFloat(b, 32)
	return float32(f), class, err
}

// ParseFloat64 parses an XSD double lexical value.
func ParseFloat64(b []byte) (float64, FloatClass, *ParseError) {
	return parseFloat(b, 64)
}

func parseFloat(b []byte, bits int) (float64, FloatClass, *ParseError) {
	if len(b) == 0 {
		return 0, FloatFinite, &ParseError{Kind: ParseEmpty}
	}
	switch {
	case bytes.Equal(b, []byte("INF")):
		return math.Inf(1), FloatPosInf, nil
	case bytes.Equal(b, []byte("-INF")):
		return math.Inf(-1), FloatNegInf, nil
	case bytes.Equal(b, []byte("NaN")):
		return math.NaN(), FloatNaN, nil
	case bytes.Equal(b, []byte("+INF")):
		return 0, FloatFinite, &ParseError{Kind: ParseBadChar}
	}
	if !isFloatLexical(b) {
		return 0, FloatFinite, &ParseError{Kind: ParseBadChar}
	}
	lexical := unsafe.String(unsafe.SliceData(b), len(b))
	f, err := strconv.ParseFloat(lexical, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			class := FloatFinite
			if math.IsInf(f, 1) {
				class = FloatPosInf
			} else if math.IsInf(f, -1) {
				class = FloatNegInf
			}
			return f, class, nil
		}
		return 0, FloatFinite, &ParseError{Kind: ParseBadChar}
	}
	return f, FloatFinite, nil
}

func isFloatLexical(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	i := 0
	if value[i] == '+' || value[i] == '-' {
		i++
		if i == len(value) {
			return false
		}
	}
	startDigits := 0
	for i < len(value) && isDigit(value[i]) {
		i++
		startDigits++
	}
	if i < len(value) && value[i] == '.' {
		i++
		fracDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			fracDigits++
		}
		if startDigits == 0 && fracDigits == 0 {
			return false
		}
	} else if startDigits == 0 {
		return false
	}
	if i < len(value) && (value[i] == 'e' || value[i] == 'E') {
		i++
		if i == len(value) {
			return false
		}
		if value[i] == '+' || value[i] == '-' {
			i++
			if i == len(value) {
				return false
			}
		}
		expDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(value)
}
