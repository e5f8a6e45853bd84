package lexical

import (
	"fmt"
	"math/big"

	"github.com/jacoelho/xsdspace/internal/num"
)

// ParseBoolean parses a boolean lexical value into a bool.
func ParseBoolean(lexical string) (bool, error) {
	switch TrimXMLWhitespace(lexical) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean: %s", lexical)
	}
}

// ParseInteger parses an integer lexical value.
func ParseInteger(lexical string) (*big.Int, error) {
	trimmed := TrimXMLWhitespace(lexical)
	n, perr := num.ParseInteger([]byte(trimmed))
	if perr != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", trimmed, perr)
	}
	return n, nil
}

// ParseDecimal parses a decimal lexical value.
func ParseDecimal(lexical string) (*big.Rat, error) {
	trimmed := TrimXMLWhitespace(lexical)
	r, perr := num.ParseDecimal([]byte(trimmed))
	if perr != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", trimmed, perr)
	}
	return r, nil
}

// ParseFloat parses a float lexical value into float32.
func ParseFloat(lexical string) (float32, error) {
	trimmed := TrimXMLWhitespace(lexical)
	f, _, perr := num.ParseFloat32([]byte(trimmed))
	if perr == nil {
		return f, nil
	}
	if perr.Kind == num.ParseEmpty {
		return 0, fmt.Errorf("invalid float: empty string")
	}
	return 0, fmt.Errorf("invalid float: %s", trimmed)
}

// ParseDouble parses a double lexical value into float64.
func ParseDouble(lexical string) (float64, error) {
	trimmed := TrimXMLWhitespace(lexical)
	f, _, perr := num.ParseFloat64([]byte(trimmed))
	if perr == nil {
		return f, nil
	}
	if perr.Kind == num.ParseEmpty {
		return 0, fmt.Errorf("invalid double: empty string")
	}
	return 0, fmt.Errorf("invalid double: %s", trimmed)
}
