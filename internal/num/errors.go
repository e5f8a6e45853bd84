package num

// ParseError represents a numeric lexical failure.
type ParseError struct {
	Kind ParseErrKind
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return e.Kind.String()
}

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseInvalid ParseErrKind = iota
	ParseEmpty
	ParseBadChar
	ParseMultipleDots
	ParseNoDigits
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseBadChar:
		return "bad character"
	case ParseMultipleDots:
		return "multiple dots"
	case ParseNoDigits:
		return "no digits"
	default:
		return "invalid"
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// splitSign strips an optional leading sign and reports whether it was '-'.
func splitSign(b []byte) ([]byte, bool) {
	if len(b) == 0 {
		return b, false
	}
	switch b[0] {
	case '+':
		return b[1:], false
	case '-':
		return b[1:], true
	}
	return b, false
}
