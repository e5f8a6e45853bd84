package valuespace

import (
	"strings"
	"unicode/utf8"

	"github.com/jacoelho/xsdspace/internal/value"
)

// textSpace orders strings by code point and binary values by byte. The
// space is dense: between "a" and "b" lie infinitely many values. Only the
// lowest step exists: "s" is immediately followed by s plus the least
// unit of the family, a tab for strings (the least XML character) and a
// zero octet for binary values.
type textSpace struct {
	family value.Family
}

func (s textSpace) Family() value.Family { return s.family }

func (s textSpace) Name() string { return s.family.String() }

func (s textSpace) Min() (value.Value, bool) { return s.make(""), true }

func (textSpace) Max() (value.Value, bool) { return value.Value{}, false }

func (s textSpace) Contains(v value.Value) bool {
	if v.Family() != s.family {
		return false
	}
	if s.isBinary() {
		return true
	}
	for _, r := range v.Text() {
		if !isXMLChar(r) {
			return false
		}
	}
	return utf8.ValidString(v.Text())
}

func (s textSpace) isBinary() bool {
	return s.family == value.FamilyHexBinary || s.family == value.FamilyBase64Binary
}

// least returns the smallest unit a value of the family can be extended by.
func (s textSpace) least() string {
	if s.isBinary() {
		return "\x00"
	}
	return "\t"
}

// isXMLChar reports whether r is allowed by the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return r >= 0x10000 && r <= 0x10FFFF
	}
}

func (textSpace) Compare(a, b value.Value) int { return value.CompareText(a, b) }

func (textSpace) Discrete() bool { return false }

func (textSpace) sealed() {}

func (s textSpace) make(text string) value.Value {
	switch s.family {
	case value.FamilyAnyURI:
		return value.NewAnyURI(text)
	case value.FamilyHexBinary:
		return value.NewHexBinary([]byte(text))
	case value.FamilyBase64Binary:
		return value.NewBase64Binary([]byte(text))
	default:
		return value.NewString(text)
	}
}

func (s textSpace) Succ(value.Value, int64) (value.Value, error) {
	return value.Value{}, notDiscrete(s)
}

// Count is exact when end is start followed only by least units and
// infinite for any other non-empty range.
func (s textSpace) Count(start, end value.Value) Count {
	a, b := start.Text(), end.Text()
	switch c := strings.Compare(a, b); {
	case c > 0:
		return Count{}
	case c == 0:
		return CountOf(1)
	}
	rest, ok := strings.CutPrefix(b, a)
	if !ok || strings.Trim(rest, s.least()) != "" {
		return Infinite
	}
	return CountOf(int64(len(rest)) + 1)
}

func (s textSpace) Next(v value.Value) (value.Value, bool) {
	return s.make(v.Text() + s.least()), true
}

func (s textSpace) Prev(v value.Value) (value.Value, bool) {
	t, ok := strings.CutSuffix(v.Text(), s.least())
	if !ok {
		return value.Value{}, false
	}
	return s.make(t), true
}
