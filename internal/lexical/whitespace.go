package lexical

import "strings"

// Whitespace is the whiteSpace facet mode applied before parsing.
type Whitespace uint8

const (
	WhitespacePreserve Whitespace = iota
	WhitespaceReplace
	WhitespaceCollapse
)

// WhitespaceFor returns the fixed whiteSpace mode of a built-in type name.
func WhitespaceFor(typeName string) Whitespace {
	switch typeName {
	case "string":
		return WhitespacePreserve
	case "normalizedString":
		return WhitespaceReplace
	default:
		return WhitespaceCollapse
	}
}

// NormalizeWhitespace applies the whitespace mode to in.
// It returns in unchanged when no rewrite is needed.
func NormalizeWhitespace(mode Whitespace, in string) string {
	switch mode {
	case WhitespaceReplace:
		return replaceWhitespace(in)
	case WhitespaceCollapse:
		return collapseWhitespace(in)
	default:
		return in
	}
}

// TrimXMLWhitespace removes leading and trailing XML whitespace.
// It returns the original string when no trimming is needed.
func TrimXMLWhitespace(in string) string {
	start := 0
	end := len(in)
	for start < end && IsXMLWhitespaceByte(in[start]) {
		start++
	}
	for end > start && IsXMLWhitespaceByte(in[end-1]) {
		end--
	}
	if start == 0 && end == len(in) {
		return in
	}
	return in[start:end]
}

func replaceWhitespace(in string) string {
	if strings.IndexAny(in, "\t\n\r") < 0 {
		return in
	}
	out := []byte(in)
	for i, b := range out {
		if IsXMLWhitespaceByte(b) {
			out[i] = ' '
		}
	}
	return string(out)
}

func collapseWhitespace(in string) string {
	if !needsCollapse(in) {
		return in
	}
	out := make([]byte, 0, len(in))
	pendingSpace := false
	for i := 0; i < len(in); i++ {
		b := in[i]
		if IsXMLWhitespaceByte(b) {
			pendingSpace = true
			continue
		}
		if pendingSpace && len(out) > 0 {
			out = append(out, ' ')
		}
		pendingSpace = false
		out = append(out, b)
	}
	return string(out)
}

func needsCollapse(in string) bool {
	if in == "" {
		return false
	}
	if IsXMLWhitespaceByte(in[0]) || IsXMLWhitespaceByte(in[len(in)-1]) {
		return true
	}
	if strings.IndexAny(in, "\t\n\r") >= 0 {
		return true
	}
	return strings.Contains(in, "  ")
}

// removeXMLWhitespace drops every XML whitespace byte, as base64Binary
// lexical forms allow spaces between groups.
func removeXMLWhitespace(in string) string {
	if strings.IndexAny(in, " \t\n\r") < 0 {
		return in
	}
	var b strings.Builder
	b.Grow(len(in))
	for i := 0; i < len(in); i++ {
		if !IsXMLWhitespaceByte(in[i]) {
			b.WriteByte(in[i])
		}
	}
	return b.String()
}

// IsXMLWhitespaceByte reports whether the byte is XML whitespace.
func IsXMLWhitespaceByte(b byte) bool {
	if b > ' ' {
		return false
	}
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
