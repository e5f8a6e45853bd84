package lexical

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	languagePattern  = regexp.MustCompile(`^[A-Za-z]{1,8}(-[A-Za-z0-9]{1,8})*$`)
	uriSchemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)
)

// ValidateNormalizedString validates xs:normalizedString lexical constraints.
func ValidateNormalizedString(value string) error {
	if strings.ContainsAny(value, "\r\n\t") {
		return fmt.Errorf("normalizedString cannot contain CR, LF, or Tab")
	}
	return nil
}

// ValidateToken validates xs:token lexical constraints.
func ValidateToken(value string) error {
	if value == "" {
		return nil
	}
	if value[0] == ' ' || value[len(value)-1] == ' ' {
		return fmt.Errorf("token cannot have leading or trailing whitespace")
	}
	prevSpace := false
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case ' ':
			if prevSpace {
				return fmt.Errorf("token cannot have consecutive spaces")
			}
			prevSpace = true
		case '\r', '\n', '\t':
			return fmt.Errorf("token cannot contain CR, LF, or Tab")
		default:
			prevSpace = false
		}
	}
	return nil
}

// ValidateLanguage validates xs:language lexical constraints.
func ValidateLanguage(value string) error {
	if !languagePattern.MatchString(value) {
		return fmt.Errorf("invalid language format")
	}
	return nil
}

// ValidateName validates xs:Name lexical constraints.
func ValidateName(value string) error {
	if value == "" {
		return fmt.Errorf("name cannot be empty")
	}
	for i, r := range value {
		if r == utf8.RuneError {
			return fmt.Errorf("invalid Name character")
		}
		if i == 0 {
			if !isNameStartChar(r) {
				return fmt.Errorf("invalid Name start character: %c", r)
			}
		} else if !isNameChar(r) {
			return fmt.Errorf("invalid Name character: %c", r)
		}
	}
	return nil
}

// ValidateNCName validates xs:NCName lexical constraints.
func ValidateNCName(value string) error {
	if value == "" {
		return fmt.Errorf("NCName cannot be empty")
	}
	if strings.IndexByte(value, ':') >= 0 {
		return fmt.Errorf("NCName cannot contain colons")
	}
	return ValidateName(value)
}

// ValidateNMTOKEN validates xs:NMTOKEN lexical constraints.
func ValidateNMTOKEN(value string) error {
	if value == "" {
		return fmt.Errorf("NMTOKEN cannot be empty")
	}
	for _, r := range value {
		if r == utf8.RuneError {
			return fmt.Errorf("invalid NMTOKEN character")
		}
		if !isNameChar(r) {
			return fmt.Errorf("invalid NMTOKEN character: %c", r)
		}
	}
	return nil
}

// ValidateAnyURI validates xs:anyURI lexical constraints.
func ValidateAnyURI(value string) error {
	if value == "" {
		return nil
	}
	for i := 0; i < len(value); i++ {
		b := value[i]
		if b < 0x20 || b == 0x7f {
			return fmt.Errorf("anyURI contains control characters")
		}
		switch b {
		case '\\', '{', '}', '|', '^', '`':
			return fmt.Errorf("anyURI contains invalid characters")
		}
	}
	for i := 0; i < len(value); i++ {
		if value[i] != '%' {
			continue
		}
		if i+2 >= len(value) || !isHexDigit(value[i+1]) || !isHexDigit(value[i+2]) {
			return fmt.Errorf("anyURI contains invalid percent-encoding")
		}
		i += 2
	}
	if idx := strings.IndexByte(value, ':'); idx >= 0 {
		delimiter := strings.IndexAny(value, "/?#")
		if delimiter == -1 || idx < delimiter {
			if idx == 0 {
				return fmt.Errorf("anyURI scheme cannot be empty")
			}
			if !uriSchemePattern.MatchString(value[:idx]) {
				return fmt.Errorf("anyURI has invalid scheme")
			}
		}
	}
	return nil
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}

func isNameStartChar(r rune) bool {
	return r == ':' || r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0xC0 && r <= 0xD6) ||
		(r >= 0xD8 && r <= 0xF6) ||
		(r >= 0xF8 && r <= 0x2FF) ||
		(r >= 0x370 && r <= 0x37D) ||
		(r >= 0x37F && r <= 0x1FFF) ||
		(r >= 0x200C && r <= 0x200D) ||
		(r >= 0x2070 && r <= 0x218F) ||
		(r >= 0x2C00 && r <= 0x2FEF) ||
		(r >= 0x3001 && r <= 0xD7FF) ||
		(r >= 0xF900 && r <= 0xFDCF) ||
		(r >= 0xFDF0 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0xEFFFF)
}

func isNameChar(r rune) bool {
	return isNameStartChar(r) ||
		r == '-' || r == '.' ||
		(r >= '0' && r <= '9') ||
		r == 0xB7 ||
		(r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x203F && r <= 0x2040)
}
