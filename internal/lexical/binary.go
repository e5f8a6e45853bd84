package lexical

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// ParseHexBinary decodes a hexBinary lexical value.
func ParseHexBinary(lexical string) ([]byte, error) {
	trimmed := TrimXMLWhitespace(lexical)
	if len(trimmed)%2 != 0 {
		return nil, fmt.Errorf("invalid hexBinary: odd number of digits")
	}
	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid hexBinary: %w", err)
	}
	return b, nil
}

// ParseBase64Binary decodes a base64Binary lexical value.
// Whitespace between characters is ignored; padding is required.
func ParseBase64Binary(lexical string) ([]byte, error) {
	compact := removeXMLWhitespace(lexical)
	b, err := base64.StdEncoding.Strict().DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("invalid base64Binary: %w", err)
	}
	return b, nil
}
