// Package lexical maps XML Schema lexical forms onto typed values.
package lexical

import (
	"fmt"

	xsderrors "github.com/jacoelho/xsdspace/errors"
	"github.com/jacoelho/xsdspace/internal/value"
)

// Parse parses text as a literal of family f. Whitespace is handled as the
// primitive's whiteSpace facet prescribes: preserved for string, collapsed
// for every other family. Failures are InvalidLiteral errors.
func Parse(f value.Family, text string) (value.Value, error) {
	v, err := parse(f, text)
	if err != nil {
		return value.Value{}, xsderrors.New(xsderrors.ErrInvalidLiteral, err.Error()).
			WithDatatype(f.String()).
			WithActual(text)
	}
	return v, nil
}

func parse(f value.Family, text string) (value.Value, error) {
	switch f {
	case value.FamilyBoolean:
		b, err := ParseBoolean(text)
		return value.NewBoolean(b), err
	case value.FamilyInteger:
		n, err := ParseInteger(text)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewInteger(n), nil
	case value.FamilyDecimal:
		r, err := ParseDecimal(text)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewDecimal(r), nil
	case value.FamilyFloat:
		x, err := ParseFloat(text)
		return value.NewFloat(x), err
	case value.FamilyDouble:
		x, err := ParseDouble(text)
		return value.NewDouble(x), err
	case value.FamilyString:
		return value.NewString(text), nil
	case value.FamilyAnyURI:
		uri := collapseWhitespace(text)
		if err := ValidateAnyURI(uri); err != nil {
			return value.Value{}, err
		}
		return value.NewAnyURI(uri), nil
	case value.FamilyHexBinary:
		b, err := ParseHexBinary(text)
		return value.NewHexBinary(b), err
	case value.FamilyBase64Binary:
		b, err := ParseBase64Binary(text)
		return value.NewBase64Binary(b), err
	case value.FamilyDuration:
		return ParseDuration(text)
	case value.FamilyDateTime:
		return ParseDateTime(text)
	case value.FamilyTime:
		return ParseTime(text)
	case value.FamilyDate:
		return ParseDate(text)
	case value.FamilyGYearMonth:
		return ParseGYearMonth(text)
	case value.FamilyGYear:
		return ParseGYear(text)
	case value.FamilyGMonthDay:
		return ParseGMonthDay(text)
	case value.FamilyGMonth:
		return ParseGMonth(text)
	case value.FamilyGDay:
		return ParseGDay(text)
	default:
		return value.Value{}, fmt.Errorf("no lexical space for family %s", f)
	}
}
