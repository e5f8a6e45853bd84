// Package facet compiles XML Schema constraining facets into datatype
// restrictions.
package facet

import (
	"github.com/jacoelho/xsdspace/internal/value"
)

// Kind identifies a constraining facet.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindMinInclusive
	KindMinExclusive
	KindMaxInclusive
	KindMaxExclusive
	KindEnumeration
	KindPattern
	KindLength
	KindMinLength
	KindMaxLength
	KindTotalDigits
	KindFractionDigits

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:        "invalid",
	KindMinInclusive:   "minInclusive",
	KindMinExclusive:   "minExclusive",
	KindMaxInclusive:   "maxInclusive",
	KindMaxExclusive:   "maxExclusive",
	KindEnumeration:    "enumeration",
	KindPattern:        "pattern",
	KindLength:         "length",
	KindMinLength:      "minLength",
	KindMaxLength:      "maxLength",
	KindTotalDigits:    "totalDigits",
	KindFractionDigits: "fractionDigits",
}

// String returns the XML Schema facet name.
func (k Kind) String() string {
	if k >= kindCount {
		return "invalid"
	}
	return kindNames[k]
}

// KindByName looks up a facet kind by its XML Schema name.
func KindByName(name string) (Kind, bool) {
	for k := KindMinInclusive; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// IsRange reports whether k bounds the value space from one side.
func (k Kind) IsRange() bool {
	return k >= KindMinInclusive && k <= KindMaxExclusive
}

// takesLength reports whether k carries a count in Facet.Length.
func (k Kind) takesLength() bool {
	return k >= KindLength && k <= KindFractionDigits
}

// Facet is one constraining facet. Range facets carry one value in Values,
// enumeration carries every enumerated value, pattern carries the XSD
// regular expression and the length and digits facets carry Length.
type Facet struct {
	Pattern string
	Values  []value.Value
	Length  uint64
	Kind    Kind
}

// MinInclusive returns a minInclusive facet.
func MinInclusive(v value.Value) Facet { return Facet{Kind: KindMinInclusive, Values: []value.Value{v}} }

// MinExclusive returns a minExclusive facet.
func MinExclusive(v value.Value) Facet { return Facet{Kind: KindMinExclusive, Values: []value.Value{v}} }

// MaxInclusive returns a maxInclusive facet.
func MaxInclusive(v value.Value) Facet { return Facet{Kind: KindMaxInclusive, Values: []value.Value{v}} }

// MaxExclusive returns a maxExclusive facet.
func MaxExclusive(v value.Value) Facet { return Facet{Kind: KindMaxExclusive, Values: []value.Value{v}} }

// Enumeration returns an enumeration facet over vs.
func Enumeration(vs ...value.Value) Facet { return Facet{Kind: KindEnumeration, Values: vs} }

// Pattern returns a pattern facet.
func Pattern(xsd string) Facet { return Facet{Kind: KindPattern, Pattern: xsd} }

// Length returns a length facet.
func Length(n uint64) Facet { return Facet{Kind: KindLength, Length: n} }

// MinLength returns a minLength facet.
func MinLength(n uint64) Facet { return Facet{Kind: KindMinLength, Length: n} }

// MaxLength returns a maxLength facet.
func MaxLength(n uint64) Facet { return Facet{Kind: KindMaxLength, Length: n} }

// TotalDigits returns a totalDigits facet.
func TotalDigits(n uint64) Facet { return Facet{Kind: KindTotalDigits, Length: n} }

// FractionDigits returns a fractionDigits facet.
func FractionDigits(n uint64) Facet { return Facet{Kind: KindFractionDigits, Length: n} }
