package facet

import "github.com/jacoelho/xsdspace/internal/value"

// applicable reports whether a facet of kind k may restrict family f.
// Range facets need an ordered family, length facets a family whose
// values have a length, digits facets a decimal-like family. Enumeration
// and pattern apply everywhere; pattern matches the canonical form.
func applicable(k Kind, f value.Family) bool {
	switch k {
	case KindMinInclusive, KindMinExclusive, KindMaxInclusive, KindMaxExclusive:
		return f.IsNumeric() || f.IsCalendar() || f == value.FamilyDuration
	case KindEnumeration, KindPattern:
		return true
	case KindLength, KindMinLength, KindMaxLength:
		return f.IsStringLike()
	case KindTotalDigits, KindFractionDigits:
		return f == value.FamilyInteger || f == value.FamilyDecimal
	default:
		return false
	}
}
