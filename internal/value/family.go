package value

// Family identifies the value space a value belongs to.
// The set is closed: one family per XML Schema primitive with an ordered
// value space, plus integer, which has its own discrete space.
type Family uint8

const (
	FamilyInvalid Family = iota
	FamilyBoolean
	FamilyInteger
	FamilyDecimal
	FamilyFloat
	FamilyDouble
	FamilyString
	FamilyAnyURI
	FamilyHexBinary
	FamilyBase64Binary
	FamilyDuration
	FamilyDateTime
	FamilyTime
	FamilyDate
	FamilyGYearMonth
	FamilyGYear
	FamilyGMonthDay
	FamilyGDay
	FamilyGMonth

	familyCount
)

var familyNames = [familyCount]string{
	FamilyInvalid:      "invalid",
	FamilyBoolean:      "boolean",
	FamilyInteger:      "integer",
	FamilyDecimal:      "decimal",
	FamilyFloat:        "float",
	FamilyDouble:       "double",
	FamilyString:       "string",
	FamilyAnyURI:       "anyURI",
	FamilyHexBinary:    "hexBinary",
	FamilyBase64Binary: "base64Binary",
	FamilyDuration:     "duration",
	FamilyDateTime:     "dateTime",
	FamilyTime:         "time",
	FamilyDate:         "date",
	FamilyGYearMonth:   "gYearMonth",
	FamilyGYear:        "gYear",
	FamilyGMonthDay:    "gMonthDay",
	FamilyGDay:         "gDay",
	FamilyGMonth:       "gMonth",
}

// String returns the XML Schema local name of the family's primitive.
func (f Family) String() string {
	if f >= familyCount {
		return "invalid"
	}
	return familyNames[f]
}

// Valid reports whether f names a real family.
func (f Family) Valid() bool {
	return f > FamilyInvalid && f < familyCount
}

// IsCalendar reports whether values of f are carried as time.Time.
func (f Family) IsCalendar() bool {
	switch f {
	case FamilyDateTime, FamilyTime, FamilyDate, FamilyGYearMonth, FamilyGYear,
		FamilyGMonthDay, FamilyGDay, FamilyGMonth:
		return true
	default:
		return false
	}
}

// IsStringLike reports whether values of f are carried as a string.
func (f Family) IsStringLike() bool {
	switch f {
	case FamilyString, FamilyAnyURI, FamilyHexBinary, FamilyBase64Binary:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether f is one of the numeric families.
func (f Family) IsNumeric() bool {
	switch f {
	case FamilyInteger, FamilyDecimal, FamilyFloat, FamilyDouble:
		return true
	default:
		return false
	}
}

// Families returns every valid family in declaration order.
func Families() []Family {
	out := make([]Family, 0, familyCount-1)
	for f := FamilyBoolean; f < familyCount; f++ {
		out = append(out, f)
	}
	return out
}

// FamilyByName looks up a family by its primitive local name.
func FamilyByName(name string) (Family, bool) {
	for f := FamilyBoolean; f < familyCount; f++ {
		if familyNames[f] == name {
			return f, true
		}
	}
	return FamilyInvalid, false
}
