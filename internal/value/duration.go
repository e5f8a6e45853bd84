package value

import (
	"math/big"
	"strconv"
	"strings"
)

// MeanMonthSeconds is the length of an average Gregorian month in seconds
// (146097 days per 400 years divided by 4800 months).
const MeanMonthSeconds = 2629746

const secondsPerDay = 86400

// NewDuration returns a duration value of months plus seconds.
// Both components must carry the same sign (or be zero); seconds is copied.
func NewDuration(months int64, seconds *big.Rat) Value {
	if seconds == nil {
		seconds = new(big.Rat)
	}
	return Value{family: FamilyDuration, months: months, rat: new(big.Rat).Set(seconds)}
}

// Months returns the month component of a duration.
func (v Value) Months() int64 {
	return v.months
}

// MeanSeconds returns the duration length in seconds, counting each month
// as MeanMonthSeconds. It is the primary duration ordering key.
func (v Value) MeanSeconds() *big.Rat {
	total := new(big.Rat).SetInt64(v.months)
	total.Mul(total, big.NewRat(MeanMonthSeconds, 1))
	if v.rat != nil {
		total.Add(total, v.rat)
	}
	return total
}

func (v Value) durationString() string {
	months := v.months
	seconds := new(big.Rat)
	if v.rat != nil {
		seconds.Set(v.rat)
	}
	negative := months < 0 || seconds.Sign() < 0
	if months < 0 {
		months = -months
	}
	seconds.Abs(seconds)

	var buf strings.Builder
	buf.Grow(32)
	if negative {
		buf.WriteByte('-')
	}
	buf.WriteByte('P')

	hasDate := false
	if years := months / 12; years != 0 {
		buf.WriteString(strconv.FormatInt(years, 10))
		buf.WriteByte('Y')
		hasDate = true
	}
	if rem := months % 12; rem != 0 {
		buf.WriteString(strconv.FormatInt(rem, 10))
		buf.WriteByte('M')
		hasDate = true
	}

	whole := new(big.Int).Quo(seconds.Num(), seconds.Denom())
	frac := new(big.Rat).Sub(seconds, new(big.Rat).SetInt(whole))
	days, rest := new(big.Int).QuoRem(whole, big.NewInt(secondsPerDay), new(big.Int))
	if days.Sign() != 0 {
		buf.WriteString(days.String())
		buf.WriteByte('D')
		hasDate = true
	}

	r := rest.Int64()
	hours, minutes, secs := r/3600, (r%3600)/60, r%60
	hasTime := hours != 0 || minutes != 0 || secs != 0 || frac.Sign() != 0
	if !hasDate && !hasTime {
		return "PT0S"
	}
	if !hasTime {
		return buf.String()
	}

	buf.WriteByte('T')
	if hours != 0 {
		buf.WriteString(strconv.FormatInt(hours, 10))
		buf.WriteByte('H')
	}
	if minutes != 0 {
		buf.WriteString(strconv.FormatInt(minutes, 10))
		buf.WriteByte('M')
	}
	if secs != 0 || frac.Sign() != 0 {
		s := new(big.Rat).Add(big.NewRat(secs, 1), frac)
		buf.WriteString(formatRat(s, false))
		buf.WriteByte('S')
	}
	return buf.String()
}
