package lexical

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/jacoelho/xsdspace/internal/value"
)

var (
	// datePattern matches date components in XSD duration format: Y, M, D.
	datePattern = regexp.MustCompile(`(\d+)Y|(\d+)M|(\d+)D`)

	// timePattern matches time components in XSD duration format: H, M, S.
	timePattern = regexp.MustCompile(`(\d+)H|(\d+)M|(\d+(\.\d+)?)S`)

	// durationPattern validates full XSD duration lexical form.
	durationPattern = regexp.MustCompile(`^-?P(\d+Y)?(\d+M)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$`)
)

var secondsPer = map[byte]int64{'D': 86400, 'H': 3600, 'M': 60}

// ParseDuration parses an XSD duration lexical value into its month and
// second components.
func ParseDuration(lexical string) (value.Value, error) {
	s := TrimXMLWhitespace(lexical)
	if s == "" {
		return value.Value{}, fmt.Errorf("empty duration")
	}
	input := s
	negative := s[0] == '-'
	if negative {
		s = s[1:]
	}
	if s == "" || s[0] != 'P' {
		return value.Value{}, fmt.Errorf("duration must start with P")
	}
	s = s[1:]

	datePart, timePart, sawTimeDesignator := strings.Cut(s, "T")
	if strings.IndexByte(timePart, 'T') != -1 {
		return value.Value{}, fmt.Errorf("invalid duration format: multiple T separators")
	}
	if !durationPattern.MatchString(input) {
		return value.Value{}, fmt.Errorf("invalid duration format: %s", input)
	}

	var months int64
	seconds := new(big.Rat)
	hasDateComponent := false
	hasTimeComponent := false

	addMonths := func(digits string, factor int64, label string) error {
		u, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || u > (math.MaxInt64-months)/factor {
			return fmt.Errorf("%s value too large", label)
		}
		months += u * factor
		return nil
	}
	addSeconds := func(digits string, unit byte) {
		n, _ := new(big.Int).SetString(digits, 10)
		n.Mul(n, big.NewInt(secondsPer[unit]))
		seconds.Add(seconds, new(big.Rat).SetInt(n))
	}

	for _, match := range datePattern.FindAllStringSubmatch(datePart, -1) {
		switch {
		case match[1] != "":
			if err := addMonths(match[1], 12, "year"); err != nil {
				return value.Value{}, err
			}
		case match[2] != "":
			if err := addMonths(match[2], 1, "month"); err != nil {
				return value.Value{}, err
			}
		case match[3] != "":
			addSeconds(match[3], 'D')
		}
		hasDateComponent = true
	}

	for _, match := range timePattern.FindAllStringSubmatch(timePart, -1) {
		switch {
		case match[1] != "":
			addSeconds(match[1], 'H')
		case match[2] != "":
			addSeconds(match[2], 'M')
		case match[3] != "":
			sec, err := ParseDecimal(match[3])
			if err != nil {
				return value.Value{}, fmt.Errorf("invalid second value: %w", err)
			}
			seconds.Add(seconds, sec)
		}
		hasTimeComponent = true
	}

	if !hasDateComponent && !hasTimeComponent {
		return value.Value{}, fmt.Errorf("duration must have at least one component")
	}
	if sawTimeDesignator && !hasTimeComponent {
		return value.Value{}, fmt.Errorf("time designator present but no time components specified")
	}
	if negative {
		months = -months
		seconds.Neg(seconds)
	}
	return value.NewDuration(months, seconds), nil
}
