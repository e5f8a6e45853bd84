package lexical

import (
	"strings"
	"testing"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "2001-10-26T21:32:52", want: "2001-10-26T21:32:52"},
		{input: " 2001-10-26T21:32:52.12679 ", want: "2001-10-26T21:32:52.12679"},
		{input: "2001-10-26T21:32:52+02:00", want: "2001-10-26T19:32:52Z"},
		{input: "2001-10-26T19:32:52-00:00", want: "2001-10-26T19:32:52Z"},
		{input: "2000-12-31T24:00:00", want: "2001-01-01T00:00:00"},
		{input: "1998-12-31T23:59:60Z", want: "1999-01-01T00:00:00Z"},
		{input: "-0001-03-01T00:00:00", want: "-0001-03-01T00:00:00"},
		{input: "12345-01-01T00:00:00", want: "12345-01-01T00:00:00"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			v, err := ParseDateTime(tc.input)
			if err != nil {
				t.Fatalf("ParseDateTime() error = %v", err)
			}
			if got := v.String(); got != tc.want {
				t.Fatalf("ParseDateTime() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	for _, input := range []string{
		"0000-01-01T00:00:00",
		"+2001-01-01T00:00:00",
		"01-01-01T00:00:00",
		"02001-01-01T00:00:00",
		"2001-02-29T00:00:00",
		"2001-01-01",
		"2001-01-01T24:00:01",
		"2001-01-01T12:00:60",
		"2001-01-01T00:00:00+14:30",
		"2001-01-01T00:00:00.",
	} {
		if _, err := ParseDateTime(input); err == nil {
			t.Fatalf("ParseDateTime(%q) expected error", input)
		}
	}
}

func TestParseFractionalSecondsTooLong(t *testing.T) {
	_, err := ParseDateTime("2024-01-01T00:00:00.123456789123Z")
	if err == nil {
		t.Fatalf("expected error for fractional seconds > 9 digits")
	}
	if !strings.Contains(err.Error(), "fractional seconds") {
		t.Fatalf("error = %v, want fractional seconds message", err)
	}
	if _, err := ParseTime("23:59:59.123456789123Z"); err == nil {
		t.Fatalf("expected time error for fractional seconds > 9 digits")
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "13:20:00", want: "13:20:00"},
		{input: "24:00:00", want: "00:00:00"},
		{input: "01:00:00+02:00", want: "23:00:00Z"},
		{input: "23:59:60", want: "00:00:00"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			v, err := ParseTime(tc.input)
			if err != nil {
				t.Fatalf("ParseTime() error = %v", err)
			}
			if got := v.String(); got != tc.want {
				t.Fatalf("ParseTime() = %s, want %s", got, tc.want)
			}
		})
	}
	if _, err := ParseTime("24:01:00"); err == nil {
		t.Fatalf("expected error for invalid 24-hour time")
	}
	if _, err := ParseTime("12:00:60"); err == nil {
		t.Fatalf("expected error for leap second outside 23:59")
	}
}

func TestParseCalendarFragments(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (string, error)
		input string
		want  string
	}{
		{name: "date", parse: stringOf(ParseDate), input: "2024-02-29", want: "2024-02-29"},
		{name: "date tz", parse: stringOf(ParseDate), input: "2024-02-29-05:00", want: "2024-02-29-05:00"},
		{name: "gYearMonth", parse: stringOf(ParseGYearMonth), input: "1999-05Z", want: "1999-05Z"},
		{name: "gYear negative", parse: stringOf(ParseGYear), input: "-0044", want: "-0044"},
		{name: "gYear tz", parse: stringOf(ParseGYear), input: "2000+01:00", want: "2000+01:00"},
		{name: "gMonthDay leap", parse: stringOf(ParseGMonthDay), input: "--02-29", want: "--02-29"},
		{name: "gMonth", parse: stringOf(ParseGMonth), input: "--12", want: "--12"},
		{name: "gDay", parse: stringOf(ParseGDay), input: "---31Z", want: "---31Z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.parse(tc.input)
			if err != nil {
				t.Fatalf("parse(%q) error = %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("parse(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseCalendarFragmentsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (string, error)
		input string
	}{
		{name: "date no leap", parse: stringOf(ParseDate), input: "2023-02-29"},
		{name: "gYearMonth month 13", parse: stringOf(ParseGYearMonth), input: "2000-13"},
		{name: "gYear short", parse: stringOf(ParseGYear), input: "200"},
		{name: "gMonthDay 04-31", parse: stringOf(ParseGMonthDay), input: "--04-31"},
		{name: "gMonth legacy", parse: stringOf(ParseGMonth), input: "--12--"},
		{name: "gDay 32", parse: stringOf(ParseGDay), input: "---32"},
		{name: "gDay empty", parse: stringOf(ParseGDay), input: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.parse(tc.input); err == nil {
				t.Fatalf("parse(%q) expected error", tc.input)
			}
		})
	}
}
