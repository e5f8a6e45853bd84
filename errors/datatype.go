package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a datatype reasoning failure.
// W3C codes are used where XML Schema defines one.
type ErrorCode string

const (
	// ErrIncompatibleValueSpace indicates two lists or datatypes over different value spaces were combined.
	ErrIncompatibleValueSpace ErrorCode = "xsd-incompatible-value-space"
	// ErrOutOfDomain indicates a value or successor outside a bounded value space.
	ErrOutOfDomain ErrorCode = "xsd-out-of-domain"
	// ErrNotDiscrete indicates a successor was requested in a dense value space.
	ErrNotDiscrete ErrorCode = "xsd-not-discrete"
	// ErrUnsupportedFacet indicates a facet that is not applicable to the datatype.
	ErrUnsupportedFacet ErrorCode = "cos-applicable-facets"
	// ErrInvalidFacet indicates a malformed facet (missing value, bad pattern).
	ErrInvalidFacet ErrorCode = "xsd-invalid-facet"
	// ErrUnknownDatatype indicates a datatype name that is not built in.
	ErrUnknownDatatype ErrorCode = "src-resolve"
	// ErrInvalidLiteral indicates a lexical value is invalid for its datatype.
	ErrInvalidLiteral ErrorCode = "cvc-datatype-valid"
)

// Sentinels for errors.Is checks; matching is by code only.
var (
	IncompatibleValueSpace = &Datatype{Code: ErrIncompatibleValueSpace}
	OutOfDomain            = &Datatype{Code: ErrOutOfDomain}
	NotDiscrete            = &Datatype{Code: ErrNotDiscrete}
	UnsupportedFacet       = &Datatype{Code: ErrUnsupportedFacet}
	InvalidFacet           = &Datatype{Code: ErrInvalidFacet}
	UnknownDatatype        = &Datatype{Code: ErrUnknownDatatype}
	InvalidLiteral         = &Datatype{Code: ErrInvalidLiteral}
)

// Datatype describes a datatype reasoning error with its code and the
// datatype, facet and offending value involved when known.
//
//nolint:errname // public API name uses XSD domain term.
type Datatype struct {
	Code     ErrorCode
	Message  string
	Datatype string
	Facet    string
	Actual   string
}

// New builds a Datatype error with a code and message.
func New(code ErrorCode, msg string) *Datatype {
	return &Datatype{Code: code, Message: msg}
}

// Newf formats a message and builds a Datatype error.
func Newf(code ErrorCode, format string, args ...any) *Datatype {
	return New(code, fmt.Sprintf(format, args...))
}

// Error formats the error for display, including code, message, and context.
func (e *Datatype) Error() string {
	if e == nil {
		return "datatype <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Datatype != "" {
		b.WriteString(fmt.Sprintf(" (datatype: %s)", e.Datatype))
	}
	if e.Facet != "" {
		b.WriteString(fmt.Sprintf(" (facet: %s)", e.Facet))
	}
	if e.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", e.Actual))
	}
	return b.String()
}

// Is reports whether target is a Datatype error with the same code.
func (e *Datatype) Is(target error) bool {
	t, ok := target.(*Datatype)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Code == e.Code
}

// WithDatatype returns a copy of e naming the datatype involved.
func (e *Datatype) WithDatatype(name string) *Datatype {
	out := *e
	out.Datatype = name
	return &out
}

// WithFacet returns a copy of e naming the facet involved.
func (e *Datatype) WithFacet(name string) *Datatype {
	out := *e
	out.Facet = name
	return &out
}

// WithActual returns a copy of e carrying the offending value.
func (e *Datatype) WithActual(actual string) *Datatype {
	out := *e
	out.Actual = actual
	return &out
}

// CodeOf extracts the error code of the first Datatype error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var dt *Datatype
	if errors.As(err, &dt) && dt != nil {
		return dt.Code, true
	}
	return "", false
}
