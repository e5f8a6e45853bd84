package xsdspace

import "fmt"

// Op selects what a Query asks about its restricted datatype.
type Op string

const (
	// OpSatisfiable asks whether the restriction has a member.
	OpSatisfiable Op = "satisfiable"
	// OpCardinality asks for the number of members.
	OpCardinality Op = "cardinality"
	// OpEnumerate lists members in ascending order, up to Limit.
	OpEnumerate Op = "enumerate"
	// OpContains asks whether Value is a member.
	OpContains Op = "contains"
	// OpNth asks for the member at zero-based position N.
	OpNth Op = "nth"
)

// Query is a lexical datatype question: a built-in datatype, facets in
// lexical form and an operation.
type Query struct {
	Name     string      `yaml:"name" json:"name"`
	Datatype string      `yaml:"datatype" json:"datatype"`
	Op       Op          `yaml:"op" json:"op"`
	Value    string      `yaml:"value,omitempty" json:"value,omitempty"`
	Facets   []FacetSpec `yaml:"facets,omitempty" json:"facets,omitempty"`
	Limit    int         `yaml:"limit,omitempty" json:"limit,omitempty"`
	N        int64       `yaml:"n,omitempty" json:"n,omitempty"`
}

// Result answers a Query. A restriction that fails to compile is reported
// unsatisfiable with the failure in Err. Undecided marks a Satisfiable
// answer that was assumed because no candidate within the scan limit
// passed the restriction's filters. Truncated marks enumerations that
// may have left members out.
type Result struct {
	Err         error    `json:"-"`
	Name        string   `json:"name"`
	Op          Op       `json:"op"`
	Restriction string   `json:"restriction,omitempty"`
	Cardinality string   `json:"cardinality,omitempty"`
	Values      []string `json:"values,omitempty"`
	Error       string   `json:"error,omitempty"`
	Satisfiable bool     `json:"satisfiable"`
	Exact       bool     `json:"exact"`
	Contains    bool     `json:"contains,omitempty"`
	Truncated   bool     `json:"truncated,omitempty"`
	Undecided   bool     `json:"undecided,omitempty"`
}

func (q Query) label() string {
	if q.Name != "" {
		return q.Name
	}
	return fmt.Sprintf("%s %s", q.Op, q.Datatype)
}

func (q Query) validate() error {
	switch q.Op {
	case OpSatisfiable, OpCardinality, OpEnumerate, OpContains, OpNth:
	default:
		return fmt.Errorf("query %q: unknown op %q", q.label(), q.Op)
	}
	if q.Datatype == "" {
		return fmt.Errorf("query %q: missing datatype", q.label())
	}
	if q.Limit < 0 {
		return fmt.Errorf("query %q: negative limit %d", q.label(), q.Limit)
	}
	return nil
}
