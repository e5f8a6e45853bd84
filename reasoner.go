package xsdspace

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/xsdspace/internal/datatype"
	"github.com/jacoelho/xsdspace/internal/facet"
	"github.com/jacoelho/xsdspace/internal/xiter"
)

// Reasoner evaluates queries. It is safe for concurrent use.
type Reasoner struct {
	opts resolvedOptions
}

// New returns a Reasoner configured by opts.
func New(opts Options) (*Reasoner, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("reasoner options: %w", err)
	}
	return &Reasoner{opts: resolved}, nil
}

// Evaluate answers one query. Failures are reported in Result.Err.
func (r *Reasoner) Evaluate(q Query) Result {
	res := Result{Name: q.label(), Op: q.Op}
	log := r.opts.logger.WithFields(logrus.Fields{"query": res.Name, "datatype": q.Datatype, "op": q.Op})

	base, d, err := r.restrict(q)
	if err != nil {
		log.WithError(err).Debug("restriction failed")
		return res.fail(err)
	}
	res.Restriction = d.String()
	sat, decided := d.Satisfiability()
	res.Satisfiable = sat
	res.Undecided = !decided
	res.Exact = d.Exact()
	res.Cardinality = d.Cardinality().String()
	if !res.Exact {
		log.WithField("filters", d.Filters()).Warn("filters not enumerated; cardinality is an upper bound")
	}
	if res.Undecided {
		log.WithField("scanned", datatype.ResolveLimit).Warn("no member found within the scan limit; satisfiability assumed")
	}

	switch q.Op {
	case OpEnumerate:
		limit := r.opts.maxEnumeration
		if q.Limit > 0 && q.Limit < limit {
			limit = q.Limit
		}
		for v := range xiter.Take(d.Values(), limit+1) {
			if len(res.Values) == limit {
				res.Truncated = true
				break
			}
			res.Values = append(res.Values, v.String())
		}
		if !res.Exact {
			res.Truncated = true
		}
	case OpContains:
		v, err := parseLexical(base, q.Value)
		if err != nil {
			return res.fail(err)
		}
		res.Contains = d.Contains(v)
	case OpNth:
		v, ok := d.Nth(q.N)
		if !ok {
			if !res.Exact {
				return res.fail(fmt.Errorf("query %q: no member at position %d among the first %d candidates", res.Name, q.N, datatype.ResolveLimit))
			}
			return res.fail(fmt.Errorf("query %q: no member at position %d", res.Name, q.N))
		}
		res.Values = []string{v.String()}
	}

	log.WithFields(logrus.Fields{
		"cardinality": res.Cardinality,
		"satisfiable": res.Satisfiable,
	}).Debug("query evaluated")
	return res
}

// EvaluateAll answers queries concurrently, preserving their order. It
// fails only when ctx is done before every query was scheduled.
func (r *Reasoner) EvaluateAll(ctx context.Context, queries []Query) ([]Result, error) {
	results := make([]Result, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return nil, fmt.Errorf("evaluate queries: %w", err)
		}
		g.Go(func() error {
			results[i] = r.Evaluate(q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// restrict returns the queried built-in and its restriction.
func (r *Reasoner) restrict(q Query) (*Datatype, *Datatype, error) {
	if err := q.validate(); err != nil {
		return nil, nil, err
	}
	base, err := datatype.Lookup(q.Datatype)
	if err != nil {
		return nil, nil, err
	}
	facets := make([]Facet, 0, len(q.Facets))
	for _, spec := range q.Facets {
		f, err := ParseFacet(base, spec)
		if err != nil {
			return nil, nil, err
		}
		facets = append(facets, f)
	}
	d, err := facet.Compile(base, facets...)
	if err != nil {
		return nil, nil, err
	}
	return base, d, nil
}

func (res Result) fail(err error) Result {
	res.Err = err
	res.Error = err.Error()
	return res
}
