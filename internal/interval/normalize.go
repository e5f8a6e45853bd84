package interval

import (
	"slices"

	"github.com/jacoelho/xsdspace/internal/valuespace"
)

// normalize is the only place lists are put into canonical form. Every
// constructor and operation funnels its raw intervals through it:
//
//  1. bounds are canonicalized: Unbounded becomes the closed space bound
//     where one exists, an open lower bound becomes closed at its successor
//     and an open upper bound closed at its predecessor when those exist;
//  2. empty intervals are dropped;
//  3. intervals are sorted by lower bound;
//  4. overlapping and touching intervals are merged.
//
// The input slice is not modified.
func normalize(s valuespace.Space, in []Interval) []Interval {
	out := make([]Interval, 0, len(in))
	for _, iv := range in {
		iv, ok := canonical(s, iv)
		if !ok || iv.isEmpty(s) {
			continue
		}
		out = append(out, iv)
	}
	if len(out) == 0 {
		return nil
	}
	slices.SortFunc(out, func(a, b Interval) int {
		return compareLower(s, a.Lower, b.Lower)
	})

	merged := out[:1]
	for _, iv := range out[1:] {
		last := &merged[len(merged)-1]
		if joins(s, *last, iv) {
			if compareUpper(s, iv.Upper, last.Upper) > 0 {
				last.Upper = iv.Upper
			}
			continue
		}
		merged = append(merged, iv)
	}
	return slices.Clip(merged)
}

// canonical rewrites the bounds of iv. It reports false when the interval
// is empty in a way only the space can tell, such as an open lower bound at
// the maximum of a discrete space.
func canonical(s valuespace.Space, iv Interval) (Interval, bool) {
	if iv.Lower.unbounded {
		if lo, ok := s.Min(); ok {
			iv.Lower = Inclusive(lo)
		}
	} else if !iv.Lower.inclusive {
		next, ok := s.Next(iv.Lower.v)
		switch {
		case ok:
			iv.Lower = Inclusive(next)
		case s.Discrete():
			return iv, false
		}
	}
	if iv.Upper.unbounded {
		if hi, ok := s.Max(); ok {
			iv.Upper = Inclusive(hi)
		}
	} else if !iv.Upper.inclusive {
		prev, ok := s.Prev(iv.Upper.v)
		switch {
		case ok:
			iv.Upper = Inclusive(prev)
		case s.Discrete():
			return iv, false
		}
	}
	return iv, true
}

// joins reports whether b, which starts no earlier than a, overlaps or
// touches a so that their union is one interval.
func joins(s valuespace.Space, a, b Interval) bool {
	if a.Upper.unbounded || b.Lower.unbounded {
		return true
	}
	c := s.Compare(a.Upper.v, b.Lower.v)
	switch {
	case c > 0:
		return true
	case c == 0:
		return a.Upper.inclusive || b.Lower.inclusive
	}
	if !a.Upper.inclusive || !b.Lower.inclusive {
		return false
	}
	next, ok := s.Next(a.Upper.v)
	return ok && s.Compare(next, b.Lower.v) == 0
}
