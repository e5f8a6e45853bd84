// Package pattern compiles XML Schema 1.0 regular expressions (the pattern
// facet dialect) into Go regexps.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize bounds the number of compiled patterns kept for reuse.
const cacheSize = 512

var compiled = mustCache()

func mustCache() *lru.Cache[string, *Pattern] {
	c, err := lru.New[string, *Pattern](cacheSize)
	if err != nil {
		panic("pattern: " + err.Error())
	}
	return c
}

// Pattern is a compiled pattern facet value. It matches whole strings.
type Pattern struct {
	re     *regexp.Regexp
	source string
}

// Compile translates an XSD pattern and compiles it. Compiled patterns
// are cached by source and shared between callers.
func Compile(xsd string) (*Pattern, error) {
	if p, ok := compiled.Get(xsd); ok {
		return p, nil
	}
	goPattern, err := Translate(xsd)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(goPattern)
	if err != nil {
		return nil, fmt.Errorf("pattern-syntax-error: failed to compile pattern '%s': %w", xsd, err)
	}
	p := &Pattern{source: xsd, re: re}
	compiled.Add(xsd, p)
	return p, nil
}

// Source returns the XSD pattern text.
func (p *Pattern) Source() string {
	return p.source
}

// Match reports whether the whole of s matches the pattern.
func (p *Pattern) Match(s string) bool {
	return p.re.MatchString(s)
}

// Set groups patterns given in one derivation step; a value must match
// at least one of them.
type Set []*Pattern

// Match reports whether s matches any pattern in the set. The empty set
// matches everything.
func (s Set) Match(text string) bool {
	if len(s) == 0 {
		return true
	}
	for _, p := range s {
		if p.Match(text) {
			return true
		}
	}
	return false
}

// String lists the set's sources, e.g. "'[a-z]+' | '[0-9]+'".
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = "'" + p.source + "'"
	}
	return strings.Join(parts, " | ")
}
