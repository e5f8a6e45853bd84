package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// re2MaxRepeat is the maximum repeat count supported by RE2
	re2MaxRepeat = 1000
	// Use Unicode decimal digits (Nd) from Go's regexp tables for XSD \d semantics.
	digitContent    = `\p{Nd}`
	notDigitContent = `\P{Nd}`
	spaceContent    = `\x20\t\n\r`
	notWordContent  = `\p{P}\p{Z}\p{C}`
	// XML 1.0 NameStartChar and NameChar ranges (XSD \i and \c).
	nameStartContent = `:A-Z_a-z` +
		`\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{2FF}\x{370}-\x{37D}\x{37F}-\x{1FFF}` +
		`\x{200C}-\x{200D}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}` +
		`\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}\x{10000}-\x{EFFFF}`
	nameContent = nameStartContent +
		`\-.0-9\x{B7}\x{0300}-\x{036F}\x{203F}-\x{2040}`
)

// escapeKind classifies a backslash escape.
type escapeKind uint8

const (
	// escapeChar is a single-character escape such as \n or \*.
	escapeChar escapeKind = iota
	// escapeSet is a multi-character escape RE2 can embed in a class.
	escapeSet
	// escapeNegatedSet is a complemented escape that RE2 can only express
	// as a negated class of its own.
	escapeNegatedSet
)

type escape struct {
	content string // class content; for escapeNegatedSet, the complemented content
	char    rune
	kind    escapeKind
}

// classState tracks one character class while it is translated.
type classState struct {
	content     strings.Builder
	negatedSets []string
	start       int
	lastChar    rune
	negated     bool
	empty       bool
	lastIsChar  bool
	lastRange   bool
	pendingDash bool
}

type translator struct {
	src        string
	out        strings.Builder
	class      *classState
	pos        int
	groups     int
	quantified bool
}

// Translate rewrites an XSD 1.0 pattern in Go regexp (RE2) syntax, anchored
// to match whole strings. Constructs RE2 cannot express fail with a
// "pattern-unsupported" error rather than being approximated.
func Translate(xsd string) (string, error) {
	t := &translator{src: xsd}
	t.out.Grow(len(xsd) * 4)
	for t.pos < len(t.src) {
		var err error
		if t.class != nil {
			err = t.classStep()
		} else {
			err = t.step()
		}
		if err != nil {
			return "", err
		}
	}
	if t.class != nil {
		return "", fmt.Errorf("pattern-syntax-error: unclosed character class")
	}
	if t.groups > 0 {
		return "", fmt.Errorf("pattern-syntax-error: unclosed '(' in pattern")
	}
	return `^(?:` + t.out.String() + `)$`, nil
}

func (t *translator) next() rune {
	r, size := utf8.DecodeRuneInString(t.src[t.pos:])
	t.pos += size
	return r
}

func (t *translator) peek() (rune, bool) {
	if t.pos >= len(t.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.src[t.pos:])
	return r, true
}

func (t *translator) lazyError() error {
	start := max(t.pos-3, 0)
	end := min(t.pos+1, len(t.src))
	return fmt.Errorf("pattern-unsupported: non-greedy quantifier (lazy quantifier) not supported in XSD 1.0 (e.g., %q)", t.src[start:end])
}

// step translates one token outside a character class.
func (t *translator) step() error {
	start := t.pos
	r := t.next()
	if t.quantified && (r == '?' || r == '*' || r == '+' || r == '{') {
		t.pos = start
		return t.lazyError()
	}
	t.quantified = false

	switch r {
	case '\\':
		e, err := t.escape()
		if err != nil {
			return err
		}
		switch e.kind {
		case escapeChar:
			t.out.WriteString(regexp.QuoteMeta(string(e.char)))
		case escapeSet:
			t.out.WriteString("[" + e.content + "]")
		default:
			t.out.WriteString("[^" + e.content + "]")
		}
	case '[':
		t.openClass(start)
	case ']':
		return fmt.Errorf("pattern-syntax-error: ']' is not valid outside a character class")
	case '^', '$':
		t.out.WriteString(`\` + string(r))
	case '.':
		t.out.WriteString(`[^\n\r]`)
	case '|':
		t.out.WriteByte('|')
	case '*', '+', '?':
		t.out.WriteRune(r)
		t.quantified = true
	case '{':
		t.pos = start
		repeat, err := t.repeat()
		if err != nil {
			return err
		}
		t.out.WriteString(repeat)
		t.quantified = true
	case '(':
		if next, ok := t.peek(); ok && next == '?' {
			end := t.pos + 1
			for end < len(t.src) && t.src[end] != ')' && t.src[end] != ':' {
				end++
			}
			return fmt.Errorf("pattern-syntax-error: group prefix (?%s) is not valid XSD 1.0 syntax", t.src[t.pos+1:end])
		}
		t.groups++
		t.out.WriteByte('(')
	case ')':
		if t.groups == 0 {
			return fmt.Errorf("pattern-syntax-error: unbalanced ')' in pattern")
		}
		t.groups--
		t.out.WriteByte(')')
	default:
		t.out.WriteString(regexp.QuoteMeta(string(r)))
	}
	return nil
}

func (t *translator) openClass(start int) {
	c := &classState{start: start, empty: true}
	if next, ok := t.peek(); ok && next == '^' {
		c.negated = true
		t.pos++
	}
	t.class = c
}

// classStep translates one token inside a character class.
func (t *translator) classStep() error {
	c := t.class
	r := t.next()
	switch r {
	case '[':
		if c.pendingDash {
			return fmt.Errorf("pattern-unsupported: character-class subtraction (-[) not supported in %q", t.src)
		}
		return fmt.Errorf("pattern-unsupported: nested character classes not supported")
	case ']':
		if c.pendingDash {
			// trailing dash is literal
			c.pendingDash = false
			c.content.WriteString(`\-`)
		}
		return t.closeClass()
	case '-':
		return t.classDash()
	case '\\':
		e, err := t.escape()
		if err != nil {
			return err
		}
		switch e.kind {
		case escapeChar:
			return t.classChar(e.char)
		case escapeSet:
			if c.pendingDash {
				return fmt.Errorf("pattern-syntax-error: '-' cannot be followed by a multi-character escape in %q", t.src)
			}
			c.content.WriteString(e.content)
		default:
			if c.pendingDash {
				return fmt.Errorf("pattern-syntax-error: '-' cannot be followed by a multi-character escape in %q", t.src)
			}
			c.negatedSets = append(c.negatedSets, e.content)
		}
		c.empty, c.lastIsChar, c.lastRange = false, false, false
		return nil
	default:
		return t.classChar(r)
	}
}

func (t *translator) classDash() error {
	c := t.class
	next, _ := t.peek()
	switch {
	case c.empty && !c.pendingDash:
		// leading dash is literal
		return t.classChar('-')
	case next == ']' && !c.pendingDash:
		// trailing dash is literal
		return t.classChar('-')
	case next == '[':
		return fmt.Errorf("pattern-unsupported: character-class subtraction (-[) not supported in %q", t.src)
	case c.lastRange:
		return fmt.Errorf("pattern-syntax-error: '-' cannot follow a range in character class at position %d in %q", t.pos-1, t.src)
	case c.pendingDash:
		return fmt.Errorf("pattern-syntax-error: consecutive dashes in character class at position %d in %q", t.pos-1, t.src)
	case !c.lastIsChar:
		return fmt.Errorf("pattern-syntax-error: '-' cannot follow a non-character item in character class at position %d in %q", t.pos-1, t.src)
	}
	c.pendingDash = true
	return nil
}

func (t *translator) classChar(r rune) error {
	c := t.class
	if c.pendingDash {
		if c.lastChar > r {
			return fmt.Errorf("pattern-syntax-error: invalid range '%c-%c' (start > end) in character class starting at position %d in %q",
				c.lastChar, r, c.start, t.src)
		}
		c.content.WriteByte('-')
		c.content.WriteString(quoteClassChar(r))
		c.pendingDash = false
		c.lastRange = true
		c.lastIsChar = true
		c.lastChar = r
		c.empty = false
		return nil
	}
	c.content.WriteString(quoteClassChar(r))
	c.lastChar = r
	c.lastIsChar = true
	c.lastRange = false
	c.empty = false
	return nil
}

func (t *translator) closeClass() error {
	c := t.class
	t.class = nil
	if c.empty {
		return fmt.Errorf("pattern-syntax-error: empty character class")
	}
	content := c.content.String()
	if len(c.negatedSets) == 0 {
		if c.negated {
			t.out.WriteString("[^" + content + "]")
		} else {
			t.out.WriteString("[" + content + "]")
		}
		return nil
	}
	if c.negated {
		return fmt.Errorf("pattern-unsupported: negated character class with \\w, \\S, \\I, or \\C is not expressible in RE2")
	}
	parts := make([]string, 0, len(c.negatedSets)+1)
	for _, set := range c.negatedSets {
		parts = append(parts, "[^"+set+"]")
	}
	if content != "" {
		parts = append(parts, "["+content+"]")
	}
	if len(parts) == 1 {
		t.out.WriteString(parts[0])
	} else {
		t.out.WriteString(`(?:` + strings.Join(parts, "|") + `)`)
	}
	return nil
}

func quoteClassChar(r rune) string {
	switch r {
	case '\\', ']', '[', '^', '-':
		return `\` + string(r)
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	return string(r)
}

// escape reads the escape sequence following a backslash.
func (t *translator) escape() (escape, error) {
	if t.pos >= len(t.src) {
		return escape{}, fmt.Errorf("pattern-syntax-error: escape sequence at end of pattern")
	}
	r := t.next()
	switch r {
	case 'n':
		return escape{kind: escapeChar, char: '\n'}, nil
	case 'r':
		return escape{kind: escapeChar, char: '\r'}, nil
	case 't':
		return escape{kind: escapeChar, char: '\t'}, nil
	case '\\', '|', '.', '?', '*', '+', '(', ')', '{', '}', '-', '[', ']', '^', '$':
		return escape{kind: escapeChar, char: r}, nil
	case 's':
		return escape{kind: escapeSet, content: spaceContent}, nil
	case 'S':
		return escape{kind: escapeNegatedSet, content: spaceContent}, nil
	case 'd':
		return escape{kind: escapeSet, content: digitContent}, nil
	case 'D':
		return escape{kind: escapeSet, content: notDigitContent}, nil
	case 'w':
		return escape{kind: escapeNegatedSet, content: notWordContent}, nil
	case 'W':
		return escape{kind: escapeSet, content: notWordContent}, nil
	case 'i':
		return escape{kind: escapeSet, content: nameStartContent}, nil
	case 'I':
		return escape{kind: escapeNegatedSet, content: nameStartContent}, nil
	case 'c':
		return escape{kind: escapeSet, content: nameContent}, nil
	case 'C':
		return escape{kind: escapeNegatedSet, content: nameContent}, nil
	case 'p', 'P':
		return t.property(r == 'P')
	case 'u':
		return escape{}, fmt.Errorf("pattern-syntax-error: \\u escape is not valid XSD 1.0 syntax (use XML character reference &#x; instead)")
	}
	if r >= '0' && r <= '9' {
		return escape{}, fmt.Errorf("pattern-syntax-error: \\%c backreference is not valid XSD 1.0 syntax", r)
	}
	return escape{}, fmt.Errorf("pattern-syntax-error: \\%c is not a valid XSD 1.0 escape sequence", r)
}

// property translates \p{Name} and \P{Name}. Category names pass through;
// block escapes (IsBasicLatin, ...) have no RE2 counterpart.
func (t *translator) property(negated bool) (escape, error) {
	if t.pos >= len(t.src) || t.src[t.pos] != '{' {
		return escape{}, fmt.Errorf("pattern-syntax-error: invalid Unicode property escape")
	}
	closeIdx := strings.IndexByte(t.src[t.pos:], '}')
	if closeIdx < 0 {
		return escape{}, fmt.Errorf("pattern-syntax-error: incomplete Unicode property escape")
	}
	name := t.src[t.pos+1 : t.pos+closeIdx]
	t.pos += closeIdx + 1
	if strings.HasPrefix(name, "Is") || strings.HasPrefix(name, "In") {
		return escape{}, fmt.Errorf("pattern-unsupported: Unicode block escape %q not supported (Go regexp limitation)", `\p{`+name+`}`)
	}
	if _, err := regexp.Compile(`\p{` + name + `}`); err != nil {
		return escape{}, fmt.Errorf("pattern-unsupported: Unicode property %q not supported by Go regexp", name)
	}
	if negated {
		return escape{kind: escapeSet, content: `\P{` + name + `}`}, nil
	}
	return escape{kind: escapeSet, content: `\p{` + name + `}`}, nil
}

// repeat parses a counted repeat {m}, {m,} or {m,n} at the current position
// and checks it against RE2's limits.
func (t *translator) repeat() (string, error) {
	closeIdx := strings.IndexByte(t.src[t.pos:], '}')
	if closeIdx < 0 {
		return "", fmt.Errorf("pattern-syntax-error: unclosed repeat quantifier")
	}
	text := t.src[t.pos : t.pos+closeIdx+1]
	content := text[1 : len(text)-1]
	t.pos += closeIdx + 1

	lo, hi, hasMax := 0, 0, true
	var err error
	if before, after, ok := strings.Cut(content, ","); ok {
		if lo, err = strconv.Atoi(before); err != nil {
			return "", fmt.Errorf("pattern-syntax-error: invalid repeat quantifier min value")
		}
		if after == "" {
			hasMax = false
		} else if hi, err = strconv.Atoi(after); err != nil {
			return "", fmt.Errorf("pattern-syntax-error: invalid repeat quantifier max value")
		}
	} else {
		if lo, err = strconv.Atoi(content); err != nil {
			return "", fmt.Errorf("pattern-syntax-error: invalid repeat quantifier")
		}
		hi = lo
	}

	switch {
	case lo < 0:
		return "", fmt.Errorf("pattern-syntax-error: repeat quantifier min must be non-negative")
	case hasMax && hi < lo:
		return "", fmt.Errorf("pattern-syntax-error: repeat quantifier max must be >= min")
	case lo > re2MaxRepeat || (hasMax && hi > re2MaxRepeat):
		return "", fmt.Errorf("pattern-unsupported: repeat %s exceeds RE2 limit of %d", text, re2MaxRepeat)
	}
	return text, nil
}
