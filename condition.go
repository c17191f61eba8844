package unmunch

import "fmt"

// condClass matches exactly one rune of a probe window: a literal
// character, the "." wildcard, or a bracket class.
type condClass struct {
	any     bool
	negate  bool
	set     map[rune]bool
	literal rune
}

func (c condClass) match(r rune) bool {
	switch {
	case c.any:
		return true
	case c.set != nil:
		return c.set[r] != c.negate
	default:
		return r == c.literal
	}
}

// Condition is a compiled position-anchored pattern constraining which
// words an affix rule may apply to. It is immutable after compilation
// and safe for concurrent use.
//
// Grammar: a literal character matches itself, "." matches any single
// character, "[abc]" matches one character from the set and "[^abc]"
// one character outside it. The empty string and a bare "." match
// unconditionally.
type Condition struct {
	src     string
	classes []condClass
}

// compileCondition parses src into a Condition. An unclosed or empty
// bracket class yields ErrMalformedCondition.
func compileCondition(src string) (Condition, error) {
	if src == "" || src == "." {
		return Condition{src: src}, nil
	}

	runes := []rune(src)
	classes := make([]condClass, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '[':
			i++
			negate := false
			if i < len(runes) && runes[i] == '^' {
				negate = true
				i++
			}
			set := make(map[rune]bool)
			for i < len(runes) && runes[i] != ']' {
				set[runes[i]] = true
				i++
			}
			if i >= len(runes) {
				return Condition{}, fmt.Errorf("%w: unclosed bracket in %q", ErrMalformedCondition, src)
			}
			if len(set) == 0 {
				return Condition{}, fmt.Errorf("%w: empty bracket class in %q", ErrMalformedCondition, src)
			}
			classes = append(classes, condClass{set: set, negate: negate})
		case '.':
			classes = append(classes, condClass{any: true})
		default:
			classes = append(classes, condClass{literal: runes[i]})
		}
	}
	return Condition{src: src, classes: classes}, nil
}

// Length returns the number of pattern elements, i.e. the size in runes
// of the window the condition is checked against.
func (c Condition) Length() int {
	return len(c.classes)
}

// Trivial reports whether the condition matches unconditionally.
func (c Condition) Trivial() bool {
	return len(c.classes) == 0
}

// match reports whether window satisfies the pattern. A window shorter
// than the pattern never matches; element i is checked against rune i.
func (c Condition) match(window []rune) bool {
	if len(window) < len(c.classes) {
		return false
	}
	for i, cl := range c.classes {
		if !cl.match(window[i]) {
			return false
		}
	}
	return true
}

// String returns the condition source text.
func (c Condition) String() string {
	return c.src
}
