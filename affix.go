package unmunch

import "strings"

// Direction selects which side of a word an affix rule transforms.
type Direction int

const (
	Prefix Direction = iota
	Suffix
)

func (d Direction) String() string {
	if d == Prefix {
		return "prefix"
	}
	return "suffix"
}

// AffixRule is a single strip/add transformation tagged with a flag and
// gated by a condition. All offsets are rune offsets, never byte
// offsets, so rules behave correctly on non-ASCII words.
type AffixRule struct {
	// Flag is the identifier dictionary entries use to select this rule.
	Flag string
	// CrossProduct permits composition with an opposite-kind rule
	// (prefix with suffix) in one derivation.
	CrossProduct bool
	// Strip is the text removed from the word edge before Add is attached.
	Strip string
	// Add is the affix text attached in place of Strip.
	Add string
	// Cond constrains which words the rule applies to.
	Cond Condition

	stripRunes []rune
	addRunes   []rune
}

// NewAffixRule compiles condition and builds a rule. The condition "."
// or "" matches unconditionally.
func NewAffixRule(flag string, crossProduct bool, strip, add, condition string) (*AffixRule, error) {
	cond, err := compileCondition(condition)
	if err != nil {
		return nil, err
	}
	return &AffixRule{
		Flag:         flag,
		CrossProduct: crossProduct,
		Strip:        strip,
		Add:          add,
		Cond:         cond,
		stripRunes:   []rune(strip),
		addRunes:     []rune(add),
	}, nil
}

// CanApply reports whether the rule may be applied to word in the given
// direction: the word must be at least as long as Strip (in runes),
// carry Strip at the relevant edge, and satisfy the condition.
//
// The condition window is the last Length() runes of the word for a
// suffix rule, and the Length() runes immediately after the stripped
// region for a prefix rule.
func (r *AffixRule) CanApply(word string, dir Direction) bool {
	runes := []rune(word)
	if len(runes) < len(r.stripRunes) {
		return false
	}

	if dir == Prefix {
		if r.Strip != "" && !strings.HasPrefix(word, r.Strip) {
			return false
		}
		if r.Cond.Trivial() {
			return true
		}
		start := len(r.stripRunes)
		if start >= len(runes) {
			return false
		}
		end := start + r.Cond.Length()
		if end > len(runes) {
			end = len(runes)
		}
		return r.Cond.match(runes[start:end])
	}

	if r.Strip != "" && !strings.HasSuffix(word, r.Strip) {
		return false
	}
	if r.Cond.Trivial() {
		return true
	}
	start := len(runes) - r.Cond.Length()
	if start < 0 {
		start = 0
	}
	return r.Cond.match(runes[start:])
}

// Apply performs the transformation. Callers are expected to have
// checked CanApply first; Apply itself never panics on short words.
func (r *AffixRule) Apply(word string, dir Direction) string {
	runes := []rune(word)
	n := len(r.stripRunes)
	if n > len(runes) {
		n = len(runes)
	}
	if dir == Prefix {
		return r.Add + string(runes[n:])
	}
	return string(runes[:len(runes)-n]) + r.Add
}

// ReverseApply is the candidate-generating inverse of Apply: it removes
// Add from the word edge and restores Strip. It requires only that the
// Add anchor is present, so it produces syntactically plausible stems
// that may not exist; callers must verify candidates by forward
// re-expansion. When Strip and Add overlap (one is an edge of the
// other) the split is ambiguous and the returned stem is only one of
// the possible readings.
func (r *AffixRule) ReverseApply(word string, dir Direction) (string, bool) {
	runes := []rune(word)
	n := len(r.addRunes)
	if n > len(runes) {
		n = len(runes)
	}
	if dir == Prefix {
		if r.Add != "" && !strings.HasPrefix(word, r.Add) {
			return "", false
		}
		return r.Strip + string(runes[n:]), true
	}
	if r.Add != "" && !strings.HasSuffix(word, r.Add) {
		return "", false
	}
	return string(runes[:len(runes)-n]) + r.Strip, true
}
