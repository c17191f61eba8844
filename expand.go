package unmunch

import "sort"

// maxDepth caps derivation chains at one suffix pass optionally
// followed by one cross-product prefix pass; chains never recurse
// beyond it.
const maxDepth = 2

// maxFrontierPops bounds the total number of states the expansion
// frontier may process. Reaching it silently stops further exploration
// and returns the partial accumulated set; on adversarial rule tables
// this trades completeness for bounded cost.
const maxFrontierPops = 10000

// expandState is one frontier entry of the breadth-first expansion.
type expandState struct {
	word      string
	flags     []string
	hasSuffix bool
	depth     int
}

// Expander generates the closure of derivable word forms over a rule
// table. It performs pure computation over the immutable table, so one
// Expander may serve concurrent callers.
type Expander struct {
	table *RuleTable
}

// NewExpander returns an Expander over table, which may be nil until
// SetRuleTable is called.
func NewExpander(table *RuleTable) *Expander {
	return &Expander{table: table}
}

// SetRuleTable attaches the rule table the expander reads from.
func (e *Expander) SetRuleTable(table *RuleTable) {
	e.table = table
}

// HasRuleTable reports whether a rule table is attached.
func (e *Expander) HasRuleTable() bool {
	return e.table != nil
}

// Expand expands word against every rule in the table. It is the
// fallback used when the word's flags are unknown.
func (e *Expander) Expand(word string) ([]string, error) {
	return e.ExpandAll(word)
}

// ExpandAll tries every rule of every flag once against the bare word,
// with no recursion and no cross-product composition. The result is
// sorted, deduplicated, and always contains word itself.
func (e *Expander) ExpandAll(word string) ([]string, error) {
	if e.table == nil {
		return nil, ErrNoRuleTable
	}

	results := map[string]bool{word: true}
	for _, rules := range e.table.prefixes {
		for _, rule := range rules {
			if rule.CanApply(word, Prefix) {
				results[rule.Apply(word, Prefix)] = true
			}
		}
	}
	for _, rules := range e.table.suffixes {
		for _, rule := range rules {
			if rule.CanApply(word, Suffix) {
				results[rule.Apply(word, Suffix)] = true
			}
		}
	}
	return sortedKeys(results), nil
}

// ExpandWithFlags produces every form derivable from word under the
// given flags: each flag's suffix rules are applied, cross-product
// suffix results are re-expanded once, and prefix rules are applied to
// each state (gated to cross-product rules once a suffix has been
// applied, since both sides must opt in). The result is sorted in
// code-point order, deduplicated, and always contains word itself.
//
// Alias tokens in flags are resolved before the table is indexed.
func (e *Expander) ExpandWithFlags(word string, flags []string) ([]string, error) {
	if e.table == nil {
		return nil, ErrNoRuleTable
	}
	return e.expandWithFlags(word, flags), nil
}

// expandWithFlags is the breadth-first closure loop. The explicit
// frontier with depth and pop-count guards bounds worst-case cost on
// pathological rule tables; truncation is silent by contract.
func (e *Expander) expandWithFlags(word string, flags []string) []string {
	t := e.table
	resolved := t.ExpandFlags(flags)

	results := map[string]bool{word: true}
	queue := []expandState{{word: word, flags: resolved}}
	pops := 0

	for len(queue) > 0 {
		st := queue[0]
		queue = queue[1:]
		pops++
		if pops > maxFrontierPops || st.depth > maxDepth {
			break
		}

		for _, flag := range st.flags {
			for _, rule := range t.SuffixRules(flag) {
				if !rule.CanApply(st.word, Suffix) {
					continue
				}
				out := rule.Apply(st.word, Suffix)
				if results[out] {
					continue
				}
				results[out] = true
				if rule.CrossProduct && st.depth < 1 {
					queue = append(queue, expandState{
						word:      out,
						flags:     st.flags,
						hasSuffix: true,
						depth:     st.depth + 1,
					})
				}
			}
		}

		for _, flag := range st.flags {
			for _, rule := range t.PrefixRules(flag) {
				if st.hasSuffix && !rule.CrossProduct {
					continue
				}
				if rule.CanApply(st.word, Prefix) {
					results[rule.Apply(st.word, Prefix)] = true
				}
			}
		}
	}

	return sortedKeys(results)
}

// sortedKeys returns the keys of set sorted in code-point order.
func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
