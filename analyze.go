package unmunch

import "slices"

// Lookup resolves a word to its flag list. The Dictionary type
// implements it; any word store with the same shape can serve.
type Lookup interface {
	// Lookup returns the flags attached to word and whether word exists.
	Lookup(word string) ([]string, bool)
}

// FindBaseWords proposes and verifies candidate base words (stems) for
// an inflected form. Candidates are generated by reverse-applying affix
// rules, which is guess-and-verify: a candidate counts only when lookup
// knows it and its forward expansion regenerates inflected exactly.
// The verification step is what makes the result correct; the reverse
// transformation alone is never trusted.
//
// Candidate order: the word itself, every suffix rule reversed, every
// prefix rule reversed, then every prefix followed by every suffix rule
// reversed (two-level stemming). The result is sorted and deduplicated;
// no lookup hit yields an empty set.
func (e *Expander) FindBaseWords(inflected string, lookup Lookup) ([]string, error) {
	if e.table == nil {
		return nil, ErrNoRuleTable
	}

	bases := make(map[string]bool)
	verify := func(candidate string) {
		if bases[candidate] {
			return
		}
		flags, ok := lookup.Lookup(candidate)
		if !ok {
			return
		}
		if slices.Contains(e.expandWithFlags(candidate, flags), inflected) {
			bases[candidate] = true
		}
	}

	verify(inflected)

	for _, rules := range e.table.suffixes {
		for _, rule := range rules {
			if candidate, ok := rule.ReverseApply(inflected, Suffix); ok {
				verify(candidate)
			}
		}
	}

	for _, rules := range e.table.prefixes {
		for _, rule := range rules {
			if candidate, ok := rule.ReverseApply(inflected, Prefix); ok {
				verify(candidate)
			}
		}
	}

	// Two-level stemming: strip a prefix, then a suffix from the rest.
	for _, prefixRules := range e.table.prefixes {
		for _, prefixRule := range prefixRules {
			stripped, ok := prefixRule.ReverseApply(inflected, Prefix)
			if !ok {
				continue
			}
			for _, suffixRules := range e.table.suffixes {
				for _, suffixRule := range suffixRules {
					if candidate, ok := suffixRule.ReverseApply(stripped, Suffix); ok {
						verify(candidate)
					}
				}
			}
		}
	}

	return sortedKeys(bases), nil
}

// FindBaseAndExpand recovers the base words of inflected and returns
// the sorted union of their forward expansions. When no base word can
// be verified, the inflected form is returned verbatim as a singleton.
func (e *Expander) FindBaseAndExpand(inflected string, lookup Lookup) ([]string, error) {
	bases, err := e.FindBaseWords(inflected, lookup)
	if err != nil {
		return nil, err
	}
	if len(bases) == 0 {
		return []string{inflected}, nil
	}

	all := make(map[string]bool)
	for _, base := range bases {
		flags, ok := lookup.Lookup(base)
		if !ok {
			continue
		}
		for _, form := range e.expandWithFlags(base, flags) {
			all[form] = true
		}
	}
	return sortedKeys(all), nil
}
