// Package unmunch expands compact hunspell-style dictionaries (base
// words tagged with affix rule flags) into the full explicit word list
// they describe, and recovers base words from inflected forms by
// guess-and-verify reverse rule application.
//
// The rule table and dictionary are loaded once from .aff/.dic files
// and are immutable afterward; all expansion and analysis operations
// are pure computation over those snapshots and may run concurrently.
package unmunch

import "fmt"

// Unmunch wires an affix rule table, a dictionary and the expansion
// engine into the complete word-list expansion pipeline.
type Unmunch struct {
	table    *RuleTable
	dict     *Dictionary
	expander *Expander
}

// New returns an empty pipeline; load an affix file (and usually a
// dictionary) before expanding.
func New() *Unmunch {
	return &Unmunch{expander: NewExpander(nil)}
}

// LoadAffixFile loads the .aff rule file at path and attaches the
// resulting table to the expander.
func (u *Unmunch) LoadAffixFile(path string) error {
	table, err := LoadAffixFile(path)
	if err != nil {
		return err
	}
	u.table = table
	u.expander.SetRuleTable(table)
	return nil
}

// LoadDictionary loads the .dic word list at path.
func (u *Unmunch) LoadDictionary(path string) error {
	dict, err := LoadDictionary(path)
	if err != nil {
		return err
	}
	u.dict = dict
	return nil
}

// SetRuleTable attaches an already-built rule table, for callers that
// ingest rules from a source other than a .aff file.
func (u *Unmunch) SetRuleTable(table *RuleTable) {
	u.table = table
	u.expander.SetRuleTable(table)
}

// SetDictionary attaches an already-built dictionary.
func (u *Unmunch) SetDictionary(dict *Dictionary) {
	u.dict = dict
}

// RuleTable returns the attached rule table, nil before loading.
func (u *Unmunch) RuleTable() *RuleTable {
	return u.table
}

// Dictionary returns the attached dictionary, nil before loading.
func (u *Unmunch) Dictionary() *Dictionary {
	return u.dict
}

// Expander returns the expansion engine over the attached rule table.
func (u *Unmunch) Expander() *Expander {
	return u.expander
}

// ExpandWord expands a single word against every rule in the table,
// for input whose flags are unknown.
func (u *Unmunch) ExpandWord(word string) ([]string, error) {
	return u.expander.Expand(word)
}

// ExpandWords expands each word against every rule and concatenates
// the results, deduplicated in first-seen order.
func (u *Unmunch) ExpandWords(words []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, word := range words {
		expanded, err := u.expander.Expand(word)
		if err != nil {
			return nil, err
		}
		for _, form := range expanded {
			if !seen[form] {
				seen[form] = true
				out = append(out, form)
			}
		}
	}
	return out, nil
}

// ExpandEntry expands a word using the flags recorded for it in the
// dictionary; a word absent from the dictionary is returned verbatim.
func (u *Unmunch) ExpandEntry(word string) ([]string, error) {
	if u.dict == nil {
		return nil, ErrNoDictionary
	}
	entry, ok := u.dict.Entry(word)
	if !ok {
		return []string{word}, nil
	}
	return u.expander.ExpandWithFlags(entry.Word, entry.Flags)
}

// FindBaseWords recovers verified base words for an inflected form
// using the dictionary as the lookup.
func (u *Unmunch) FindBaseWords(word string) ([]string, error) {
	if u.dict == nil {
		return nil, ErrNoDictionary
	}
	return u.expander.FindBaseWords(word, u.dict)
}

// FindBaseAndExpand recovers the base words of an inflected form and
// returns the union of their expansions, or the word itself when no
// base can be verified.
func (u *Unmunch) FindBaseAndExpand(word string) ([]string, error) {
	if u.dict == nil {
		return nil, ErrNoDictionary
	}
	return u.expander.FindBaseAndExpand(word, u.dict)
}

// Unmunch expands every dictionary entry with its flags and returns
// the full word list, deduplicated in first-seen order. Entries without
// flags contribute themselves only.
func (u *Unmunch) Unmunch() ([]string, error) {
	if u.dict == nil {
		return nil, ErrNoDictionary
	}
	if u.table == nil {
		return nil, ErrNoRuleTable
	}

	seen := make(map[string]bool)
	var out []string
	for _, entry := range u.dict.Entries() {
		expanded := []string{entry.Word}
		if len(entry.Flags) > 0 {
			var err error
			expanded, err = u.expander.ExpandWithFlags(entry.Word, entry.Flags)
			if err != nil {
				return nil, fmt.Errorf("expand %q: %w", entry.Word, err)
			}
		}
		for _, form := range expanded {
			if !seen[form] {
				seen[form] = true
				out = append(out, form)
			}
		}
	}
	return out, nil
}
