package unmunch

import "fmt"

// FlagMode declares how flag identifiers are encoded in dictionary
// entries and AF alias lines.
type FlagMode int

const (
	// FlagSingle is the default: one ASCII character per flag.
	FlagSingle FlagMode = iota
	// FlagLong encodes each flag as a two-character pair.
	FlagLong
	// FlagNumeric encodes flags as comma-separated decimal numbers.
	FlagNumeric
	// FlagUTF8 encodes each flag as a single Unicode code point.
	FlagUTF8
)

func (m FlagMode) String() string {
	switch m {
	case FlagLong:
		return "long"
	case FlagNumeric:
		return "num"
	case FlagUTF8:
		return "UTF-8"
	default:
		return "single"
	}
}

// RuleTable maps flags to their affix rules, split into a prefix table
// and a suffix table. It is built once by a loader and must be treated
// as read-only afterward; concurrent readers need no locking.
type RuleTable struct {
	// prefixes maps flag → ordered prefix rules.
	prefixes map[string][]*AffixRule
	// suffixes maps flag → ordered suffix rules.
	suffixes map[string][]*AffixRule
	// aliases maps an AF alias key to its literal flag list.
	aliases map[string][]string

	mode      FlagMode
	fullStrip bool
}

// NewRuleTable returns an empty table in FlagSingle mode.
func NewRuleTable() *RuleTable {
	return &RuleTable{
		prefixes: make(map[string][]*AffixRule),
		suffixes: make(map[string][]*AffixRule),
		aliases:  make(map[string][]string),
	}
}

// AddRule compiles and registers one affix rule record. It is a
// load-time operation; the table must not be mutated once shared.
func (t *RuleTable) AddRule(dir Direction, flag string, crossProduct bool, strip, add, condition string) error {
	if flag == "" {
		return fmt.Errorf("%w: empty flag", ErrInvalidRuleRecord)
	}
	rule, err := NewAffixRule(flag, crossProduct, strip, add, condition)
	if err != nil {
		return err
	}
	if dir == Prefix {
		t.prefixes[flag] = append(t.prefixes[flag], rule)
	} else {
		t.suffixes[flag] = append(t.suffixes[flag], rule)
	}
	return nil
}

// AddAlias registers an AF alias key with its resolved flag list.
// Load-time only, like AddRule.
func (t *RuleTable) AddAlias(key string, flags []string) {
	t.aliases[key] = flags
}

// SetFlagMode records the declared flag representation. Load-time only.
func (t *RuleTable) SetFlagMode(m FlagMode) {
	t.mode = m
}

// FlagMode returns the declared flag representation.
func (t *RuleTable) FlagMode() FlagMode {
	return t.mode
}

// SetFullStrip records the FULLSTRIP directive. Load-time only.
func (t *RuleTable) SetFullStrip(v bool) {
	t.fullStrip = v
}

// FullStrip reports whether the FULLSTRIP directive was declared.
func (t *RuleTable) FullStrip() bool {
	return t.fullStrip
}

// PrefixRules returns the prefix rules registered for flag. The
// returned slice is the table's own storage and must not be modified.
func (t *RuleTable) PrefixRules(flag string) []*AffixRule {
	return t.prefixes[flag]
}

// SuffixRules returns the suffix rules registered for flag, under the
// same read-only contract as PrefixRules.
func (t *RuleTable) SuffixRules(flag string) []*AffixRule {
	return t.suffixes[flag]
}

// PrefixFlags returns the flags that have at least one prefix rule, in
// no particular order.
func (t *RuleTable) PrefixFlags() []string {
	flags := make([]string, 0, len(t.prefixes))
	for f := range t.prefixes {
		flags = append(flags, f)
	}
	return flags
}

// SuffixFlags returns the flags that have at least one suffix rule, in
// no particular order.
func (t *RuleTable) SuffixFlags() []string {
	flags := make([]string, 0, len(t.suffixes))
	for f := range t.suffixes {
		flags = append(flags, f)
	}
	return flags
}

// ResolveAlias expands an AF alias key into its flag list, falling back
// to the literal key when the alias is unknown.
func (t *RuleTable) ResolveAlias(alias string) []string {
	if flags, ok := t.aliases[alias]; ok {
		out := make([]string, len(flags))
		copy(out, flags)
		return out
	}
	return []string{alias}
}

// ExpandFlags resolves alias tokens in flags: any all-decimal-digit
// token is replaced by its aliased flag list (or kept verbatim when
// unresolved); every other token passes through unchanged. It must run
// before flags are used to index the table.
func (t *RuleTable) ExpandFlags(flags []string) []string {
	expanded := make([]string, 0, len(flags))
	for _, flag := range flags {
		if flag != "" && allDigits(flag) {
			expanded = append(expanded, t.ResolveAlias(flag)...)
			continue
		}
		expanded = append(expanded, flag)
	}
	return expanded
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
