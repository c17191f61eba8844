package unmunch

import "testing"

func mustRule(t *testing.T, flag string, cross bool, strip, add, condition string) *AffixRule {
	t.Helper()
	rule, err := NewAffixRule(flag, cross, strip, add, condition)
	if err != nil {
		t.Fatalf("NewAffixRule(%q, %q, %q, %q): %v", flag, strip, add, condition, err)
	}
	return rule
}

func TestCanApply(t *testing.T) {
	tests := []struct {
		name      string
		strip     string
		add       string
		condition string
		dir       Direction
		word      string
		want      bool
	}{
		{"suffix trivial", "", "s", ".", Suffix, "cat", true},
		{"suffix class hit", "", "ed", "[^e]", Suffix, "work", true},
		{"suffix class miss", "", "ed", "[^e]", Suffix, "love", false},
		{"suffix literal hit", "", "d", "e", Suffix, "love", true},
		{"suffix strip present", "y", "ies", "y", Suffix, "happy", true},
		{"suffix strip absent", "y", "ies", "y", Suffix, "cat", false},
		{"suffix word shorter than strip", "ing", "", ".", Suffix, "a", false},
		{"suffix condition longer than word", "", "s", "abc", Suffix, "ab", false},
		{"prefix trivial", "", "un", ".", Prefix, "happy", true},
		{"prefix strip present", "in", "im", "p", Prefix, "input", true},
		// the condition window starts after the stripped region
		{"prefix condition checks after strip", "in", "im", "in", Prefix, "input", false},
		{"prefix strip absent", "in", "im", ".", Prefix, "output", false},
		{"prefix condition after strip", "a", "an", "b", Prefix, "abc", true},
		{"prefix condition after strip miss", "a", "an", "c", Prefix, "abc", false},
		{"prefix nothing after strip", "ab", "x", "c", Prefix, "ab", false},
		// rune, not byte, indexing
		{"unicode suffix strip", "é", "er", "é", Suffix, "café", true},
		{"unicode prefix strip", "é", "e", ".", Prefix, "école", true},
	}
	for _, tt := range tests {
		rule := mustRule(t, "X", false, tt.strip, tt.add, tt.condition)
		if got := rule.CanApply(tt.word, tt.dir); got != tt.want {
			t.Errorf("%s: CanApply(%q) = %v, want %v", tt.name, tt.word, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		strip string
		add   string
		dir   Direction
		word  string
		want  string
	}{
		{"", "un", Prefix, "happy", "unhappy"},
		{"", "ed", Suffix, "work", "worked"},
		{"y", "ies", Suffix, "happy", "happies"},
		{"in", "im", Prefix, "input", "imput"},
		{"é", "er", Suffix, "café", "cafer"},
		{"é", "e", Prefix, "école", "ecole"},
		{"", "", Suffix, "word", "word"},
	}
	for _, tt := range tests {
		rule := mustRule(t, "X", false, tt.strip, tt.add, ".")
		if got := rule.Apply(tt.word, tt.dir); got != tt.want {
			t.Errorf("Apply(%q, %v) with strip=%q add=%q = %q, want %q",
				tt.word, tt.dir, tt.strip, tt.add, got, tt.want)
		}
	}
}

func TestReverseApply(t *testing.T) {
	tests := []struct {
		strip string
		add   string
		dir   Direction
		word  string
		want  string
		ok    bool
	}{
		{"", "un", Prefix, "unhappy", "happy", true},
		{"", "un", Prefix, "happy", "", false},
		{"", "ed", Suffix, "worked", "work", true},
		{"", "ed", Suffix, "work", "", false},
		{"y", "ies", Suffix, "happies", "happy", true},
		{"é", "er", Suffix, "cafer", "café", true},
		// empty add anchors nothing; strip is simply restored
		{"s", "", Suffix, "cat", "cats", true},
	}
	for _, tt := range tests {
		rule := mustRule(t, "X", false, tt.strip, tt.add, ".")
		got, ok := rule.ReverseApply(tt.word, tt.dir)
		if ok != tt.ok {
			t.Errorf("ReverseApply(%q, %v) ok = %v, want %v", tt.word, tt.dir, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ReverseApply(%q, %v) = %q, want %q", tt.word, tt.dir, got, tt.want)
		}
	}
}

// For every applicable rule, reverse-applying the applied form must
// return the original word. The split can be ambiguous when strip and
// add overlap, but the reconstruction itself is exact.
func TestApplyReverseRoundTrip(t *testing.T) {
	rules := []struct {
		strip, add, condition string
		dir                   Direction
	}{
		{"", "s", ".", Suffix},
		{"", "ed", "[^e]", Suffix},
		{"y", "ies", "y", Suffix},
		{"e", "ing", "e", Suffix},
		{"", "un", ".", Prefix},
		{"in", "im", "in", Prefix},
		{"é", "er", "é", Suffix},
		{"", "", ".", Suffix},
	}
	words := []string{"happy", "work", "love", "cat", "input", "café", "école", "a", ""}

	for _, rr := range rules {
		rule := mustRule(t, "X", false, rr.strip, rr.add, rr.condition)
		for _, word := range words {
			if !rule.CanApply(word, rr.dir) {
				continue
			}
			applied := rule.Apply(word, rr.dir)
			back, ok := rule.ReverseApply(applied, rr.dir)
			if !ok {
				t.Errorf("rule strip=%q add=%q %v: ReverseApply(%q) failed", rr.strip, rr.add, rr.dir, applied)
				continue
			}
			if back != word {
				t.Errorf("rule strip=%q add=%q %v: round trip %q -> %q -> %q",
					rr.strip, rr.add, rr.dir, word, applied, back)
			}
		}
	}
}
