package unmunch

import (
	"errors"
	"reflect"
	"testing"
)

func TestAddRule(t *testing.T) {
	table := NewRuleTable()
	if err := table.AddRule(Prefix, "UN", true, "", "un", "."); err != nil {
		t.Fatalf("AddRule: %v", err)
	}
	if err := table.AddRule(Suffix, "ED", true, "", "ed", "."); err != nil {
		t.Fatalf("AddRule: %v", err)
	}

	if rules := table.PrefixRules("UN"); len(rules) != 1 || rules[0].Add != "un" {
		t.Errorf("PrefixRules(UN) = %v", rules)
	}
	if rules := table.SuffixRules("ED"); len(rules) != 1 || rules[0].Add != "ed" {
		t.Errorf("SuffixRules(ED) = %v", rules)
	}
	if rules := table.SuffixRules("XX"); rules != nil {
		t.Errorf("SuffixRules(XX) = %v, want nil", rules)
	}
}

func TestAddRuleInvalid(t *testing.T) {
	table := NewRuleTable()
	if err := table.AddRule(Suffix, "", false, "", "s", "."); !errors.Is(err, ErrInvalidRuleRecord) {
		t.Errorf("AddRule with empty flag: err = %v, want ErrInvalidRuleRecord", err)
	}
	if err := table.AddRule(Suffix, "X", false, "", "s", "[ab"); !errors.Is(err, ErrMalformedCondition) {
		t.Errorf("AddRule with bad condition: err = %v, want ErrMalformedCondition", err)
	}
}

func TestResolveAlias(t *testing.T) {
	table := NewRuleTable()
	table.AddAlias("1", []string{"UN", "ED"})

	if got := table.ResolveAlias("1"); !reflect.DeepEqual(got, []string{"UN", "ED"}) {
		t.Errorf("ResolveAlias(1) = %v", got)
	}
	// unknown aliases fall back to the literal token
	if got := table.ResolveAlias("7"); !reflect.DeepEqual(got, []string{"7"}) {
		t.Errorf("ResolveAlias(7) = %v", got)
	}
}

func TestExpandFlags(t *testing.T) {
	table := NewRuleTable()
	table.AddAlias("1", []string{"UN", "ED"})
	table.AddAlias("23", []string{"S"})

	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"1"}, []string{"UN", "ED"}},
		{[]string{"1", "S"}, []string{"UN", "ED", "S"}},
		{[]string{"23", "1"}, []string{"S", "UN", "ED"}},
		// unresolved numeric tokens pass through verbatim
		{[]string{"9"}, []string{"9"}},
		// non-numeric tokens are never treated as aliases
		{[]string{"UN", "A1"}, []string{"UN", "A1"}},
		{nil, []string{}},
	}
	for _, tt := range tests {
		if got := table.ExpandFlags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExpandFlags(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
