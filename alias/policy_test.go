package alias_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/amonks/propdemo/alias"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]alias.Policy{
		"longest":     alias.PolicyLongest,
		"separator":   alias.PolicySeparator,
		" ALL ":       alias.PolicyAll,
		"Sorted-Last": alias.PolicySortedLast,
	}

	for input, want := range cases {
		got, err := alias.ParsePolicy(input)
		if err != nil {
			t.Fatalf("ParsePolicy(%q): unexpected error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParsePolicy(%q) = %q, expected %q", input, got, want)
		}
	}
}

func TestParsePolicyUnknown(t *testing.T) {
	_, err := alias.ParsePolicy("shortest")
	if err == nil {
		t.Fatal("expected error for unknown policy")
	}
	if !errors.Is(err, alias.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestPolicySelectors(t *testing.T) {
	cases := []struct {
		policy alias.Policy
		sep    string
		want   []string
	}{
		{policy: alias.PolicyLongest, want: []string{"myapp.output-charset"}},
		{policy: alias.PolicySeparator, want: []string{"myapp.output-charset"}},
		{policy: alias.PolicySeparator, sep: "-", want: []string{"output-charset", "myapp.output-charset"}},
		{policy: alias.PolicyAll, want: []string{"c", "output-charset", "myapp.output-charset"}},
		{policy: alias.PolicySortedLast, want: []string{"output-charset"}},
	}

	for _, tc := range cases {
		got := tc.policy.Selector(tc.sep)(charsetAliases)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s(%q): expected %v, got %v", tc.policy, tc.sep, tc.want, got)
		}
	}
}

func TestPoliciesHaveDescriptions(t *testing.T) {
	for _, policy := range alias.Policies() {
		if policy.Description() == "" {
			t.Fatalf("expected description for %s", policy)
		}
	}
}
