package alias

import (
	"errors"

	internalstrings "github.com/amonks/propdemo/internal/strings"
	"github.com/amonks/propdemo/internal/validation"
)

// ErrUnknownPolicy is returned when a policy name is not recognized.
var ErrUnknownPolicy = errors.New("unknown alias policy")

// Policy names a built-in selector.
type Policy string

const (
	PolicyLongest    Policy = "longest"
	PolicySeparator  Policy = "separator"
	PolicyAll        Policy = "all"
	PolicySortedLast Policy = "sorted-last"
)

// DefaultPolicy is used when nothing else is configured.
const DefaultPolicy = PolicyLongest

var policies = []Policy{PolicyLongest, PolicySeparator, PolicyAll, PolicySortedLast}

// Policies returns the built-in policies in display order.
func Policies() []Policy {
	return append([]Policy(nil), policies...)
}

// ParsePolicy parses a policy name, ignoring case and surrounding whitespace.
func ParsePolicy(name string) (Policy, error) {
	normalized := Policy(internalstrings.NormalizeLowerTrimSpace(name))
	for _, policy := range policies {
		if policy == normalized {
			return policy, nil
		}
	}
	return "", validation.FormatInvalidValueError(ErrUnknownPolicy, Policy(name), policies)
}

// Selector returns the selector implementing the policy.
// sep is only used by PolicySeparator; an empty sep falls back to DefaultSeparator.
func (p Policy) Selector(sep string) Selector {
	switch p {
	case PolicySeparator:
		if sep == "" {
			sep = DefaultSeparator
		}
		return Containing(sep)
	case PolicyAll:
		return All
	case PolicySortedLast:
		return SortedLast
	default:
		return Longest
	}
}

// Description is a one-line summary of the policy.
func (p Policy) Description() string {
	switch p {
	case PolicyLongest:
		return "the longest alias, first wins on ties"
	case PolicySeparator:
		return "every alias containing the separator"
	case PolicyAll:
		return "every alias"
	case PolicySortedLast:
		return "the last alias after sorting short names before long names"
	default:
		return ""
	}
}
