// Package alias decides which names of a multi-name option become property names.
//
// An option may be declared under several aliases, e.g. a short flag, a long
// flag and a dotted qualified name. None of them is inherently primary, so the
// choice is left to a Selector supplied by the caller.
package alias

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// DefaultSeparator marks qualified aliases such as "myapp.output-charset".
const DefaultSeparator = "."

// Group is the ordered list of interchangeable names of one option.
type Group []string

// Selector picks the aliases of a group that are published as property names.
// Selectors must not modify the group they are given.
type Selector func(aliases Group) []string

// Longest selects the alias with the most runes. Ties go to the first alias.
func Longest(aliases Group) []string {
	if len(aliases) == 0 {
		return []string{}
	}
	longest := aliases[0]
	for _, name := range aliases[1:] {
		if utf8.RuneCountInString(name) > utf8.RuneCountInString(longest) {
			longest = name
		}
	}
	return []string{longest}
}

// Containing returns a selector for every alias containing sep, in group order.
func Containing(sep string) Selector {
	return func(aliases Group) []string {
		return lo.Filter(aliases, func(name string, _ int) bool {
			return strings.Contains(name, sep)
		})
	}
}

// All selects every alias in group order.
func All(aliases Group) []string {
	return append([]string{}, aliases...)
}

// SortedLast selects the last alias after ordering short (single rune) names
// before long names, each class sorted lexicographically. The result is
// usually not the longest alias.
func SortedLast(aliases Group) []string {
	if len(aliases) == 0 {
		return []string{}
	}
	short, long := lo.FilterReject(aliases, func(name string, _ int) bool {
		return utf8.RuneCountInString(name) == 1
	})
	sort.Strings(short)
	sort.Strings(long)
	ordered := append(short, long...)
	return []string{ordered[len(ordered)-1]}
}
