package alias

import "github.com/samber/lo"

// Flatten applies sel to each group and concatenates the results.
// Group order and selector order are kept. Nothing is sorted or deduplicated,
// so a name selected for two groups is returned twice.
func Flatten(groups []Group, sel Selector) []string {
	if sel == nil {
		panic("alias: Flatten called with nil selector")
	}
	return lo.FlatMap(groups, func(group Group, _ int) []string {
		return sel(group)
	})
}
