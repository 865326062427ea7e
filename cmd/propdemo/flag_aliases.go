package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var policyFlagAliases = map[string]string{
	"selector": "policy",
	"sep":      "separator",
}

func addPolicyFlagAliases(cmd *cobra.Command) {
	cmd.SetGlobalNormalizationFunc(aliasNormalizer(cmd.GlobalNormalizationFunc(), policyFlagAliases))
}

// aliasNormalizer folds alias spellings onto their canonical flag before
// delegating to normalize.
func aliasNormalizer(normalize func(*pflag.FlagSet, string) pflag.NormalizedName, aliases map[string]string) func(*pflag.FlagSet, string) pflag.NormalizedName {
	return func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		if normalize == nil {
			return pflag.NormalizedName(name)
		}
		return normalize(f, name)
	}
}
