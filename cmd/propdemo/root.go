package main

import (
	"github.com/spf13/cobra"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/internal/validation"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propdemo",
		Short: "Show which option alias becomes a property name",
		Long: `propdemo parses the arguments of a small demo application whose options
have several aliases each, e.g. -c, --output-charset and --myapp.output-charset,
and shows which of those aliases are published as property names.

Arguments for the demo application follow "--".`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.flags.policy, "policy", string(alias.DefaultPolicy), "Alias policy: "+policyNames())
	flags.StringVar(&a.flags.separator, "separator", alias.DefaultSeparator, "Separator used by the separator policy")
	flags.StringVar(&a.flags.configPath, "config", "", "Config file (default ./propdemo.toml)")
	flags.BoolVar(&a.flags.debug, "debug", false, "Log debug output to stderr")

	cmd.AddCommand(
		newRunCmd(a),
		newNamesCmd(a),
		newCompareCmd(a),
		newOptionsCmd(a),
	)
	setupHelp(cmd)
	setupVersion(cmd)
	addPolicyFlagAliases(cmd)

	return cmd
}

func policyNames() string {
	return validation.FormatValidValues(alias.Policies())
}
