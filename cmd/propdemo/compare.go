package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/internal/listflags"
	"github.com/amonks/propdemo/internal/ui"
)

type policyResult struct {
	Policy string   `json:"policy"`
	Active bool     `json:"active"`
	Names  []string `json:"names"`
}

func newCompareCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "compare [-- ARGS...]",
		Short: "Compare the property names each alias policy publishes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.compare(args)
			if err != nil {
				return err
			}
			if jsonOutput {
				return encodeJSON(cmd.OutOrStdout(), results)
			}
			return writeCompareTable(cmd.OutOrStdout(), results)
		},
	}
	listflags.AddJSONFlag(cmd, &jsonOutput)
	return cmd
}

func (a *app) compare(args []string) ([]policyResult, error) {
	set, err := a.parse(args)
	if err != nil {
		return nil, err
	}

	groups := set.Groups()
	results := make([]policyResult, 0, len(alias.Policies()))
	for _, policy := range alias.Policies() {
		results = append(results, policyResult{
			Policy: string(policy),
			Active: policy == a.policy,
			Names:  alias.Flatten(groups, policy.Selector(a.separator)),
		})
	}
	return results, nil
}

func writeCompareTable(w io.Writer, results []policyResult) error {
	table := ui.NewTableBuilder([]string{"POLICY", "ACTIVE", "PROPERTY NAMES"}, len(results))
	for _, result := range results {
		active := ""
		if result.Active {
			active = "*"
		}
		// One name per line keeps order and duplicates visible.
		names := strings.Join(result.Names, "\n")
		if names == "" {
			names = ui.Muted("-")
		}
		table.AddRow(result.Policy, active, names)
	}
	_, err := io.WriteString(w, table.String())
	return err
}
