package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/internal/ui"
	"github.com/amonks/propdemo/options"
)

const descriptionWidth = 40

var errUnknownOption = errors.New("no option has that alias")

func newOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options [NAME]",
		Short: "List the demo application's options and their aliases",
		Long: `List the demo application's options and their aliases. With NAME, only
the option known by that alias is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := a.optionSpecs(args)
			if err != nil {
				return err
			}
			return a.writeOptionsTable(cmd.OutOrStdout(), specs)
		},
	}
}

// optionSpecs returns every declaration, or the one known by names[0].
func (a *app) optionSpecs(names []string) ([]options.Spec, error) {
	if len(names) == 0 {
		return a.parser.Specs(), nil
	}
	name := strings.TrimLeft(names[0], "-")
	spec, ok := a.parser.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("look up option %q: %w", names[0], errUnknownOption)
	}
	return []options.Spec{spec}, nil
}

func (a *app) writeOptionsTable(w io.Writer, specs []options.Spec) error {
	sel := a.selector()

	table := ui.NewTableBuilder([]string{"ALIASES", "ARGUMENT", "PROPERTY NAMES", "DESCRIPTION"}, len(specs))
	for _, spec := range specs {
		selected := sel(spec.Aliases)
		names := strings.Join(selected, ", ")
		if names == "" {
			names = ui.Muted("-")
		}
		table.AddRow(
			ui.HighlightSelected(spec.Aliases, selected),
			spec.Arity.String(),
			names,
			ui.Wrap(spec.Description, descriptionWidth),
		)
	}

	var builder strings.Builder
	builder.WriteString(ui.Heading("Policy: " + string(a.policy)))
	if a.policy == alias.PolicySeparator {
		builder.WriteString(" (separator " + a.separator + ")")
	}
	builder.WriteString("\n\n")
	builder.WriteString(table.String())

	_, err := io.WriteString(w, builder.String())
	return err
}
