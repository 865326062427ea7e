package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [-- ARGS...]",
		Short: "Run the demo application and print the properties it sees",
		Long: `Run the demo application. For every alias of every declared option it
prints the value found in the environment: the command line first, then
environment variables, then [properties] from the config file. It then lists the
property names the command line source publishes under the active policy.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) runDemo(w io.Writer, args []string) error {
	set, err := a.parse(args)
	if err != nil {
		return err
	}
	commandLine, env := a.environment(set)

	var builder strings.Builder
	for _, spec := range a.parser.Specs() {
		for _, name := range spec.Aliases {
			fmt.Fprintf(&builder, "Property %s=%s\n", name, env.PropertyOr(name, notFound))
		}
	}

	fmt.Fprintf(&builder, "All properties in property source %q:\n", commandLine.Name())
	for _, name := range commandLine.PropertyNames() {
		value, _ := commandLine.Property(name)
		fmt.Fprintf(&builder, "  %s=%s\n", name, value)
	}

	if nonOptions := commandLine.NonOptionArgs(); len(nonOptions) > 0 {
		fmt.Fprintf(&builder, "Non-option arguments: %s\n", strings.Join(nonOptions, " "))
	}

	_, err = io.WriteString(w, builder.String())
	return err
}
