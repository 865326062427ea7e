package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/propdemo/internal/listflags"
)

func newNamesCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "names [-- ARGS...]",
		Short: "Print the property names published for the given arguments",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.propertyNames(args)
			if err != nil {
				return err
			}
			if jsonOutput {
				return encodeJSON(cmd.OutOrStdout(), names)
			}
			return printNames(cmd.OutOrStdout(), names)
		},
	}
	listflags.AddJSONFlag(cmd, &jsonOutput)
	return cmd
}

func (a *app) propertyNames(args []string) ([]string, error) {
	set, err := a.parse(args)
	if err != nil {
		return nil, err
	}
	commandLine, _ := a.environment(set)
	return commandLine.PropertyNames(), nil
}

func printNames(w io.Writer, names []string) error {
	var builder strings.Builder
	for _, name := range names {
		fmt.Fprintln(&builder, name)
	}
	_, err := io.WriteString(w, builder.String())
	return err
}
