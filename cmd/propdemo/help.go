package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/internal/markdown"
)

const defaultHelpWidth = 80

func setupHelp(root *cobra.Command) {
	helpCmd := &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Args:  cobra.ArbitraryArgs,
		RunE:  runHelp,
	}
	helpCmd.AddCommand(&cobra.Command{
		Use:   "policies",
		Short: "Describe the alias policies",
		Args:  cobra.NoArgs,
		RunE:  runHelpPolicies,
	})
	root.SetHelpCommand(helpCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	target, _, err := root.Find(args)
	if err != nil || target == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

func runHelpPolicies(cmd *cobra.Command, args []string) error {
	rendered := markdown.Render(helpWidth(), 0, []byte(policiesMarkdown()))
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", rendered)
	return err
}

func policiesMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Alias policies\n\n")
	builder.WriteString("An option such as `-c, --output-charset, --myapp.output-charset` has several aliases. ")
	builder.WriteString("The policy decides which of them the command line publishes as property names.\n\n")
	for _, policy := range alias.Policies() {
		fmt.Fprintf(&builder, "- `%s`: %s", policy, policy.Description())
		if policy == alias.DefaultPolicy {
			builder.WriteString(" (default)")
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\nChoose one with `--policy` or `[selector] policy` in `propdemo.toml`. ")
	builder.WriteString("The separator policy reads `--separator` or `[selector] separator`.\n")
	return builder.String()
}

func helpWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultHelpWidth
	}
	return width
}
