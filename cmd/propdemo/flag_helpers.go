package main

import "github.com/spf13/cobra"

// hasChangedFlags reports whether any of flags was set on the command line.
// Aliases normalize to their canonical flag, so either spelling may be passed.
func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}
