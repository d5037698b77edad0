package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowstate-live/flowstate/internal/cli"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s flowstate %s\n", cli.Logo, cli.Version)
		},
	}
}
