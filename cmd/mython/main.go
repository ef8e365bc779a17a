// Package main implements the Mython interpreter binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mython",
		Short: "Mython interpreter",
		Long:  "Mython - a small indentation-structured, dynamically typed language interpreter.",
	}
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newTokensCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show interpreter version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "mython version %s\n", version)
			return nil
		},
	}
}
