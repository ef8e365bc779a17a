package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/mython/pkg/lexer"
	"github.com/GriffinCanCode/mython/pkg/token"
)

// newTokensCmd exposes the lexer's token stream directly, for
// debugging a source file without involving the parser or evaluator.
func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens SOURCE",
		Short: "Print the token stream for a Mython source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			lex := lexer.New(f)
			out := cmd.OutOrStdout()
			for {
				cur := lex.Current()
				fmt.Fprintf(out, "%d:%d\t%s\n", cur.Line, cur.Col, cur)
				if cur.Type == token.Eof {
					break
				}
				lex.Next()
			}
			return lex.Err()
		},
	}
}
