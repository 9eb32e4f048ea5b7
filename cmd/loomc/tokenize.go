package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loom/internal/lexer"
	"loom/internal/source"
	"loom/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.lm>",
	Short: "Tokenize a loom source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	file, err := source.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	lx := lexer.New(file)
	out := cmd.OutOrStdout()
	for {
		tok := lx.Next()
		fmt.Fprintf(out, "%-12s %-20q %d:%d\n", tok.Kind, tok.Rep, tok.Pos.Row, tok.Pos.Column)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}
