// Command loomc is loom's compiler driver: tokenize/parse inspection
// commands plus build, which emits WebAssembly text for one or more
// source files. Grounded on the teacher's cmd/surge root command
// wiring.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loom/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "loomc",
	Short: "loom language compiler",
	Long:  `loomc parses loom source files and emits WebAssembly text.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to an interactive terminal,
// grounded on the teacher's cmd/surge isTerminal helper.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
