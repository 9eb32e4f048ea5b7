package main

import (
	"os"

	"github.com/spf13/cobra"
)

// useColor resolves the --color persistent flag against whether out is
// a terminal, the way the teacher's cmd/surge subcommands gate color on
// isTerminal(os.Stderr).
func useColor(cmd *cobra.Command, out *os.File) bool {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
