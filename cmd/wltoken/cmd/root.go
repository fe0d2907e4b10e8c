// Package cmd implements the wltoken command-line entry point: a thin
// cobra wrapper around internal/scanner, kept deliberately small since
// the tokenizer core is the product, not the CLI.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wltoken",
	Short: "Wolfram Language tokenizer",
	Long: `wltoken tokenizes Wolfram Language source, printing the resulting
token stream. It wraps the scanner package: character database loading,
escape decoding, and the tokenizer state machine.

This CLI is a debugging aid, not a REPL or a parser front end.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
