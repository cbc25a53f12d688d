package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mscheme [file]",
	Short: "MicroScheme interpreter",
	Long: `go-mscheme is a Go implementation of MicroScheme, a subset of Scheme.

The interpreter supports:
  - Lexical scope with first-class procedures (closures)
  - Mutable cons cells, vectors and set! family mutation
  - Arbitrary-precision complex arithmetic
  - Iterative do loops that run in constant stack space

With a file argument the file is evaluated; without arguments an
interactive REPL starts.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRepl()
		}
		return runFile(args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
