package cmd

import (
	"fmt"
	"os"

	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a MicroScheme file and dump its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		program, err := parseSource(string(content), args[0])
		if err != nil {
			return err
		}
		fmt.Print(ast.Dump(program))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
