package cmd

import (
	"fmt"
	"os"

	"github.com/mscheme-lang/go-mscheme/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a MicroScheme file and dump the tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		l := lexer.New(string(content))
		for _, tok := range l.Tokenize() {
			fmt.Printf("%-12s %-10s %q\n", tok.Pos, tok.Type, tok.Literal)
		}
		for _, lexErr := range l.Errors() {
			fmt.Fprintf(os.Stderr, "lex error: %v\n", lexErr)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
