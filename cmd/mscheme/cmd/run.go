package cmd

import (
	"fmt"
	"os"

	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/errors"
	"github.com/mscheme-lang/go-mscheme/internal/interp"
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
	"github.com/mscheme-lang/go-mscheme/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a MicroScheme file or expression",
	Long: `Evaluate a MicroScheme program from a file or inline expression.

Examples:
  # Run a script file
  mscheme run script.scm

  # Evaluate an inline expression
  mscheme run -e "(display (+ 1 2))"

  # Run with AST dump (for debugging)
  mscheme run --dump-ast script.scm`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		if evalExpr != "" {
			return runSource(evalExpr, "<eval>")
		}
		if len(args) == 1 {
			return runFile(args[0])
		}
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

func runFile(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return runSource(string(content), filename)
}

func runSource(source, filename string) error {
	program, err := parseSource(source, filename)
	if err != nil {
		return err
	}

	if dumpAST {
		fmt.Print(ast.Dump(program))
	}

	i := interp.New(os.Stdout, interp.WithErrorOutput(os.Stderr))
	if failed := i.Run(program); failed > 0 {
		return fmt.Errorf("evaluation failed for %d form(s)", failed)
	}
	return nil
}

// parseSource parses and, on parse errors, prints caret diagnostics and
// returns an error without evaluating.
func parseSource(source, filename string) (*ast.Node, error) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		formatted := errors.FromParseErrors(errs, source, filename)
		fmt.Fprint(os.Stderr, errors.FormatErrors(formatted, true))
		fmt.Fprintln(os.Stderr)
		return nil, fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}
	return program, nil
}
