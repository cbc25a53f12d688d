package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mscheme-lang/go-mscheme/internal/errors"
	"github.com/mscheme-lang/go-mscheme/internal/interp"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
	"github.com/mscheme-lang/go-mscheme/internal/parser"
	"github.com/spf13/cobra"
)

const (
	newPrompt    = "\033[32m>\033[0m "
	contPrompt   = "\033[32m.\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive MicroScheme session",
	Args:  cobra.NoArgs,
	RunE: func(command *cobra.Command, args []string) error {
		return runRepl()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl() error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".mscheme_history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()

	i := interp.New(os.Stdout, interp.WithErrorOutput(os.Stderr))

	buffered := ""
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			buffered = ""
			l.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		source := buffered + line
		if source == "" {
			continue
		}

		// Unbalanced parens continue on the next line instead of
		// failing the parse.
		if parenDepth(source) > 0 {
			buffered = source + "\n"
			l.SetPrompt(contPrompt)
			continue
		}
		buffered = ""
		l.SetPrompt(newPrompt)

		lx := lexer.New(source)
		p := parser.New(lx)
		program := p.ParseProgram()
		if errs := p.Errors(); len(errs) > 0 {
			formatted := errors.FromParseErrors(errs, source, "")
			fmt.Fprintln(os.Stderr, errors.FormatErrors(formatted, true))
			continue
		}

		for _, form := range program.Children {
			val, err := i.EvalForm(form)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			if val != runtime.Unspecified {
				fmt.Println(resultPrompt + val.String())
			}
		}
	}
}

// parenDepth counts unbalanced parens, ignoring those inside strings,
// comments and character literals.
func parenDepth(source string) int {
	depth := 0
	runes := []rune(source)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '"':
			for i++; i < len(runes) && runes[i] != '"'; i++ {
				if runes[i] == '\\' {
					i++
				}
			}
		case ';':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		case '#':
			if i+1 < len(runes) && runes[i+1] == '\\' {
				i += 2 // the character itself never opens a group
			}
		}
	}
	return depth
}
