// Package errors provides error formatting for MicroScheme diagnostics.
// It formats parse errors with source context, line/column information,
// and a caret pointing at the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/mscheme-lang/go-mscheme/internal/lexer"
	"github.com/mscheme-lang/go-mscheme/internal/parser"
)

// SourceError represents a single diagnostic with position and context.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// NewSourceError creates a new source-anchored diagnostic.
func NewSourceError(pos lexer.Position, message, source, file string) *SourceError {
	return &SourceError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// FromParseErrors converts parser errors into formattable diagnostics.
func FromParseErrors(errs []parser.Error, source, file string) []*SourceError {
	out := make([]*SourceError, len(errs))
	for i, err := range errs {
		out[i] = NewSourceError(err.Pos, err.Message, source, file)
	}
	return out
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format formats the error message with source context.
// If color is true, ANSI color codes are used for terminal output.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	// File and position header
	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	// Extract the relevant source line
	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		// Line number and source
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		// Caret indicator
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m") // Red bold
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m") // Reset
		}
		sb.WriteString("\n")
	}

	// Error message
	if color {
		sb.WriteString("\033[1m") // Bold
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m") // Reset
	}

	return sb.String()
}

// getSourceLine extracts a specific line from the source code.
// Lines are 1-indexed.
func (e *SourceError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}

// FormatErrors formats multiple diagnostics, separated by blank lines.
func FormatErrors(errs []*SourceError, color bool) string {
	var sb strings.Builder
	for i, err := range errs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(err.Format(color))
	}
	return sb.String()
}
