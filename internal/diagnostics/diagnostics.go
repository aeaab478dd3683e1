// Package diagnostics formats literal validation failures as positioned
// build diagnostics.
package diagnostics

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
)

// DiagnosticError is one literal validation failure, anchored to the literal
// token that caused it.
type DiagnosticError struct {
	Pos    token.Position
	Reason string
}

func (e *DiagnosticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Reason)
}

// Errorf builds a DiagnosticError with a formatted reason.
func Errorf(pos token.Position, format string, args ...any) *DiagnosticError {
	return &DiagnosticError{Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

// Sort orders diagnostics by file, line and column for stable output.
func Sort(diags []*DiagnosticError) {
	sort.Slice(diags, func(i, j int) bool {
		a, b := diags[i].Pos, diags[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// Print writes diagnostics to w, one per line, in sorted order. The error
// marker is colored when w is the process's terminal.
func Print(w io.Writer, diags []*DiagnosticError) {
	marker := "error:"
	if f, ok := w.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			marker = colorRed + "error:" + colorReset
		}
	}
	Sort(diags)
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s %s\n", d.Pos, marker, d.Reason)
	}
}
