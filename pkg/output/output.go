// Package output provides convenience printers for captured process
// results, used to embed diagnostics in test failure output. Presentation
// only; the fixed block ordering (stderr, separator, stdout, separator,
// status line) is the whole contract.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/vincent-herlemont/cli-integration-test/pkg/environment"
)

const separator = "---------------------------"

var (
	separatorStyle = lipgloss.NewStyle().Faint(true)
	statusStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Fprint writes the three-block diagnostic layout for a captured result:
// stderr, separator, stdout, separator, status line.
func Fprint(w io.Writer, res *environment.Result) {
	style := styled(w)

	fmt.Fprintln(w, res.Stderr)
	fmt.Fprintln(w, render(style, separatorStyle, separator))
	fmt.Fprintln(w, res.Stdout)
	fmt.Fprintln(w, render(style, separatorStyle, separator))
	fmt.Fprintln(w, render(style, statusStyle, fmt.Sprintf("exit status %d", res.ExitCode)))
}

// Print writes the three-block layout to standard output.
func Print(res *environment.Result) {
	Fprint(os.Stdout, res)
}

// FprintResult renders a result that may have failed to be obtained at
// all: the error case prints a marker and the error message instead of
// the three blocks.
func FprintResult(w io.Writer, res *environment.Result, err error) {
	if err != nil {
		fmt.Fprintln(w, render(styled(w), errorStyle, "output error !!"))
		fmt.Fprintln(w, err.Error())
		return
	}
	Fprint(w, res)
}

// PrintResult writes FprintResult to standard output.
func PrintResult(res *environment.Result, err error) {
	FprintResult(os.Stdout, res, err)
}

// render applies the style only when the writer is a terminal.
func render(styled bool, style lipgloss.Style, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}

// styled reports whether w is an interactive terminal.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
