package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
)

// ANSI sequences used when the output is a terminal.
const (
	ansiYellow = "\033[33m"
	ansiDim    = "\033[2m"
	ansiReset  = "\033[0m"
)

// Ensure consolePresenter implements the interface.
var _ driven.Presenter = (*consolePresenter)(nil)

// consolePresenter renders session output to the console for the one-shot
// module commands. Warnings go to the error stream.
//
// Attaching a presenter renders the current state once. For mutation
// commands that initial render is noise, so it can be suppressed; the
// render following the mutation is still printed.
type consolePresenter struct {
	out    io.Writer
	errOut io.Writer
	color  bool

	skipList   bool
	skipStatus bool
}

// newConsolePresenter creates a presenter writing to out and errOut.
// Colours are used only when out is a terminal. When suppressInitial is
// set, the first list and status render are dropped.
func newConsolePresenter(out, errOut io.Writer, suppressInitial bool) *consolePresenter {
	color := false
	if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}

	return &consolePresenter{
		out:        out,
		errOut:     errOut,
		color:      color,
		skipList:   suppressInitial,
		skipStatus: suppressInitial,
	}
}

// RenderList prints the module list with 1-based positions.
func (p *consolePresenter) RenderList(entries []string) {
	if p.skipList {
		p.skipList = false
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(p.out, "No modules configured.")
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(p.out, "%2d. %s\n", i+1, entry)
	}
}

// SetStatus prints the status line.
func (p *consolePresenter) SetStatus(text string) {
	if p.skipStatus {
		p.skipStatus = false
		return
	}
	if p.color {
		fmt.Fprintf(p.out, "%s%s%s\n", ansiDim, text, ansiReset)
		return
	}
	fmt.Fprintln(p.out, text)
}

// ShowWarning prints a warning to the error stream.
func (p *consolePresenter) ShowWarning(title, message string) {
	if p.color {
		fmt.Fprintf(p.errOut, "%s%s:%s %s\n", ansiYellow, title, ansiReset, message)
		return
	}
	fmt.Fprintf(p.errOut, "%s: %s\n", title, message)
}
