package reporter

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

const (
	SEPARATOR_CHAR = "-"

	// Width of separator lines when the output is not a terminal.
	DefaultWidth = 80

	markerInfo    = "[    ]"
	markerFailure = "[!!!!]"
)

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Returns the width of the terminal out writes to. If it cannot be
// determined, it returns DefaultWidth.
func termWidth(out io.Writer) int {
	f, ok := out.(fdWriter)
	if !ok {
		return DefaultWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Prints a separator line.
func (r *Reporter) printSeparator() {
	fmt.Fprintln(r.out, strings.Repeat(SEPARATOR_CHAR, r.width))
}

func (r *Reporter) printLine(marker string, format string, a ...any) {
	fmt.Fprintf(r.out, "%s %s\n", marker, fmt.Sprintf(format, a...))
}
