// Package reporter prints the progress and summary of a test run.
package reporter

import (
	"fmt"
	"io"

	"github.com/smiranda/microunit/internal/devops"
	"github.com/smiranda/microunit/pkg/microunit/core"
)

type Options struct {
	// Width of separator lines, 0 uses the terminal width.
	Width int

	Color ColorMode

	// Wrap each test case in an Azure DevOps log group and raise pipeline
	// issues for failures.
	AzureDevops bool
}

type Reporter struct {
	out     io.Writer
	width   int
	palette palette
	devops  *devops.Printer
	group   *devops.Group
}

func New(out io.Writer, opts Options) *Reporter {
	r := &Reporter{
		out:     out,
		width:   opts.Width,
		palette: newPalette(opts.Color.enabled(out)),
	}

	if r.width <= 0 {
		r.width = termWidth(out)
	}

	if opts.AzureDevops {
		r.devops = devops.NewPrinter(out)
	}

	return r
}

// CaseStarted prints the begin-of-case marker.
func (r *Reporter) CaseStarted(name string) {
	if r.devops != nil {
		r.group = r.devops.OpenGroup(fmt.Sprintf("Test case '%s'", name))
	}

	r.printSeparator()
	r.printLine(markerInfo, "Test case '%s'", name)
}

// CaseFinished prints the diagnostics and the outcome of a test case.
func (r *Reporter) CaseFinished(name string, result core.Result) {
	for _, diagnostic := range result.Diagnostics() {
		r.printLine(markerInfo, "%s", diagnostic)
	}

	if result.Passed() {
		r.printLine(markerInfo, "%s", r.palette.success.Sprint("Success"))
	} else {
		fmt.Fprintln(r.out, r.palette.failure.Sprint(markerFailure+" Failure"))
	}

	if r.group != nil {
		r.group.Close()
		r.group = nil
	}

	if r.devops != nil && result.Failed() {
		r.devops.LogError("Test case '%s' failed", name)
	}
}

// Summary prints the outcome of the whole run. failures holds the names of
// the failed test cases, in the order they ran.
func (r *Reporter) Summary(total int, failures []string) {
	r.printSeparator()
	r.printSeparator()

	if len(failures) == 0 {
		r.printLine(markerInfo, "%s", r.palette.success.Sprint("All tests passed"))
	} else {
		fmt.Fprintln(r.out, r.palette.failure.Sprintf("%s Failed %d test cases:", markerFailure, len(failures)))
		for _, failure := range failures {
			fmt.Fprintf(r.out, "> %s\n", failure)
		}
	}

	r.printSeparator()

	if r.devops == nil {
		return
	}

	if total == 0 {
		r.devops.LogWarning("No test cases were registered")
	}

	if len(failures) > 0 {
		r.devops.LogError("Failed %d of %d test cases", len(failures), total)
	}
}
