package run

import (
	"io"

	"github.com/smiranda/microunit/internal/catalog"
	"github.com/smiranda/microunit/internal/reporter"
	"github.com/smiranda/microunit/internal/runner"
	"github.com/smiranda/microunit/pkg/microunit/core"
)

type RunCmd struct {
	Width int    `help:"Width of separator lines, 0 uses the terminal width" default:"80"`
	Color string `help:"When to colour the output (${enum})" enum:"auto,always,never" default:"auto"`
}

func (cmd *RunCmd) Run(suite core.SuiteContext, out io.Writer) error {
	colorMode, err := reporter.ParseColorMode(cmd.Color)
	if err != nil {
		return err
	}

	return RunUnits(suite, out, reporter.Options{
		Width:       cmd.Width,
		Color:       colorMode,
		AzureDevops: suite.AzureDevops(),
	})
}

// RunUnits collects the test cases of every registrant in the suite and runs
// them, writing the report to out. It returns a *runner.FailedError when any
// test case failed.
func RunUnits(suite core.SuiteContext, out io.Writer, opts reporter.Options) error {
	log := suite.Logger()

	cat, err := catalog.Build(log, suite.Registrants()...)
	if err != nil {
		return err
	}

	driver := runner.New(cat, reporter.New(out, opts), log)
	if !driver.Run() {
		return &runner.FailedError{Failures: driver.Failures()}
	}

	return nil
}
