// Package runner executes the test cases of a catalog.
package runner

import (
	"fmt"
	"runtime/debug"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/smiranda/microunit/internal/catalog"
	"github.com/smiranda/microunit/internal/panicerr"
	"github.com/smiranda/microunit/internal/reporter"
	"github.com/smiranda/microunit/internal/testmgr"
	"github.com/smiranda/microunit/pkg/microunit/core"
)

// Driver runs every test case of a catalog, one at a time, in catalog order.
type Driver struct {
	catalog  *catalog.Catalog
	reporter *reporter.Reporter
	log      *logrus.Logger
	manager  *testmgr.Manager
}

func New(cat *catalog.Catalog, rep *reporter.Reporter, log *logrus.Logger) *Driver {
	return &Driver{
		catalog:  cat,
		reporter: rep,
		log:      log,
	}
}

// Run executes all registered test cases and prints the summary. It returns
// true when no test case failed.
//
// A panic inside a test case is not recovered: it is logged and re-raised as
// a panicerr.PanicError, aborting the run.
func (d *Driver) Run() bool {
	runLog := d.log.WithField("run", uuid.NewString())
	entries := d.catalog.Entries()
	runLog.Infof("Running %s test cases", humanize.Comma(int64(len(entries))))

	d.manager = testmgr.NewManager(d.log)
	for _, entry := range entries {
		runLog.Debugf("%s (started)", entry.Name)
		d.reporter.CaseStarted(entry.Name)

		testCase := d.manager.NewTestCase(entry.Name)
		result := executeTestCase(runLog, testCase, entry.Function)

		d.reporter.CaseFinished(entry.Name, result)
	}

	failures := d.manager.Failures()
	d.reporter.Summary(len(entries), failures)

	if len(failures) > 0 {
		runLog.Errorf("%s of %s test cases failed", humanize.Comma(int64(len(failures))), humanize.Comma(int64(len(entries))))
		return false
	}

	runLog.Infof("All %s test cases passed", humanize.Comma(int64(len(entries))))
	return true
}

// Failures returns the names of the test cases that failed in the last run,
// in the order they ran.
func (d *Driver) Failures() []string {
	if d.manager == nil {
		return nil
	}
	return d.manager.Failures()
}

func executeTestCase(log *logrus.Entry, testCase *testmgr.TestCase, fn core.TestFunction) core.Result {
	defer func() {
		if r := recover(); r != nil {
			pe := panicerr.New(testCase.Name(), r, debug.Stack())
			log.WithField("testCase", testCase.Name()).
				WithField("stack", string(pe.Stack)).
				Error("Test case panicked, aborting run")
			panic(pe)
		}
	}()

	return testCase.Execute(fn)
}

// FailedError is returned by callers of Run to signal that the run completed
// with failed test cases.
type FailedError struct {
	Failures []string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("test run finished with %d failed test cases", len(e.Failures))
}
