package testmgr

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smiranda/microunit/pkg/microunit/core"
)

// TestCase records a single invocation of a test function.
type TestCase struct {
	name      string
	index     uint
	suiteLog  *logrus.Logger
	startTime time.Time
	endTime   time.Time
	status    TestCaseStatus
	result    core.Result
	log       *logrus.Logger
}

// Implementer of logrus.Hook interface to tee log messages from the test case
// logger to the suite logger
type testCaseLogTee struct {
	suiteLogger *logrus.Logger
	testCaseId  string
}

func (tee testCaseLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee testCaseLogTee) Fire(entry *logrus.Entry) error {
	newEntry := tee.suiteLogger.WithFields(entry.Data)
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testCaseId, entry.Message))
	return nil
}

func newTestCase(name string, index uint, suiteLog *logrus.Logger) *TestCase {
	tc := &TestCase{
		name:     name,
		index:    index,
		suiteLog: suiteLog,
		status:   TestCaseStatusRunning,
		log:      logrus.New(),
	}

	// Everything goes through the tee, the level filter is applied by the
	// suite logger.
	tc.log.SetLevel(logrus.TraceLevel)
	tc.log.SetOutput(io.Discard)
	tc.log.AddHook(testCaseLogTee{
		suiteLogger: suiteLog,
		testCaseId:  tc.id(),
	})

	return tc
}

func (tc *TestCase) id() string {
	return fmt.Sprintf("%04d:%s", tc.index, tc.name)
}

func (tc *TestCase) Name() string {
	return tc.name
}

func (tc *TestCase) Index() uint {
	return tc.index
}

func (tc *TestCase) Logger() *logrus.Logger {
	return tc.log
}

func (tc *TestCase) Status() TestCaseStatus {
	return tc.status
}

// Result returns the result the test function produced. It is only
// meaningful once the test case has finished.
func (tc *TestCase) Result() core.Result {
	return tc.result
}

func (tc *TestCase) RunTime() time.Duration {
	if tc.status.IsRunning() {
		return time.Since(tc.startTime)
	}

	return tc.endTime.Sub(tc.startTime)
}

// Execute invokes fn with this test case and records its result. A test case
// can only be executed once.
func (tc *TestCase) Execute(fn core.TestFunction) core.Result {
	if !tc.status.IsRunning() || !tc.startTime.IsZero() {
		panic(fmt.Sprintf("test case '%s' was already executed", tc.name))
	}

	tc.startTime = time.Now()
	tc.close(fn(tc))
	return tc.result
}

func (tc *TestCase) close(result core.Result) {
	tc.endTime = time.Now()
	tc.result = result
	if result.Failed() {
		tc.status = TestCaseStatusFailed
	} else {
		tc.status = TestCaseStatusPassed
	}

	entry := tc.suiteLog.
		WithField("testCase", tc.name).
		WithField("status", tc.status.String()).
		WithField("duration", tc.RunTime())

	for _, diagnostic := range result.Diagnostics() {
		tc.suiteLog.WithField("testCase", tc.name).Debug(diagnostic)
	}

	entry.Logf(tc.status.logLevel(), "%s: %s", tc.name, tc.status.String())
}
