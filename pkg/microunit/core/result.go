package core

import (
	"fmt"

	"github.com/smiranda/microunit/internal/exprtext"
)

const (
	diagnosticFailed       = "Test failed"
	diagnosticAssertFailed = "Test Assert failed: "
)

// Result is the outcome of a test case: either a success, or a failure
// carrying the diagnostics that explain it. The zero value is a success.
type Result struct {
	failed      bool
	diagnostics []string
}

// Pass returns a successful result.
func Pass() Result {
	return Result{}
}

// Fail returns a failed result.
func Fail() Result {
	return failure()
}

// Failf returns a failed result with a formatted reason.
func Failf(format string, a ...any) Result {
	return failure(fmt.Sprintf(format, a...))
}

// FailFromError returns a failed result whose reason is err.
func FailFromError(err error) Result {
	if err == nil {
		return failure()
	}

	return failure(err.Error())
}

// AssertTrue returns a failed result when condition does not hold. The
// diagnostic contains the source text of the condition.
//
//	if r := core.AssertTrue(2+2 == 4); r.Failed() {
//		return r
//	}
func AssertTrue(condition bool) Result {
	if condition {
		return Pass()
	}

	return failure(diagnosticAssertFailed + exprtext.Condition(1, "AssertTrue"))
}

// AssertFalse returns a failed result when condition holds. The diagnostic
// contains the source text of the condition.
func AssertFalse(condition bool) Result {
	if !condition {
		return Pass()
	}

	return failure(diagnosticAssertFailed + exprtext.Condition(1, "AssertFalse"))
}

// Check returns the first failed result, or a success when none failed. All
// arguments are evaluated before Check is called, so it must only group
// assertions that do not depend on each other. Assertions written on the
// same line are reported by their location rather than their condition.
func Check(results ...Result) Result {
	for _, r := range results {
		if r.Failed() {
			return r
		}
	}

	return Pass()
}

func failure(reasons ...string) Result {
	diagnostics := make([]string, 0, len(reasons)+1)
	diagnostics = append(diagnostics, reasons...)
	diagnostics = append(diagnostics, diagnosticFailed)
	return Result{failed: true, diagnostics: diagnostics}
}

func (r Result) Failed() bool {
	return r.failed
}

func (r Result) Passed() bool {
	return !r.failed
}

// Diagnostics returns the messages explaining a failure, in the order they
// were produced. A successful result has none.
func (r Result) Diagnostics() []string {
	return append([]string(nil), r.diagnostics...)
}

func (r Result) String() string {
	if r.failed {
		return "FAIL"
	}
	return "PASS"
}
