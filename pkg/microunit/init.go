package microunit

import (
	"github.com/smiranda/microunit/pkg/microunit/core"
	"github.com/smiranda/microunit/pkg/microunit/suite"
)

type TestCase = core.TestCase
type TestFunction = core.TestFunction
type Result = core.Result

type UnitRegistrar = core.UnitRegistrar
type UnitRegistrant = core.UnitRegistrant

type SuiteContext = core.SuiteContext
type LoggerProvider = core.LoggerProvider

// Result constructors. These are variables rather than wrappers so that the
// assertions still see the test function as their caller.
var (
	Pass          = core.Pass
	Fail          = core.Fail
	Failf         = core.Failf
	FailFromError = core.FailFromError
	AssertTrue    = core.AssertTrue
	AssertFalse   = core.AssertFalse
	Check         = core.Check
)

// Units creates a registrant from a registration function.
var Units = core.Units

// Creates a new suite with the given name, parsing the command line.
func CreateSuite(name string) *suite.MicrounitSuite {
	return suite.CreateSuite(name)
}
