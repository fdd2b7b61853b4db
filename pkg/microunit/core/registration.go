package core

// TestFunction is the body of a test case. Returning the zero Result, or
// Pass(), marks the test case as passed.
type TestFunction = func(TestCase) Result

type UnitRegistrar interface {
	// Register a test case with the given name. The name is used to identify
	// the test case in the catalog and must be unique across the run. Test
	// names MUST be accepted by the regular expression `^[a-zA-Z0-9_]+$`.
	Unit(name string, fn TestFunction)
}

// UnitRegistrant declares a group of test cases. Registrants are collected
// explicitly when the suite starts, before any test case runs.
type UnitRegistrant interface {
	Named
	RegisterUnits(r UnitRegistrar) error
}

type unitGroup struct {
	name     string
	register func(UnitRegistrar)
}

func (g unitGroup) Name() string {
	return g.name
}

func (g unitGroup) RegisterUnits(r UnitRegistrar) error {
	g.register(r)
	return nil
}

// Units creates a registrant named name whose test cases are declared by
// register.
func Units(name string, register func(UnitRegistrar)) UnitRegistrant {
	return unitGroup{name: name, register: register}
}
