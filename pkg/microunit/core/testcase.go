package core

// TestCase is the handle a test function receives while it runs.
type TestCase interface {
	Named

	// Returns a logger scoped to this test case. Entries are forwarded to the
	// suite logger, prefixed with the test case id.
	LoggerProvider

	// Position of the test case within the current run, starting at 0.
	Index() uint
}
