package core

type SuiteContext interface {
	Named

	LoggerProvider

	// Returns all unit registrants added to the suite, in the order they
	// were added.
	Registrants() []UnitRegistrant

	// Returns whether the suite has Azure DevOps integration enabled
	AzureDevops() bool
}
