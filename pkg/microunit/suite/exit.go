package suite

import (
	"os"

	"github.com/smiranda/microunit/internal/catalog"
	"github.com/smiranda/microunit/internal/cli"
	"github.com/smiranda/microunit/internal/devops"
)

const (
	ExitSuccess     = 0
	ExitTestsFailed = 1
	ExitConfigError = 2
)

// ExitCode maps the error returned by a suite command to a process exit code.
// Command line, configuration and registration errors map to ExitConfigError;
// failed test cases and any other runtime error map to ExitTestsFailed.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case catalog.IsRegistrationError(err), cli.IsCommandLineError(err):
		return ExitConfigError
	default:
		return ExitTestsFailed
	}
}

// Exit the program and report the exit status
func (s *MicrounitSuite) reportExitStatus(err error) {
	code := ExitCode(err)
	if code == ExitSuccess {
		s.Log.Infof("Suite '%s' run completed", s.name)
		os.Exit(code)
	}

	if s.azureDevops {
		devops.NewPrinter(os.Stdout).LogError("Suite '%s' run failed: %s", s.name, err)
	}

	s.Log.WithError(err).Errorf("Suite '%s' failed", s.name)
	os.Exit(code)
}
