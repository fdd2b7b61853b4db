package suite

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/smiranda/microunit/internal/cli"
	"github.com/smiranda/microunit/pkg/microunit/core"
)

type MicrounitSuite struct {
	name        string
	registrants []core.UnitRegistrant
	ctx         *kong.Context
	azureDevops bool
	Log         *logrus.Logger
}

// CreateSuite parses the command line and creates a suite ready to have
// registrants added to it.
func CreateSuite(name string) *MicrounitSuite {
	name = fmt.Sprintf("microunit-%s", name)
	ctx, global, err := cli.ParseCommandLine(name, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %s\n", name, err)
		os.Exit(ExitCode(err))
	}

	logger := logrus.New()
	logger.SetLevel(global.Verbosity)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})

	s := NewSuite(name, logger)
	s.ctx = ctx
	s.azureDevops = global.AzureDevops
	return s
}

// NewSuite creates a suite that is not bound to the command line. It is used
// by CreateSuite and by callers that drive the suite programmatically.
func NewSuite(name string, logger *logrus.Logger) *MicrounitSuite {
	logger.Infof("Creating suite '%s'", name)

	return &MicrounitSuite{
		name:        name,
		registrants: make([]core.UnitRegistrant, 0),
		Log:         logger,
	}
}

// Run executes the selected command and exits the process with its status.
// Test cases are collected from the registrants at this point, so every
// registrant must have been added before calling Run.
func (s *MicrounitSuite) Run() {
	if s.ctx == nil {
		s.Log.Fatalf("Suite '%s' not initialized", s.name)
	}

	s.Log.Infof("Running suite '%s' - %s registrants collected.", s.name, humanize.Comma(int64(len(s.registrants))))
	s.ctx.BindTo(s, (*core.SuiteContext)(nil))
	s.ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	s.reportExitStatus(s.ctx.Run())
}

// Adds a registrant to the suite
func (s *MicrounitSuite) AddUnits(registrant core.UnitRegistrant) {
	if slices.ContainsFunc(s.registrants, func(r core.UnitRegistrant) bool {
		return r.Name() == registrant.Name()
	}) {
		s.Log.Fatalf("Registrant '%s' already exists", registrant.Name())
	}

	s.Log.Debugf("Adding registrant '%s'", registrant.Name())
	s.registrants = append(s.registrants, registrant)
}

// SetAzureDevops enables or disables Azure DevOps logging commands.
func (s *MicrounitSuite) SetAzureDevops(enabled bool) {
	s.azureDevops = enabled
}

// Returns the name of the suite
func (s *MicrounitSuite) Name() string {
	return s.name
}

// Returns all registrants in the order they were added
func (s *MicrounitSuite) Registrants() []core.UnitRegistrant {
	return s.registrants
}

func (s *MicrounitSuite) AzureDevops() bool {
	return s.azureDevops
}

func (s *MicrounitSuite) Logger() *logrus.Logger {
	return s.Log
}
