package cli

import (
	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/smiranda/microunit/internal/cli/list"
	"github.com/smiranda/microunit/internal/cli/run"
	"github.com/smiranda/microunit/internal/config"
)

type GlobalOpts struct {
	Verbosity   log.Level       `short:"v" help:"Set log level" default:"info"`
	AzureDevops bool            `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
	Config      kong.ConfigFlag `short:"c" help:"Load configuration from a YAML file"`
}

type cli struct {
	Global GlobalOpts   `embed:""`
	Run    run.RunCmd   `cmd:"" default:"withargs" help:"Run all registered test cases"`
	List   list.ListCmd `cmd:"" help:"List registered test cases"`
}

// NewParser builds the command line parser for a suite called name. The
// returned options are filled in when the parser runs.
func NewParser(name string, options ...kong.Option) (*kong.Kong, *GlobalOpts, error) {
	c := &cli{}
	parser, err := kong.New(c, append(parserOptions(name), options...)...)
	if err != nil {
		return nil, nil, err
	}

	return parser, &c.Global, nil
}

// CommandLineError is returned when the command line or a configuration
// file cannot be parsed.
type CommandLineError struct {
	Err error
}

func (e *CommandLineError) Error() string {
	return e.Err.Error()
}

func (e *CommandLineError) Unwrap() error {
	return e.Err
}

// IsCommandLineError reports whether err came from parsing the command line.
func IsCommandLineError(err error) bool {
	var cmdErr *CommandLineError
	return errors.As(err, &cmdErr)
}

// ParseCommandLine parses args for a suite called name. Usage is printed when
// the arguments do not match the command tree.
func ParseCommandLine(name string, args []string, options ...kong.Option) (*kong.Context, GlobalOpts, error) {
	parser, global, err := NewParser(name, options...)
	if err != nil {
		// The default configuration file is loaded while building the parser.
		return nil, GlobalOpts{}, &CommandLineError{Err: err}
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		return nil, *global, &CommandLineError{Err: err}
	}

	return ctx, *global, nil
}

func parserOptions(name string) []kong.Option {
	return []kong.Option{
		kong.Name(name),
		kong.Description("Run the test cases registered in the '" + name + "' suite."),
		kong.Configuration(config.Loader, config.DefaultPath),
	}
}
