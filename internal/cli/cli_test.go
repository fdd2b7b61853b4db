package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*cli, *kong.Context, error) {
	t.Helper()
	if value, ok := os.LookupEnv("TF_BUILD"); ok {
		require.NoError(t, os.Unsetenv("TF_BUILD"))
		t.Cleanup(func() { os.Setenv("TF_BUILD", value) })
	}

	c := &cli{}
	options := append(parserOptions("microunit-test"), kong.Exit(func(int) {
		t.Fatal("parser tried to exit")
	}))
	parser, err := kong.New(c, options...)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	return c, ctx, err
}

func TestParseDefaults(t *testing.T) {
	c, ctx, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, "run", ctx.Command())
	assert.Equal(t, logrus.InfoLevel, c.Global.Verbosity)
	assert.False(t, c.Global.AzureDevops)
	assert.Equal(t, 80, c.Run.Width)
	assert.Equal(t, "auto", c.Run.Color)
}

func TestParseFlags(t *testing.T) {
	c, ctx, err := parse(t, "-v", "debug", "run", "--width", "0", "--color", "never")
	require.NoError(t, err)

	assert.Equal(t, "run", ctx.Command())
	assert.Equal(t, logrus.DebugLevel, c.Global.Verbosity)
	assert.Equal(t, 0, c.Run.Width)
	assert.Equal(t, "never", c.Run.Color)
}

func TestParseList(t *testing.T) {
	_, ctx, err := parse(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "list units", ctx.Command())

	_, ctx, err = parse(t, "list", "registrants")
	require.NoError(t, err)
	assert.Equal(t, "list registrants", ctx.Command())
}

func TestParseInvalidColor(t *testing.T) {
	_, _, err := parse(t, "run", "--color", "sometimes")
	assert.Error(t, err)
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "microunit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbosity: trace\nwidth: 33\ncolor: always\nazure-devops: true\n"), 0644))

	t.Run("file values apply", func(t *testing.T) {
		c, _, err := parse(t, "--config", path)
		require.NoError(t, err)

		assert.Equal(t, logrus.TraceLevel, c.Global.Verbosity)
		assert.True(t, c.Global.AzureDevops)
		assert.Equal(t, 33, c.Run.Width)
		assert.Equal(t, "always", c.Run.Color)
	})

	t.Run("flags win over file", func(t *testing.T) {
		c, _, err := parse(t, "--config", path, "run", "--width", "12")
		require.NoError(t, err)
		assert.Equal(t, 12, c.Run.Width)
	})
}

func parseCommandLine(t *testing.T, args ...string) (GlobalOpts, *bytes.Buffer, error) {
	t.Helper()
	var stdout bytes.Buffer
	_, global, err := ParseCommandLine("microunit-test", args,
		kong.Writers(&stdout, &stdout),
		kong.Exit(func(int) {
			t.Fatal("parser tried to exit")
		}))
	return global, &stdout, err
}

func writeConfig(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCommandLineErrors(t *testing.T) {
	t.Run("invalid config file", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "microunit.yaml", "width: -5\n")

		_, _, err := parseCommandLine(t, "--config", path)
		require.Error(t, err)
		assert.True(t, IsCommandLineError(err))
		assert.Contains(t, err.Error(), "config validation failed")
	})

	t.Run("invalid default config file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".microunit.yaml", "filter: Test_*\n")
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { os.Chdir(wd) })

		_, _, err = parseCommandLine(t)
		require.Error(t, err)
		assert.True(t, IsCommandLineError(err))
	})

	t.Run("unknown flag prints usage", func(t *testing.T) {
		_, stdout, err := parseCommandLine(t, "--no-such-flag")
		require.Error(t, err)
		assert.True(t, IsCommandLineError(err))
		assert.Contains(t, stdout.String(), "Usage: microunit-test")
	})

	t.Run("valid command line", func(t *testing.T) {
		global, _, err := parseCommandLine(t, "-v", "warn")
		require.NoError(t, err)
		assert.False(t, IsCommandLineError(err))
		assert.Equal(t, logrus.WarnLevel, global.Verbosity)
	})
}

func TestConfigFileOverridesEnvironment(t *testing.T) {
	t.Setenv("TF_BUILD", "true")

	global, _, err := parseCommandLine(t)
	require.NoError(t, err)
	assert.True(t, global.AzureDevops)

	path := writeConfig(t, t.TempDir(), "microunit.yaml", "azure-devops: false\n")
	global, _, err = parseCommandLine(t, "--config", path)
	require.NoError(t, err)
	assert.False(t, global.AzureDevops)

	global, _, err = parseCommandLine(t, "--config", path, "--azure-devops")
	require.NoError(t, err)
	assert.True(t, global.AzureDevops)
}
