package run_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smiranda/microunit/internal/catalog"
	"github.com/smiranda/microunit/internal/cli/run"
	"github.com/smiranda/microunit/internal/runner"
	"github.com/smiranda/microunit/pkg/microunit/core"
	"github.com/smiranda/microunit/pkg/microunit/suite"
)

func newSuite(t *testing.T, registrants ...core.UnitRegistrant) *suite.MicrounitSuite {
	t.Helper()
	log, _ := test.NewNullLogger()
	s := suite.NewSuite("microunit-test", log)
	for _, r := range registrants {
		s.AddUnits(r)
	}
	return s
}

func TestRunCmdPasses(t *testing.T) {
	s := newSuite(t, core.Units("arith", func(r core.UnitRegistrar) {
		r.Unit("Adds", func(core.TestCase) core.Result {
			return core.AssertTrue(1+1 == 2)
		})
	}))

	var out bytes.Buffer
	cmd := run.RunCmd{Width: 10, Color: "never"}
	require.NoError(t, cmd.Run(s, &out))

	want := "----------\n" +
		"[    ] Test case 'Adds'\n" +
		"[    ] Success\n" +
		"----------\n" +
		"----------\n" +
		"[    ] All tests passed\n" +
		"----------\n"
	assert.Equal(t, want, out.String())
}

func TestRunCmdFails(t *testing.T) {
	s := newSuite(t, core.Units("arith", func(r core.UnitRegistrar) {
		r.Unit("Bad", func(core.TestCase) core.Result {
			return core.Fail()
		})
		r.Unit("Good", func(core.TestCase) core.Result {
			return core.Pass()
		})
	}))

	var out bytes.Buffer
	cmd := run.RunCmd{Width: 10, Color: "never"}
	err := cmd.Run(s, &out)

	var failed *runner.FailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, []string{"Bad"}, failed.Failures)
}

func TestRunCmdRegistrationError(t *testing.T) {
	ran := false
	s := newSuite(t, core.Units("broken", func(r core.UnitRegistrar) {
		r.Unit("Not valid", func(core.TestCase) core.Result {
			ran = true
			return core.Pass()
		})
	}))

	var out bytes.Buffer
	cmd := run.RunCmd{Width: 10, Color: "never"}
	err := cmd.Run(s, &out)

	require.Error(t, err)
	assert.True(t, catalog.IsRegistrationError(err))
	assert.False(t, ran)
	assert.Empty(t, out.String())
}

func TestRunCmdInvalidColor(t *testing.T) {
	var out bytes.Buffer
	cmd := run.RunCmd{Width: 10, Color: "sometimes"}
	assert.Error(t, cmd.Run(newSuite(t), &out))
}
