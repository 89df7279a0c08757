// internal/cli/helpers_test.go
// TEST TYPE: Test helpers
// DEPENDENCIES: pkg/testutil
// PURPOSE: Run the command tree against an isolated config file

package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/web/pkg/browser"
	"github.com/arthur-debert/web/pkg/testutil"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// Styled output must be plain for the assertions below.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// launch records browser launches instead of running them
type launch struct {
	name string
	args []string
}

type launches struct {
	calls []launch
}

func (l *launches) run(name string, args ...string) error {
	l.calls = append(l.calls, launch{name: name, args: args})
	return nil
}

func (l *launches) opener() *browser.Opener {
	return browser.NewOpener(browser.WithOS("darwin"), browser.WithRunner(l.run))
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the command tree with args and stdin
func execute(t *testing.T, stdin string, args []string, opts ...Option) result {
	t.Helper()

	cmd := NewRootCmd(append([]Option{WithArgv0("web")}, opts...)...)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var in io.Reader = strings.NewReader(stdin)
	cmd.SetIn(in)
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func newEnv(t *testing.T, config string) *testutil.TestEnvironment {
	t.Helper()

	env := testutil.NewTestEnvironment(t)
	if config != "" {
		env.WriteConfig(config)
	}
	return env
}
