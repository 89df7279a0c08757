package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/web/internal/cli"
	"github.com/arthur-debert/web/pkg/aliases"
	"github.com/arthur-debert/web/pkg/complete"
	"github.com/arthur-debert/web/pkg/config"
	"github.com/arthur-debert/web/pkg/paths"
	"github.com/arthur-debert/web/pkg/style"
)

func main() {
	os.Exit(run(os.LookupEnv, os.Args, os.Stdout, os.Stderr))
}

// run answers completion requests first; only when the shell is not asking
// does the regular command line get parsed.
func run(env complete.Env, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		args = []string{"web"}
	}

	rootCmd := cli.NewRootCmd(cli.WithArgv0(args[0]))

	handled, code := complete.Dispatch(env, args, stdout,
		complete.WithGrammar(cli.Grammar(rootCmd)),
		complete.WithSource(aliasSource),
		complete.WithDescriptions(descriptionsEnabled),
	)
	if handled {
		return code
	}

	rootCmd.SetArgs(args[1:])
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, style.GetStyle("Error").Render(cli.MsgErrorPrefix+err.Error()))
		return 1
	}
	return 0
}

// aliasSource reads the config file afresh for every completion request
func aliasSource() complete.AliasSource {
	p, err := paths.New()
	if err != nil {
		return nil
	}
	return aliases.NewFileSource(p.ConfigFile())
}

func descriptionsEnabled() bool {
	p, err := paths.New()
	if err != nil {
		return false
	}
	return config.DescriptionsEnabled(p.ConfigFile())
}
