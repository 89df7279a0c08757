package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/web/internal/cli"
	"github.com/arthur-debert/web/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.WithArgv0("web"))
	rootCmd.InitDefaultHelpCmd()

	header := &doc.GenManHeader{
		Title:   "WEB",
		Section: "1",
		Source:  "web " + version.Version,
		Manual:  "web manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
