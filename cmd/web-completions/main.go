// web-completions writes the registration script of every supported shell,
// for packaging. With a directory argument each script goes to its
// conventional file name there; otherwise the script of the shell given as
// argument is printed.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/web/pkg/complete"
)

// scriptFiles are the names shells look for in their completion directories
var scriptFiles = map[complete.Dialect]string{
	complete.Bash:       "web.bash",
	complete.Zsh:        "_web",
	complete.Fish:       "web.fish",
	complete.Elvish:     "web.elv",
	complete.PowerShell: "web.ps1",
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|elvish|fish|powershell|zsh> | --dir <directory>\n", os.Args[0])
		os.Exit(1)
	}

	if os.Args[1] == "--dir" {
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Missing directory after --dir")
			os.Exit(1)
		}
		if err := writeAll(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing completion scripts: %v\n", err)
			os.Exit(1)
		}
		return
	}

	dialect, err := complete.ParseDialect(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	script, err := complete.Emit(dialect, "web", "web")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", dialect, err)
		os.Exit(1)
	}
	fmt.Print(script)
}

// writeAll writes one script per dialect into dir. Packaged scripts call
// the binary by name, so it must be on PATH.
func writeAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, d := range complete.Dialects() {
		script, err := complete.Emit(d, "web", "web")
		if err != nil {
			return err
		}
		path := filepath.Join(dir, scriptFiles[d])
		if err := os.WriteFile(path, []byte(script), 0644); err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}
