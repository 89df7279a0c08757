package complete

import (
	"strings"

	"github.com/arthur-debert/web/pkg/errors"
)

// Dialect is a shell completion is generated for
type Dialect int

const (
	Bash Dialect = iota + 1
	Zsh
	Fish
	Elvish
	PowerShell
)

// dialects is the closed set of supported shells, sorted by name
var dialects = []Dialect{Bash, Elvish, Fish, PowerShell, Zsh}

var dialectNames = map[Dialect]string{
	Bash:       "bash",
	Zsh:        "zsh",
	Fish:       "fish",
	Elvish:     "elvish",
	PowerShell: "powershell",
}

// dialectAliases are extra names accepted by ParseDialect
var dialectAliases = map[string]Dialect{
	"pwsh": PowerShell,
}

// String returns the name used on the command line and in COMPLETE
func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether d is one of the supported shells
func (d Dialect) Valid() bool {
	_, ok := dialectNames[d]
	return ok
}

// LineMode reports whether the shell sends the command line as a single
// string instead of pre-split words.
func (d Dialect) LineMode() bool {
	return d == PowerShell
}

// Dialects returns every supported shell, sorted by name
func Dialects() []Dialect {
	return append([]Dialect(nil), dialects...)
}

// DialectNames returns the names of the supported shells, sorted
func DialectNames() []string {
	names := make([]string, len(dialects))
	for i, d := range dialects {
		names[i] = d.String()
	}
	return names
}

// ParseDialect maps a shell name to its Dialect. Names are case-sensitive.
func ParseDialect(name string) (Dialect, error) {
	for d, n := range dialectNames {
		if n == name {
			return d, nil
		}
	}
	if d, ok := dialectAliases[name]; ok {
		return d, nil
	}
	return 0, UnsupportedShell(name)
}

// UnsupportedShell is the error for a shell name outside the supported set
func UnsupportedShell(name string) error {
	return errors.Newf(errors.ErrUnsupportedShell, "unsupported shell %q (supported: %s)",
		name, strings.Join(DialectNames(), ", ")).
		WithDetail("shell", name)
}
