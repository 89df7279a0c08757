package aliases

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/web/pkg/errors"
)

// Separator splits several alias names given as one argument (e.g. "claude,c")
const Separator = ","

// ParseNames splits a comma-separated list of alias names, trimming blanks
// and dropping empty entries.
func ParseNames(arg string) []string {
	parts := strings.Split(arg, Separator)
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ValidateName checks that name can be stored and later typed as a single
// shell word.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrAliasInvalid, "Alias name cannot be empty")
	case strings.Contains(name, Separator):
		return errors.Newf(errors.ErrAliasInvalid, "Alias '%s' must not contain '%s'", name, Separator).
			WithDetail("alias", name)
	case strings.HasPrefix(name, "-"):
		return errors.Newf(errors.ErrAliasInvalid, "Alias '%s' must not start with '-'", name).
			WithDetail("alias", name)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return errors.Newf(errors.ErrAliasInvalid, "Alias '%s' must not contain whitespace", name).
			WithDetail("alias", name)
	}
	return nil
}

// Quote renders names the way messages show them: 'a', 'b'
func Quote(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return strings.Join(quoted, ", ")
}
