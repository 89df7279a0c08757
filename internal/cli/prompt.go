package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/web/pkg/aliases"
	"github.com/arthur-debert/web/pkg/errors"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// conflictOptions lists the answers offered for c. The "all" answers only
// make sense while more than one conflict is left.
func conflictOptions(c aliases.Conflict, remaining int) []huh.Option[aliases.Decision] {
	options := []huh.Option[aliases.Decision]{
		huh.NewOption(fmt.Sprintf(MsgKeepExisting, c.Existing), aliases.KeepExisting),
		huh.NewOption(fmt.Sprintf(MsgUseImported, c.Imported), aliases.UseImported),
	}
	if remaining > 1 {
		options = append(options,
			huh.NewOption(MsgKeepAllExisting, aliases.KeepAllExisting),
			huh.NewOption(MsgUseAllImported, aliases.UseAllImported),
		)
	}
	return options
}

// promptResolver asks about each conflict with a huh select. Without a
// terminal on stdin there is nobody to ask, so any conflict is an error.
func promptResolver(in io.Reader, out io.Writer) aliases.Resolver {
	return func(c aliases.Conflict, remaining int) (aliases.Decision, error) {
		if !isTerminal(in) {
			return aliases.KeepExisting, errors.Newf(errors.ErrImport, MsgErrNeedsTerminal, c.Name).
				WithDetail("alias", c.Name)
		}

		decision := aliases.KeepExisting
		sel := huh.NewSelect[aliases.Decision]().
			Title(fmt.Sprintf(MsgConflictTitle, c.Name)).
			Description(fmt.Sprintf(MsgConflictDesc, c.Existing, c.Imported)).
			Options(conflictOptions(c, remaining)...).
			Value(&decision)

		err := huh.NewForm(huh.NewGroup(sel)).
			WithInput(in).
			WithOutput(out).
			Run()
		return decision, err
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
