package complete

import (
	"bytes"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arthur-debert/web/pkg/errors"
	"mvdan.cc/sh/v3/syntax"
)

var scriptTemplates = map[Dialect]*template.Template{
	Bash:       template.Must(template.New("bash").Parse(bashScript)),
	Zsh:        template.Must(template.New("zsh").Parse(zshScript)),
	Fish:       template.Must(template.New("fish").Parse(fishScript)),
	Elvish:     template.Must(template.New("elvish").Parse(elvishScript)),
	PowerShell: template.Must(template.New("powershell").Parse(powershellScript)),
}

type scriptData struct {
	Program     string
	Bin         string
	Callback    string
	Dialect     string
	CompleteVar string
	IndexVar    string
	Separator   string
}

// Emit renders the registration script for d. programName is the command the
// shell completes; binPath is what the callback runs, defaulting to
// programName. The output depends only on the arguments.
func Emit(d Dialect, programName, binPath string) (string, error) {
	tmpl, ok := scriptTemplates[d]
	if !ok {
		return "", UnsupportedShell(d.String())
	}
	if programName == "" {
		return "", errors.New(errors.ErrInvalidInput, "program name cannot be empty")
	}
	if binPath == "" {
		binPath = programName
	}

	program, err := quoteFor(d, programName)
	if err != nil {
		return "", err
	}
	bin, err := quoteFor(d, binPath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, scriptData{
		Program:     program,
		Bin:         bin,
		Callback:    CallbackName(programName),
		Dialect:     d.String(),
		CompleteVar: EnvComplete,
		IndexVar:    EnvIndex,
		Separator:   Separator,
	})
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to render %s completion script", d)
	}
	return buf.String(), nil
}

// CallbackName derives the shell function name from the program name, e.g.
// "web" -> "_web_complete". Characters outside [A-Za-z0-9_] become "_".
func CallbackName(programName string) string {
	var b strings.Builder
	b.WriteString("_")
	for _, r := range programName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	b.WriteString("_complete")
	return b.String()
}

// ProgramName is the command name the shell sees for argv0
func ProgramName(argv0 string) string {
	return filepath.Base(argv0)
}

// BinPath is the command the callback runs. A relative path is made absolute
// so the script keeps working from any directory; a bare name is looked up in
// PATH by the shell.
func BinPath(argv0 string) string {
	if !strings.ContainsRune(argv0, filepath.Separator) && !strings.ContainsRune(argv0, '/') {
		return argv0
	}
	if abs, err := filepath.Abs(argv0); err == nil {
		return abs
	}
	return argv0
}

// quoteFor quotes s as a single word of d's syntax
func quoteFor(d Dialect, s string) (string, error) {
	switch d {
	case Bash, Zsh:
		quoted, err := syntax.Quote(s, syntax.LangBash)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot quote %q for %s", s, d)
		}
		return quoted, nil
	case Fish:
		if isPlainWord(s) {
			return s, nil
		}
		r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
		return "'" + r.Replace(s) + "'", nil
	case Elvish, PowerShell:
		return "'" + strings.ReplaceAll(s, "'", "''") + "'", nil
	default:
		return "", UnsupportedShell(d.String())
	}
}

func isPlainWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("-_./+", r):
		default:
			return false
		}
	}
	return true
}
