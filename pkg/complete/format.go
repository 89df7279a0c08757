package complete

import (
	"strings"
	"unicode/utf8"
)

// Format renders candidates for d, one per line. Values that would break
// the line protocol (empty, multi-line, invalid UTF-8) are dropped.
//
// With descriptions, fish lines become "value<TAB>help" and zsh lines
// "value:help". Zsh always escapes ":" in values, since its completion
// function reads the lines as _describe specs.
func Format(d Dialect, candidates []Candidate, descriptions bool) string {
	var b strings.Builder
	for _, c := range candidates {
		if !printable(c.Value) {
			continue
		}
		value := c.Value
		help := ""
		if descriptions {
			help = cleanHelp(c.Help)
		}

		switch d {
		case Zsh:
			value = strings.ReplaceAll(value, ":", `\:`)
			if help != "" {
				value += ":" + help
			}
		case Fish:
			if help != "" {
				value += "\t" + help
			}
		}

		b.WriteString(value)
		b.WriteString("\n")
	}
	return b.String()
}

func printable(value string) bool {
	return value != "" &&
		utf8.ValidString(value) &&
		!strings.ContainsAny(value, "\r\n")
}

// cleanHelp flattens help text onto one line without tabs
func cleanHelp(help string) string {
	if !utf8.ValidString(help) {
		return ""
	}
	return strings.Join(strings.Fields(help), " ")
}
