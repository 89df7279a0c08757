// Package style holds the terminal styles of web's human-facing output.
//
// Styles are defined in the embedded styles.yaml with adaptive colors for
// light and dark terminals, and looked up by name:
//
//	style.GetStyle("Error").Render("Error: ...")
//
// Messages may also carry lowercase tags named after styles:
//
//	style.Render("Added [alias]'gh'[/alias] -> [url]https://github.com[/url]")
//
// lipgloss drops all styling when stdout is not a terminal, so piped output
// stays plain. Completion output never goes through this package.
package style
