// pkg/style/style_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Embedded styles.yaml
// PURPOSE: Test the style registry and markup rendering

package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Muted", "Alias", "URL", "Code", "Bold", "Italic"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be defined", name)
	}
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Equal(t, "plain", GetStyle("NoSuchStyle").Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	defer func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) }()

	err := LoadStylesFromData([]byte("colors:\n  red: {light: '#f00', dark: '#f00'}\nstyles:\n  Alarm: {foreground: red, bold: true}\n"))
	require.NoError(t, err)
	_, ok := StyleRegistry["Alarm"]
	assert.True(t, ok)

	err = LoadStylesFromData([]byte("styles:\n  Broken: {foreground: nope}\n"))
	assert.Error(t, err)

	err = LoadStylesFromData([]byte("styles: [unclosed"))
	assert.Error(t, err)
}

func TestRender_Plain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	tests := []struct {
		in   string
		want string
	}{
		{"Added [alias]'gh'[/alias] -> [url]https://github.com[/url]", "Added 'gh' -> https://github.com"},
		{"[bold]outer [code]inner[/code][/bold]", "outer inner"},
		{"[unknown]kept[/unknown]", "[unknown]kept[/unknown]"},
		{"[alias]mismatched[/url]", "[alias]mismatched[/url]"},
		{"no tags", "no tags"},
	}
	for _, tt := range tests {
		if got := Render(tt.in); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender_Colored(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	out := Render("[error]boom[/error]")
	assert.Contains(t, out, "boom")
	assert.NotEqual(t, "boom", out)
}
