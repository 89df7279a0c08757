// pkg/browser/browser_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Fake command runner
// PURPOSE: Test browser choice parsing and the per-platform launch commands

package browser

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/web/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want Choice
	}{
		{"", Default},
		{"default", Default},
		{"safari", Safari},
		{"Chrome", Chrome},
		{" firefox ", Firefox},
		{"BRAVE", Brave},
	}
	for _, tt := range tests {
		got, err := ParseChoice(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseChoice("netscape")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestChoice_Text(t *testing.T) {
	for _, c := range Choices() {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back Choice
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}
	assert.Equal(t, "unknown", Choice(17).String())
}

type recorder struct {
	name string
	args []string
	err  error
}

func (r *recorder) run(name string, args ...string) error {
	r.name, r.args = name, args
	return r.err
}

func found(names ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, n := range names {
			if n == file {
				return "/usr/bin/" + n, nil
			}
		}
		return "", stderrors.New("not found")
	}
}

func TestOpener_Command(t *testing.T) {
	const url = "https://github.com"

	tests := []struct {
		name     string
		goos     string
		choice   Choice
		onPath   []string
		wantName string
		wantArgs []string
	}{
		{"mac default", "darwin", Default, nil, "open", []string{url}},
		{"mac safari", "darwin", Safari, nil, "open", []string{"-a", "Safari", url}},
		{"mac chrome", "darwin", Chrome, nil, "open", []string{"-a", "Google Chrome", url}},
		{"mac brave", "darwin", Brave, nil, "open", []string{"-a", "Brave Browser", url}},
		{"linux default", "linux", Default, nil, "xdg-open", []string{url}},
		{"linux chromium", "linux", Chrome, []string{"chromium"}, "chromium", []string{url}},
		{"linux chrome preferred", "linux", Chrome, []string{"chromium", "google-chrome"}, "google-chrome", []string{url}},
		{"linux firefox", "linux", Firefox, []string{"firefox"}, "firefox", []string{url}},
		{"windows default", "windows", Default, nil, "rundll32", []string{"url.dll,FileProtocolHandler", url}},
		{"windows firefox", "windows", Firefox, nil, "cmd", []string{"/c", "start", "", "firefox", url}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOpener(WithOS(tt.goos), WithLookPath(found(tt.onPath...)))
			name, args, err := o.Command(tt.choice, url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestOpener_CommandUnavailable(t *testing.T) {
	o := NewOpener(WithOS("linux"), WithLookPath(found()))

	_, _, err := o.Command(Safari, "https://example.com")
	assert.True(t, errors.IsErrorCode(err, errors.ErrBrowserLaunch))

	_, _, err = o.Command(Brave, "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brave-browser, brave")

	_, _, err = NewOpener(WithOS("windows")).Command(Safari, "https://example.com")
	assert.True(t, errors.IsErrorCode(err, errors.ErrBrowserLaunch))
}

func TestOpener_Open(t *testing.T) {
	rec := &recorder{}
	o := NewOpener(WithOS("darwin"), WithRunner(rec.run))

	require.NoError(t, o.Open(Firefox, "https://go.dev"))
	assert.Equal(t, "open", rec.name)
	assert.Equal(t, []string{"-a", "Firefox", "https://go.dev"}, rec.args)

	rec.err = stderrors.New("exit status 1")
	err := o.Open(Default, "https://go.dev")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBrowserLaunch))
	assert.Equal(t, "https://go.dev", errors.GetErrorDetails(err)["url"])
}
