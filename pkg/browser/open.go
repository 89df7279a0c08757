package browser

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/arthur-debert/web/pkg/errors"
	"github.com/arthur-debert/web/pkg/logging"
)

// Runner starts a command and waits for it
type Runner func(name string, args ...string) error

// Opener turns a choice and a URL into a command and runs it
type Opener struct {
	goos     string
	run      Runner
	lookPath func(file string) (string, error)
}

// Option configures an Opener
type Option func(*Opener)

// WithRunner replaces command execution
func WithRunner(run Runner) Option {
	return func(o *Opener) {
		o.run = run
	}
}

// WithOS pretends to run on goos
func WithOS(goos string) Option {
	return func(o *Opener) {
		o.goos = goos
	}
}

// WithLookPath replaces the PATH lookup used to find browser binaries
func WithLookPath(lookPath func(file string) (string, error)) Option {
	return func(o *Opener) {
		o.lookPath = lookPath
	}
}

// NewOpener creates an opener for the current platform
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		goos:     runtime.GOOS,
		run:      runCommand,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// macApps are the application names `open -a` expects
var macApps = map[Choice]string{
	Safari:  "Safari",
	Chrome:  "Google Chrome",
	Firefox: "Firefox",
	Brave:   "Brave Browser",
}

// unixBinaries are tried in order on Linux and the BSDs
var unixBinaries = map[Choice][]string{
	Chrome:  {"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"},
	Firefox: {"firefox"},
	Brave:   {"brave-browser", "brave"},
}

var windowsNames = map[Choice]string{
	Chrome:  "chrome",
	Firefox: "firefox",
	Brave:   "brave",
}

// Command returns the command that opens url in choice
func (o *Opener) Command(choice Choice, url string) (string, []string, error) {
	switch o.goos {
	case "darwin":
		if choice == Default {
			return "open", []string{url}, nil
		}
		if app, ok := macApps[choice]; ok {
			return "open", []string{"-a", app, url}, nil
		}
	case "windows":
		if choice == Default {
			return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
		}
		if name, ok := windowsNames[choice]; ok {
			return "cmd", []string{"/c", "start", "", name, url}, nil
		}
	default:
		if choice == Default {
			return "xdg-open", []string{url}, nil
		}
		if candidates, ok := unixBinaries[choice]; ok {
			for _, bin := range candidates {
				if _, err := o.lookPath(bin); err == nil {
					return bin, []string{url}, nil
				}
			}
			return "", nil, errors.Newf(errors.ErrBrowserLaunch, "%s not found (tried %s)",
				choice, strings.Join(candidates, ", ")).
				WithDetail("browser", choice.String())
		}
	}

	return "", nil, errors.Newf(errors.ErrBrowserLaunch, "%s is not available on %s", choice, o.goos).
		WithDetail("browser", choice.String())
}

// Open opens url in choice
func (o *Opener) Open(choice Choice, url string) error {
	logger := logging.GetLogger("browser")

	name, args, err := o.Command(choice, url)
	if err != nil {
		return err
	}

	logger.Debug().Str("browser", choice.String()).Str("command", name).Strs("args", args).Msg("Opening URL")
	if err := o.run(name, args...); err != nil {
		return errors.Wrapf(err, errors.ErrBrowserLaunch, "Failed to open %s", url).
			WithDetail("browser", choice.String()).
			WithDetail("url", url)
	}
	return nil
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}
