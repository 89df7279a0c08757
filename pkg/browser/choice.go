package browser

import (
	"strings"

	"github.com/arthur-debert/web/pkg/errors"
)

// Choice is the browser a URL is opened in
type Choice int

const (
	// Default uses the system URL handler
	Default Choice = iota
	Safari
	Chrome
	Firefox
	Brave
)

var choiceNames = []string{"default", "safari", "chrome", "firefox", "brave"}

// Choices returns every choice, default first
func Choices() []Choice {
	return []Choice{Default, Safari, Chrome, Firefox, Brave}
}

// String returns the name used in config files and flags
func (c Choice) String() string {
	if int(c) < 0 || int(c) >= len(choiceNames) {
		return "unknown"
	}
	return choiceNames[c]
}

// ParseChoice reads a browser name. Matching ignores case; an empty name is
// the default browser.
func ParseChoice(name string) (Choice, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default, nil
	}
	for i, n := range choiceNames {
		if n == name {
			return Choice(i), nil
		}
	}
	return Default, errors.Newf(errors.ErrInvalidInput, "unknown browser %q (expected one of: %s)",
		name, strings.Join(choiceNames, ", ")).
		WithDetail("browser", name)
}

// UnmarshalText lets config decoding produce a Choice
func (c *Choice) UnmarshalText(text []byte) error {
	parsed, err := ParseChoice(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText renders the choice name
func (c Choice) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
