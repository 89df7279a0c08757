package complete

import (
	"strconv"
	"strings"

	"github.com/google/shlex"
)

const (
	// EnvComplete carries the dialect name and marks a completion invocation
	EnvComplete = "COMPLETE"
	// EnvIndex carries the word index of the cursor, program name at 0
	EnvIndex = "_WEB_COMPLETE_INDEX"
	// Separator splits the binary's own argv from the line being completed
	Separator = "--"
)

// Env looks up an environment variable; os.LookupEnv satisfies it
type Env func(key string) (string, bool)

// MapEnv returns an Env backed by m
func MapEnv(m map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Kind tells the modes apart
type Kind int

const (
	// None is an ordinary invocation
	None Kind = iota
	// Register prints the registration script
	Register
	// Answer prints completion candidates
	Answer
)

func (k Kind) String() string {
	switch k {
	case Register:
		return "register"
	case Answer:
		return "answer"
	default:
		return "none"
	}
}

// Mode is what a completion invocation asks for. It is derived once from the
// environment and argv.
type Mode struct {
	Kind    Kind
	Dialect Dialect
	// Args is the command line being completed, without the program name.
	// In Answer mode Cursor always indexes a word of Args.
	Args   []string
	Cursor int
}

// Current returns the word under the cursor
func (m Mode) Current() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Args) {
		return ""
	}
	return m.Args[m.Cursor]
}

// ParseMode reads the protocol signal from env and the process arguments
// (args[0] is the binary). Without COMPLETE it returns a None mode. An
// unknown dialect name still yields the detected kind along with an
// UNSUPPORTED_SHELL error.
func ParseMode(env Env, args []string) (Mode, error) {
	name, ok := env(EnvComplete)
	if !ok || name == "" {
		return Mode{Kind: None}, nil
	}

	words, answer := afterSeparator(args)
	mode := Mode{Kind: Register}
	if answer {
		mode.Kind = Answer
	}

	dialect, err := ParseDialect(name)
	if err != nil {
		return mode, err
	}
	mode.Dialect = dialect

	if !answer {
		return mode, nil
	}

	if dialect.LineMode() && len(words) == 1 {
		words = splitLine(words[0])
	}

	// The shell includes the program name as the first word.
	var partial []string
	if len(words) > 0 {
		partial = append(partial, words[1:]...)
	}

	mode.Args, mode.Cursor = placeCursor(partial, env)
	return mode, nil
}

// afterSeparator returns the words following the first "--" in argv
func afterSeparator(args []string) ([]string, bool) {
	if len(args) < 2 {
		return nil, false
	}
	for i, arg := range args[1:] {
		if arg == Separator {
			return args[i+2:], true
		}
	}
	return nil, false
}

// placeCursor turns the shell's cursor index into an index into args. The
// shell counts the program name as word 0. Without a usable index the last
// word is completed. A cursor past the last word means a new, empty word.
func placeCursor(args []string, env Env) ([]string, int) {
	cursor := len(args) - 1
	if raw, ok := env(EnvIndex); ok {
		if index, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			cursor = index - 1
		}
	}

	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(args) {
		cursor = len(args)
		args = append(args, "")
	}
	return args, cursor
}

// splitLine splits a whole command line into words. Trailing whitespace
// means the cursor sits on a new word.
func splitLine(line string) []string {
	words, err := shlex.Split(line)
	if err != nil {
		words = strings.Fields(line)
	}
	if line != "" && strings.TrimRight(line, " \t") != line {
		words = append(words, "")
	}
	return words
}
