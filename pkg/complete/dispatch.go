package complete

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arthur-debert/web/pkg/logging"
)

type options struct {
	source       func() AliasSource
	descriptions func() bool
	grammar      *Grammar
	program      string
	binPath      string
	setupLogger  bool
}

// Option configures Dispatch
type Option func(*options)

// WithSource sets where alias names come from. newSource is only called for
// answer invocations that need aliases.
func WithSource(newSource func() AliasSource) Option {
	return func(o *options) {
		o.source = newSource
	}
}

// WithDescriptions turns on help text in fish and zsh answers when enabled
// returns true. It is only called in answer mode.
func WithDescriptions(enabled func() bool) Option {
	return func(o *options) {
		o.descriptions = enabled
	}
}

// WithGrammar sets the command line grammar. Without one every first word
// completes as an alias.
func WithGrammar(g *Grammar) Option {
	return func(o *options) {
		o.grammar = g
	}
}

// WithProgram overrides the program name and binary path used in
// registration scripts, which default to ProgramName(args[0]) and
// BinPath(args[0]).
func WithProgram(programName, binPath string) Option {
	return func(o *options) {
		o.program = programName
		o.binPath = binPath
	}
}

// WithoutLoggerSetup leaves the global logger alone
func WithoutLoggerSetup() Option {
	return func(o *options) {
		o.setupLogger = false
	}
}

// Dispatch handles completion invocations. It must run before anything else
// in main: when COMPLETE is not set it returns (false, 0) without touching
// anything. Otherwise the invocation is handled and the caller exits with
// code, which is always 0. Output is buffered and written only when the
// request was served completely; errors and panics produce no output at all.
func Dispatch(env Env, args []string, stdout io.Writer, opts ...Option) (handled bool, code int) {
	if name, ok := env(EnvComplete); !ok || name == "" {
		return false, 0
	}

	o := &options{setupLogger: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.setupLogger {
		logging.SetupCompletionLogger()
	}
	logger := logging.GetLogger("complete")

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("panic", fmt.Sprint(r)).Msg("Completion panicked")
			handled, code = true, 0
		}
	}()

	mode, err := ParseMode(env, args)
	if err != nil {
		logger.Debug().Err(err).Str("mode", mode.Kind.String()).Msg("Ignoring completion request")
		return true, 0
	}

	var out bytes.Buffer
	switch mode.Kind {
	case Register:
		script, err := Emit(mode.Dialect, o.programName(args), o.binPathFor(args))
		if err != nil {
			logger.Debug().Err(err).Msg("Failed to emit registration script")
			return true, 0
		}
		out.WriteString(script)
	case Answer:
		candidates := o.grammarOrDefault().Complete(NewResolver(o.aliasSource()), mode.Args, mode.Cursor)
		out.WriteString(Format(mode.Dialect, candidates, o.descriptionsEnabled()))
		logger.Debug().
			Str("dialect", mode.Dialect.String()).
			Strs("args", mode.Args).
			Int("cursor", mode.Cursor).
			Int("candidates", len(candidates)).
			Msg("Answered completion request")
	}

	if _, err := stdout.Write(out.Bytes()); err != nil {
		logger.Debug().Err(err).Msg("Failed to write completion output")
	}
	return true, 0
}

func (o *options) programName(args []string) string {
	if o.program != "" {
		return o.program
	}
	if len(args) == 0 {
		return "web"
	}
	return ProgramName(args[0])
}

func (o *options) binPathFor(args []string) string {
	if o.binPath != "" {
		return o.binPath
	}
	if len(args) == 0 {
		return o.programName(args)
	}
	return BinPath(args[0])
}

func (o *options) grammarOrDefault() *Grammar {
	if o.grammar != nil {
		return o.grammar
	}
	return &Grammar{}
}

// aliasSource builds the source lazily so that a failing constructor only
// costs the alias candidates.
func (o *options) aliasSource() AliasSource {
	if o.source == nil {
		return nil
	}
	return o.source()
}

func (o *options) descriptionsEnabled() bool {
	return o.descriptions != nil && o.descriptions()
}
