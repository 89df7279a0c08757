package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/web/pkg/aliases"
	"github.com/arthur-debert/web/pkg/browser"
	"github.com/arthur-debert/web/pkg/cobrax/topics"
	"github.com/arthur-debert/web/pkg/config"
	"github.com/arthur-debert/web/pkg/errors"
	"github.com/arthur-debert/web/pkg/logging"
	"github.com/arthur-debert/web/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Command groups
const (
	groupCore = "core"
	groupMisc = "misc"
)

// app carries what the commands share
type app struct {
	argv0     string
	opener    *browser.Opener
	resolver  aliases.Resolver
	verbosity int
}

// Option customizes the command tree, mostly for tests
type Option func(*app)

// WithArgv0 sets the argv[0] used for the completion scripts
func WithArgv0(argv0 string) Option {
	return func(a *app) {
		a.argv0 = argv0
	}
}

// WithOpener replaces the browser launcher
func WithOpener(o *browser.Opener) Option {
	return func(a *app) {
		a.opener = o
	}
}

// WithConflictResolver answers import conflicts instead of prompting
func WithConflictResolver(r aliases.Resolver) Option {
	return func(a *app) {
		a.resolver = r
	}
}

// browserFlags are the mutually exclusive --safari/--chrome/... flags
type browserFlags struct {
	safari, chrome, firefox, brave bool
}

func (f *browserFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.safari, "safari", false, "Open in Safari")
	cmd.Flags().BoolVar(&f.chrome, "chrome", false, "Open in Google Chrome")
	cmd.Flags().BoolVar(&f.firefox, "firefox", false, "Open in Firefox")
	cmd.Flags().BoolVar(&f.brave, "brave", false, "Open in Brave")
	cmd.MarkFlagsMutuallyExclusive("safari", "chrome", "firefox", "brave")
}

// choice returns the browser picked on the command line, Default if none
func (f *browserFlags) choice() browser.Choice {
	switch {
	case f.safari:
		return browser.Safari
	case f.chrome:
		return browser.Chrome
	case f.firefox:
		return browser.Firefox
	case f.brave:
		return browser.Brave
	}
	return browser.Default
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts ...Option) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{argv0: os.Args[0]}
	for _, opt := range opts {
		opt(a)
	}
	if a.opener == nil {
		a.opener = browser.NewOpener()
	}

	var flags browserFlags

	rootCmd := &cobra.Command{
		Use:         "web [flags] <alias>",
		Short:       MsgRootShort,
		Long:        MsgRootLong,
		Example:     MsgRootExample,
		Args:        cobra.MaximumNArgs(1),
		Annotations: slots("alias"),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrNoAlias, MsgErrNoAlias)
			}
			return a.open(args[0], flags.choice())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.register(rootCmd)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCore,
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupMisc,
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(a.newAddCmd())
	rootCmd.AddCommand(a.newRemoveCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newExportCmd())
	rootCmd.AddCommand(a.newImportCmd())
	rootCmd.AddCommand(a.newCompletionsCmd())
	rootCmd.AddCommand(a.newVersionCmd())

	// Initialize topic-based help system from the embedded topics
	topicFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if _, err := topics.InitializeWithOptions(rootCmd, topicFS, opts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}
	rootCmd.SetHelpCommandGroupID(groupMisc)

	return rootCmd
}

// store returns the alias store of the active config file
func (a *app) store() (*aliases.Store, error) {
	p, err := paths.New()
	if err != nil {
		return nil, err
	}
	return aliases.NewStore(p.ConfigFile()), nil
}

// open resolves alias and launches it. A browser flag wins over the
// configured browser.
func (a *app) open(alias string, flagChoice browser.Choice) error {
	logger := logging.GetLogger("cli.open")

	store, err := a.store()
	if err != nil {
		return err
	}

	url, err := store.Resolve(alias)
	if err != nil {
		return err
	}

	cfg, err := config.Load(store.Path())
	if err != nil {
		return err
	}

	choice := cfg.Settings.Browser
	if flagChoice != browser.Default {
		choice = flagChoice
	}

	logger.Info().
		Str("alias", alias).
		Str("url", url).
		Str("browser", choice.String()).
		Msgf(MsgOpening, url)

	return a.opener.Open(choice, url)
}
