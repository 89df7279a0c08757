package complete

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// fakeSource is an in-memory AliasSource
type fakeSource struct {
	names   []string
	urls    map[string]string
	ordered bool
	err     error
	calls   int
}

func newFakeSource(pairs ...string) *fakeSource {
	f := &fakeSource{urls: map[string]string{}, ordered: true}
	for i := 0; i+1 < len(pairs); i += 2 {
		f.names = append(f.names, pairs[i])
		f.urls[pairs[i]] = pairs[i+1]
	}
	return f
}

func (f *fakeSource) LookupPrefix(prefix string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, n := range f.names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeSource) Ordered() bool { return f.ordered }

func (f *fakeSource) Describe(name string) string { return f.urls[name] }

// scenarioSource is the alias table {gh, claude, c} in file order
func scenarioSource() *fakeSource {
	return newFakeSource(
		"gh", "https://github.com",
		"claude", "https://claude.ai",
		"c", "https://claude.ai",
	)
}

// panicSource blows up on lookup
type panicSource struct{}

func (panicSource) LookupPrefix(string) ([]string, error) {
	panic("lookup exploded")
}

var errBroken = errors.New("broken source")

// testCommandTree mirrors the shape of the web command line
func testCommandTree() *cobra.Command {
	noop := func(*cobra.Command, []string) {}
	slots := func(spec string) map[string]string {
		return map[string]string{AnnotationSlots: spec}
	}

	root := &cobra.Command{Use: "web [flags] <alias>", Annotations: slots("alias"), Run: noop}
	for _, name := range []string{"safari", "chrome", "firefox", "brave"} {
		root.Flags().Bool(name, false, "Open in "+name)
	}
	root.MarkFlagsMutuallyExclusive("safari", "chrome", "firefox", "brave")
	root.PersistentFlags().CountP("verbose", "v", "Increase verbosity")

	export := &cobra.Command{Use: "export", Short: "Export aliases as TOML", Run: noop}
	export.Flags().StringP("output", "o", "", "Write to a file")

	imp := &cobra.Command{Use: "import <file|->", Short: "Import aliases", Annotations: slots("none"), Run: noop}
	imp.Flags().Bool("keep-existing", false, "Keep current URLs")
	imp.Flags().Bool("overwrite", false, "Use imported URLs")
	imp.MarkFlagsMutuallyExclusive("keep-existing", "overwrite")

	root.AddCommand(
		&cobra.Command{Use: "add <aliases> <url>", Short: "Add aliases", Annotations: slots("none,none"), Run: noop},
		&cobra.Command{Use: "remove <aliases>", Short: "Remove aliases", Annotations: slots("aliases"), Run: noop},
		&cobra.Command{Use: "list", Short: "List all aliases", Run: noop},
		export,
		imp,
		&cobra.Command{Use: "completions <shell>", Short: "Print a completion script", Annotations: slots("shell"), Run: noop},
		&cobra.Command{Use: "version", Short: "Print version information", Run: noop},
		&cobra.Command{Use: "secret", Hidden: true, Run: noop},
	)
	return root
}

// testGrammar is the grammar of testCommandTree with two help topics
func testGrammar() *Grammar {
	return FromCobra(testCommandTree(), "completion", "config")
}
