package cli

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/web/pkg/complete"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// slots marks which positional arguments shell completion fills in
func slots(spec string) map[string]string {
	return map[string]string{complete.AnnotationSlots: spec}
}

// Grammar is the shell completion grammar of a tree built by NewRootCmd
func Grammar(root *cobra.Command) *complete.Grammar {
	return complete.FromCobra(root, topicNames()...)
}

func topicNames() []string {
	entries, err := topicFiles.ReadDir("topics")
	if err != nil {
		return nil
	}
	return lo.FilterMap(entries, func(e fs.DirEntry, _ int) (string, bool) {
		return strings.CutSuffix(e.Name(), ".md")
	})
}
