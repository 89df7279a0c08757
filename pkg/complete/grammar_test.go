// pkg/complete/grammar_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory alias sources
// PURPOSE: Test which candidates each position of the command line gets

package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrammar_Complete(t *testing.T) {
	allCommands := []string{"add", "completions", "export", "help", "import", "list", "remove", "version"}

	tests := []struct {
		name   string
		args   []string
		cursor int
		want   []string
	}{
		{"root empty word", []string{""}, 0, append([]string{"gh", "claude", "c"}, allCommands...)},
		{"root aliases before commands", []string{"c"}, 0, []string{"claude", "c", "completions"}},
		{"root alias only", []string{"g"}, 0, []string{"gh"}},
		{"root command only", []string{"r"}, 0, []string{"remove"}},
		{"root nothing matches", []string{"z"}, 0, []string{}},
		{"root past arity", []string{"gh", ""}, 1, []string{}},
		{"cursor before later words", []string{"c", "gh"}, 0, []string{"claude", "c", "completions"}},
		{"browser flag is not positional", []string{"--chrome", "g"}, 1, []string{"gh"}},
		{"remove first name", []string{"remove", ""}, 1, []string{"gh", "claude", "c"}},
		{"remove after comma", []string{"remove", "gh,c"}, 1, []string{"gh,claude", "gh,c"}},
		{"remove skips listed names", []string{"remove", "claude,"}, 1, []string{"claude,gh", "claude,c"}},
		{"remove past arity", []string{"remove", "gh", ""}, 2, []string{}},
		{"add names", []string{"add", ""}, 1, []string{}},
		{"add url", []string{"add", "x", ""}, 2, []string{}},
		{"list takes nothing", []string{"list", ""}, 1, []string{}},
		{"import file", []string{"import", ""}, 1, []string{}},
		{"completions shells", []string{"completions", ""}, 1, []string{"bash", "elvish", "fish", "powershell", "zsh"}},
		{"completions prefix", []string{"completions", "p"}, 1, []string{"powershell"}},
		{"help topics", []string{"help", "c"}, 1, []string{"completions", "completion", "config"}},
		{"help commands", []string{"help", "re"}, 1, []string{"remove"}},
		{"root long flags", []string{"--"}, 0, []string{"--brave", "--chrome", "--firefox", "--safari", "--verbose", "--help"}},
		{"root flag prefix", []string{"--f"}, 0, []string{"--firefox"}},
		{"browser flags exclusive", []string{"--chrome", "-"}, 1, []string{"--verbose", "-v", "--help", "-h"}},
		{"verbose repeats", []string{"-v", "-v", "--v"}, 2, []string{"--verbose"}},
		{"export flag value", []string{"export", "-o", ""}, 2, []string{}},
		{"export attached value", []string{"export", "--output=x", "-"}, 2, []string{"--verbose", "-v", "--help", "-h"}},
		{"export flag used", []string{"export", "-o", "f", "-"}, 3, []string{"--verbose", "-v", "--help", "-h"}},
		{"import conflict flags", []string{"import", "--"}, 1, []string{"--keep-existing", "--overwrite", "--verbose", "--help"}},
		{"import conflict flags exclusive", []string{"import", "--keep-existing", "--"}, 2, []string{"--verbose", "--help"}},
		{"import stdin dash is positional", []string{"import", "-", ""}, 2, []string{}},
		{"after literal separator", []string{"--", "-"}, 1, []string{}},
		{"literal separator offers only aliases", []string{"--", ""}, 1, []string{"gh", "claude", "c"}},
		{"literal separator hides commands", []string{"--", "c"}, 1, []string{"claude", "c"}},
		{"literal word fills the alias slot", []string{"--", "add", ""}, 2, []string{}},
		{"cursor out of range", []string{"g"}, 3, []string{}},
	}

	g := testGrammar()
	r := NewResolver(scenarioSource())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Complete(r, tt.args, tt.cursor)
			assert.Equal(t, tt.want, Values(got))
		})
	}
}

func TestGrammar_CompleteWithoutAliases(t *testing.T) {
	g := testGrammar()
	src := scenarioSource()
	src.err = errBroken

	got := Values(g.Complete(NewResolver(src), []string{"c"}, 0))
	assert.Equal(t, []string{"completions"}, got)

	got = Values(g.Complete(NewResolver(src), []string{"remove", ""}, 1))
	assert.Equal(t, []string{}, got)
}

func TestGrammar_CandidatesCarryHelp(t *testing.T) {
	g := testGrammar()
	got := g.Complete(NewResolver(scenarioSource()), []string{"remove", "gh,c"}, 1)
	assert.Equal(t, Candidate{Value: "gh,c", Help: "https://claude.ai"}, got[1])

	got = g.Complete(NewResolver(nil), []string{"li"}, 0)
	assert.Equal(t, []Candidate{{Value: "list", Help: "List all aliases"}}, got)
}

func TestGrammar_Command(t *testing.T) {
	g := testGrammar()

	cmd, ok := g.Command("remove")
	assert.True(t, ok)
	assert.Equal(t, []Slot{SlotAliasList}, cmd.Slots)

	_, ok = g.Command("rm")
	assert.False(t, ok)
}
