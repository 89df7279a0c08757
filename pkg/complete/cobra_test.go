// pkg/complete/cobra_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory cobra command tree
// PURPOSE: Test building the completion grammar from a cobra command tree

package complete

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCobra_Commands(t *testing.T) {
	g := testGrammar()

	assert.Equal(t, "web", g.Root.Name)
	assert.Equal(t, []Slot{SlotAlias}, g.Root.Slots)
	assert.Equal(t, []string{"completion", "config"}, g.Topics)

	names := lo.Map(g.Commands, func(c Command, _ int) string { return c.Name })
	assert.Equal(t, []string{"add", "completions", "export", "help", "import", "list", "remove", "version"}, names)

	tests := []struct {
		name  string
		slots []Slot
	}{
		{"add", []Slot{SlotNone, SlotNone}},
		{"remove", []Slot{SlotAliasList}},
		{"list", nil},
		{"completions", []Slot{SlotShell}},
		{"help", []Slot{SlotHelpTopic}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := g.Command(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.slots, cmd.Slots)
		})
	}
}

func TestFromCobra_Flags(t *testing.T) {
	g := testGrammar()

	browser := lo.Map(g.Root.Flags, func(f Flag, _ int) string { return f.Long })
	assert.Equal(t, []string{"brave", "chrome", "firefox", "safari"}, browser)
	for _, f := range g.Root.Flags {
		assert.False(t, f.TakesValue, f.Long)
		assert.Equal(t, "safari chrome firefox brave", f.Group, f.Long)
	}

	require.Len(t, g.Persistent, 2)
	assert.Equal(t, Flag{Long: "verbose", Short: "v", Usage: "Increase verbosity", Repeatable: true}, g.Persistent[0])
	assert.Equal(t, helpFlag, g.Persistent[1])

	export, ok := g.Command("export")
	require.True(t, ok)
	assert.Equal(t, []Flag{{Long: "output", Short: "o", Usage: "Write to a file", TakesValue: true}}, export.Flags)

	imp, ok := g.Command("import")
	require.True(t, ok)
	require.Len(t, imp.Flags, 2)
	assert.Equal(t, imp.Flags[0].Group, imp.Flags[1].Group)
	assert.NotEmpty(t, imp.Flags[0].Group)
}

func TestFromCobra_UnknownSlotName(t *testing.T) {
	assert.Equal(t, []Slot{SlotAlias, SlotNone}, parseSlots("alias, url"))
	assert.Nil(t, parseSlots(""))
}
