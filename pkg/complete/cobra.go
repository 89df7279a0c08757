package complete

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AnnotationSlots is the cobra command annotation naming its positional
// slots, comma separated: "none", "alias", "aliases", "shell" or "topic".
const AnnotationSlots = "web_complete_slots"

// cobra records MarkFlagsMutuallyExclusive groups under this flag annotation
const cobraMutuallyExclusive = "cobra_annotation_mutually_exclusive"

var slotNames = map[string]Slot{
	"none":    SlotNone,
	"alias":   SlotAlias,
	"aliases": SlotAliasList,
	"shell":   SlotShell,
	"topic":   SlotHelpTopic,
}

var helpFlag = Flag{Long: "help", Short: "h", Usage: "Show help"}

// FromCobra builds the grammar of a cobra command tree. Commands declare
// their positional slots with AnnotationSlots; the help command completes
// commands and the given topics.
func FromCobra(root *cobra.Command, topics ...string) *Grammar {
	// cobra only adds the help command on Execute
	root.InitDefaultHelpCmd()

	g := &Grammar{
		Root:       commandFromCobra(root),
		Persistent: append(flagsFromCobra(root.PersistentFlags()), helpFlag),
		Topics:     topics,
	}

	for _, sub := range root.Commands() {
		if sub.Hidden {
			continue
		}
		cmd := commandFromCobra(sub)
		if sub.Name() == "help" && len(cmd.Slots) == 0 {
			cmd.Slots = []Slot{SlotHelpTopic}
		}
		g.Commands = append(g.Commands, cmd)
	}
	return g
}

func commandFromCobra(cmd *cobra.Command) Command {
	return Command{
		Name:  cmd.Name(),
		Short: cmd.Short,
		Flags: flagsFromCobra(cmd.LocalNonPersistentFlags()),
		Slots: parseSlots(cmd.Annotations[AnnotationSlots]),
	}
}

func flagsFromCobra(set *pflag.FlagSet) []Flag {
	var flags []Flag
	set.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == helpFlag.Long {
			return
		}

		typ := f.Value.Type()
		flag := Flag{
			Long:  f.Name,
			Short: f.Shorthand,
			Usage: f.Usage,
			// bool and count flags carry an implicit value
			TakesValue: f.NoOptDefVal == "",
			Repeatable: typ == "count" || strings.HasSuffix(typ, "Slice") || strings.HasSuffix(typ, "Array"),
		}
		if groups := f.Annotations[cobraMutuallyExclusive]; len(groups) > 0 {
			flag.Group = groups[0]
		}
		flags = append(flags, flag)
	})
	return flags
}

func parseSlots(spec string) []Slot {
	if spec == "" {
		return nil
	}

	var slots []Slot
	for _, name := range strings.Split(spec, ",") {
		slots = append(slots, slotNames[strings.TrimSpace(name)])
	}
	return slots
}
