package complete

import (
	"strings"

	"github.com/samber/lo"
)

// Slot is what a positional argument holds, as far as completion cares
type Slot int

const (
	// SlotNone gets no candidates (URLs, file names)
	SlotNone Slot = iota
	// SlotAlias is a single alias name
	SlotAlias
	// SlotAliasList is a comma-separated list of alias names
	SlotAliasList
	// SlotShell is a shell name
	SlotShell
	// SlotHelpTopic is a command name or help topic
	SlotHelpTopic
)

// Flag describes one command line flag
type Flag struct {
	Long       string
	Short      string
	Usage      string
	TakesValue bool
	// Repeatable flags are offered again after they were used (-v -v)
	Repeatable bool
	// Flags sharing a group are mutually exclusive
	Group string
}

// Command describes a subcommand
type Command struct {
	Name  string
	Short string
	Flags []Flag
	Slots []Slot
}

func (c *Command) slot(position int) Slot {
	if position < 0 || position >= len(c.Slots) {
		return SlotNone
	}
	return c.Slots[position]
}

// Grammar is the shape of web's command line: the root command takes an alias,
// subcommands are only recognized in the first positional position.
type Grammar struct {
	Root       Command
	Persistent []Flag
	Commands   []Command
	Topics     []string
}

// Command returns the subcommand called name
func (g *Grammar) Command(name string) (*Command, bool) {
	for i := range g.Commands {
		if g.Commands[i].Name == name {
			return &g.Commands[i], true
		}
	}
	return nil, false
}

// Complete returns the candidates for args[cursor]. Words before the cursor
// decide the command and positional slot; words after it are ignored.
func (g *Grammar) Complete(r *Resolver, args []string, cursor int) []Candidate {
	if cursor < 0 || cursor >= len(args) {
		return []Candidate{}
	}

	cmd := &g.Root
	inSub := false
	literal := false
	positional := 0
	used := map[string]bool{}

	for i := 0; i < cursor; i++ {
		word := args[i]
		switch {
		case literal:
			positional++
		case word == Separator:
			literal = true
		case isFlagWord(word):
			flag, ok := g.lookupFlag(cmd, word)
			if !ok {
				continue
			}
			used[flag.Long] = true
			if flag.TakesValue && !hasAttachedValue(word) {
				if i+1 == cursor {
					// The cursor is on the flag's value.
					return []Candidate{}
				}
				i++
			}
		case !inSub && positional == 0:
			if sub, ok := g.Command(word); ok {
				cmd = sub
				inSub = true
				continue
			}
			positional++
		default:
			positional++
		}
	}

	current := args[cursor]
	if !literal && strings.HasPrefix(current, "-") {
		return g.flagCandidates(cmd, current, used)
	}

	if !inSub {
		if positional > 0 {
			return []Candidate{}
		}
		// After "--" every word is an alias, never a subcommand.
		if literal {
			return r.Resolve(current)
		}
		candidates := append(r.Resolve(current), g.commandCandidates(current, false)...)
		return lo.UniqBy(candidates, func(c Candidate) string { return c.Value })
	}

	switch cmd.slot(positional) {
	case SlotAlias:
		return r.Resolve(current)
	case SlotAliasList:
		return aliasListCandidates(r, current)
	case SlotShell:
		return keywordCandidates(DialectNames(), current)
	case SlotHelpTopic:
		candidates := append(g.commandCandidates(current, true), keywordCandidates(g.Topics, current)...)
		return lo.UniqBy(candidates, func(c Candidate) string { return c.Value })
	default:
		return []Candidate{}
	}
}

func (g *Grammar) lookupFlag(cmd *Command, word string) (Flag, bool) {
	flags := append(append([]Flag{}, cmd.Flags...), g.Persistent...)

	if strings.HasPrefix(word, "--") {
		name := strings.TrimPrefix(word, "--")
		if i := strings.Index(name, "="); i >= 0 {
			name = name[:i]
		}
		return lo.Find(flags, func(f Flag) bool { return f.Long == name })
	}

	// Shorthand clusters like -vv are identified by their first letter.
	short := word[1:2]
	return lo.Find(flags, func(f Flag) bool { return f.Short != "" && f.Short == short })
}

func (g *Grammar) flagCandidates(cmd *Command, current string, used map[string]bool) []Candidate {
	flags := append(append([]Flag{}, cmd.Flags...), g.Persistent...)

	usedGroups := map[string]bool{}
	for _, f := range flags {
		if used[f.Long] && f.Group != "" {
			usedGroups[f.Group] = true
		}
	}

	var candidates []Candidate
	for _, f := range flags {
		if used[f.Long] && !f.Repeatable {
			continue
		}
		if f.Group != "" && usedGroups[f.Group] {
			continue
		}
		if long := "--" + f.Long; strings.HasPrefix(long, current) {
			candidates = append(candidates, Candidate{Value: long, Help: f.Usage})
		}
		if f.Short == "" {
			continue
		}
		if short := "-" + f.Short; strings.HasPrefix(short, current) {
			candidates = append(candidates, Candidate{Value: short, Help: f.Usage})
		}
	}
	if candidates == nil {
		return []Candidate{}
	}
	return candidates
}

// commandCandidates lists subcommands matching prefix. The help command is
// left out when completing help's own argument.
func (g *Grammar) commandCandidates(prefix string, forHelp bool) []Candidate {
	var candidates []Candidate
	for _, c := range g.Commands {
		if forHelp && c.Name == "help" {
			continue
		}
		if strings.HasPrefix(c.Name, prefix) {
			candidates = append(candidates, Candidate{Value: c.Name, Help: c.Short})
		}
	}
	return candidates
}

func keywordCandidates(keywords []string, prefix string) []Candidate {
	candidates := []Candidate{}
	for _, k := range keywords {
		if strings.HasPrefix(k, prefix) {
			candidates = append(candidates, Candidate{Value: k})
		}
	}
	return candidates
}

// aliasListCandidates completes the last name of a comma-separated list.
// Every candidate carries the names already typed, and those names are not
// offered again.
func aliasListCandidates(r *Resolver, current string) []Candidate {
	head, prefix := "", current
	if i := strings.LastIndex(current, ","); i >= 0 {
		head, prefix = current[:i+1], current[i+1:]
	}

	listed := map[string]bool{}
	for _, name := range strings.Split(head, ",") {
		if name = strings.TrimSpace(name); name != "" {
			listed[name] = true
		}
	}

	candidates := []Candidate{}
	for _, c := range r.Resolve(prefix) {
		if listed[c.Value] {
			continue
		}
		c.Value = head + c.Value
		candidates = append(candidates, c)
	}
	return candidates
}

func isFlagWord(word string) bool {
	return len(word) > 1 && strings.HasPrefix(word, "-")
}

func hasAttachedValue(word string) bool {
	if strings.HasPrefix(word, "--") {
		return strings.Contains(word, "=")
	}
	return len(word) > 2
}
