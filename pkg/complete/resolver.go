package complete

import (
	"sort"
	"strings"

	"github.com/arthur-debert/web/pkg/logging"
	"github.com/samber/lo"
)

// AliasSource looks up alias names by prefix. Implementations read their
// backing store on every call.
type AliasSource interface {
	LookupPrefix(prefix string) ([]string, error)
}

// orderedSource is implemented by sources whose lookups follow a meaningful
// order, such as the insertion order of the config file.
type orderedSource interface {
	Ordered() bool
}

// describer is implemented by sources that can explain an alias
type describer interface {
	Describe(name string) string
}

// Candidate is one completion offered to the shell
type Candidate struct {
	Value string
	Help  string
}

// Values returns the candidate values in order
func Values(candidates []Candidate) []string {
	return lo.Map(candidates, func(c Candidate, _ int) string {
		return c.Value
	})
}

// Resolver matches alias names against the word being completed
type Resolver struct {
	source AliasSource
}

// NewResolver creates a resolver over source. A nil source resolves nothing.
func NewResolver(source AliasSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve returns the aliases whose name starts with prefix. Matching is
// case-sensitive. Source order is kept when the source is ordered, otherwise
// the result is sorted. A failing source yields no candidates.
func (r *Resolver) Resolve(prefix string) []Candidate {
	if r == nil || r.source == nil {
		return []Candidate{}
	}
	logger := logging.GetLogger("complete.resolver")

	names, err := r.source.LookupPrefix(prefix)
	if err != nil {
		logger.Debug().Err(err).Str("prefix", prefix).Msg("Alias lookup failed")
		return []Candidate{}
	}

	names = lo.Uniq(lo.Filter(names, func(name string, _ int) bool {
		return name != "" && strings.HasPrefix(name, prefix)
	}))

	ordered := false
	if o, ok := r.source.(orderedSource); ok {
		ordered = o.Ordered()
	}
	if !ordered {
		sort.Strings(names)
	}

	d, canDescribe := r.source.(describer)
	candidates := make([]Candidate, 0, len(names))
	for _, name := range names {
		c := Candidate{Value: name}
		if canDescribe {
			c.Help = d.Describe(name)
		}
		candidates = append(candidates, c)
	}

	logger.Debug().Str("prefix", prefix).Int("candidates", len(candidates)).Msg("Resolved aliases")
	return candidates
}
