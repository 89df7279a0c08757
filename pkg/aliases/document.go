package aliases

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/arthur-debert/web/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TableName is the TOML table holding the alias map
const TableName = "aliases"

// Alias is one name -> URL entry
type Alias struct {
	Name string
	URL  string
}

// Document is a parsed config file. The alias table keeps document order;
// every other top-level key is carried through untouched so saving aliases
// does not drop the [settings] table.
type Document struct {
	aliases *orderedmap.OrderedMap[string, string]
	extra   map[string]interface{}
}

// NewDocument returns an empty document
func NewDocument() *Document {
	return &Document{
		aliases: orderedmap.New[string, string](),
		extra:   make(map[string]interface{}),
	}
}

// Parse decodes a config file. Values are decoded with go-toml; the order of
// the alias keys is recovered separately from the parser's expression stream,
// since decoding into a map loses it.
func Parse(data []byte) (*Document, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Failed to parse config file")
	}

	doc := NewDocument()

	table := map[string]interface{}{}
	for key, value := range raw {
		if key != TableName {
			doc.extra[key] = value
			continue
		}
		t, ok := value.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrConfigParse, "Failed to parse config file: '%s' must be a table", TableName)
		}
		table = t
	}

	urls := make(map[string]string, len(table))
	for name, value := range table {
		url, ok := value.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrConfigParse, "Failed to parse config file: alias '%s' must map to a string", name).
				WithDetail("alias", name)
		}
		urls[name] = url
	}

	for _, name := range orderedNames(data, urls) {
		doc.aliases.Set(name, urls[name])
	}

	return doc, nil
}

// orderedNames lists the keys of urls in the order they appear in data.
// Keys the expression walk could not place are appended sorted.
func orderedNames(data []byte, urls map[string]string) []string {
	names := make([]string, 0, len(urls))
	seen := make(map[string]bool, len(urls))

	for _, name := range aliasKeyOrder(data) {
		if _, ok := urls[name]; !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	var rest []string
	for name := range urls {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(names, rest...)
}

// aliasKeyOrder walks the TOML expressions and collects keys that land in
// the aliases table: `[aliases]` sections, dotted `aliases.x = ...` keys and
// an inline `aliases = { ... }` table.
func aliasKeyOrder(data []byte) []string {
	p := unstable.Parser{}
	p.Reset(data)

	var (
		order   []string
		current []string
	)

	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			current = keyParts(expr.Key())
		case unstable.ArrayTable:
			// Array tables can never hold aliases.
			current = []string{""}
		case unstable.KeyValue:
			full := append(append([]string{}, current...), keyParts(expr.Key())...)
			switch {
			case len(full) == 2 && full[0] == TableName:
				order = append(order, full[1])
			case len(full) == 1 && full[0] == TableName && expr.Value().Kind == unstable.InlineTable:
				children := expr.Value().Children()
				for children.Next() {
					kv := children.Node()
					if kv.Kind != unstable.KeyValue {
						continue
					}
					if parts := keyParts(kv.Key()); len(parts) == 1 {
						order = append(order, parts[0])
					}
				}
			}
		}
	}

	return order
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// Len returns the number of aliases
func (d *Document) Len() int {
	return d.aliases.Len()
}

// Get returns the URL for name
func (d *Document) Get(name string) (string, bool) {
	return d.aliases.Get(name)
}

// Set adds or updates an alias; existing aliases keep their position
func (d *Document) Set(name, url string) {
	d.aliases.Set(name, url)
}

// Delete removes an alias and reports whether it existed
func (d *Document) Delete(name string) bool {
	_, present := d.aliases.Delete(name)
	return present
}

// Names returns alias names in document order
func (d *Document) Names() []string {
	names := make([]string, 0, d.aliases.Len())
	for pair := d.aliases.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Entries returns all aliases in document order
func (d *Document) Entries() []Alias {
	entries := make([]Alias, 0, d.aliases.Len())
	for pair := d.aliases.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Alias{Name: pair.Key, URL: pair.Value})
	}
	return entries
}

// Extra returns the value of a non-alias top-level key
func (d *Document) Extra(key string) (interface{}, bool) {
	v, ok := d.extra[key]
	return v, ok
}

// Marshal renders the whole document: every non-alias key first, then the
// aliases table in order.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	if len(d.extra) > 0 {
		extra, err := toml.Marshal(d.extra)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigWrite, "Failed to serialize config")
		}
		buf.Write(extra)
		buf.WriteString("\n")
	}

	table, err := d.MarshalAliases()
	if err != nil {
		return nil, err
	}
	buf.Write(table)

	return buf.Bytes(), nil
}

// MarshalAliases renders only the aliases table, as `web export` prints it
func (d *Document) MarshalAliases() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[" + TableName + "]\n")

	// go-toml sorts map keys, so entries are encoded one at a time to keep
	// document order while still getting its quoting rules.
	for pair := d.aliases.Oldest(); pair != nil; pair = pair.Next() {
		line, err := toml.Marshal(map[string]string{pair.Key: pair.Value})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigWrite, "Failed to serialize alias '%s'", pair.Key)
		}
		buf.Write(line)
	}

	return buf.Bytes(), nil
}

// String is used in debug logging
func (d *Document) String() string {
	return fmt.Sprintf("Document{aliases: %d, extra: %d}", d.aliases.Len(), len(d.extra))
}
