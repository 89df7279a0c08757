package aliases

import (
	"strings"
)

// FileSource exposes the alias names of a config file to shell completion.
// Each lookup reads the file again.
type FileSource struct {
	store *Store
	last  *Document
}

// NewFileSource creates a completion source over the config file at path
func NewFileSource(path string) *FileSource {
	return &FileSource{store: NewStore(path)}
}

// LookupPrefix returns the alias names starting with prefix, in file order
func (f *FileSource) LookupPrefix(prefix string) ([]string, error) {
	doc, err := f.store.Load()
	if err != nil {
		f.last = nil
		return nil, err
	}
	f.last = doc

	var names []string
	for _, name := range doc.Names() {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

// Ordered reports that lookups follow insertion order
func (f *FileSource) Ordered() bool {
	return true
}

// Describe returns the URL of an alias seen by the most recent lookup
func (f *FileSource) Describe(name string) string {
	if f.last == nil {
		return ""
	}
	url, _ := f.last.Get(name)
	return url
}
