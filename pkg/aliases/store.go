package aliases

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/web/pkg/errors"
	"github.com/arthur-debert/web/pkg/logging"
)

// Store reads and writes the alias table of one config file
type Store struct {
	path string
}

// NewStore creates a store backed by the config file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file is an empty document.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "Failed to read config file at %s", s.path).
			WithDetail("path", s.path)
	}
	return Parse(data)
}

// Save writes doc atomically: a temp file in the same directory is renamed
// over the config file, so a concurrent completion read sees either the old
// or the new table.
func (s *Store) Save(doc *Document) error {
	logger := logging.GetLogger("aliases").With().Str("path", s.path).Logger()
	done := logging.LogOperationStart(logger, "save")
	defer done()

	content, err := doc.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "Failed to create config directory at %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "Failed to write config file at %s", s.path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, errors.ErrConfigWrite, "Failed to write config file at %s", s.path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "Failed to write config file at %s", s.path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "Failed to write config file at %s", s.path)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "Failed to write config file at %s", s.path)
	}

	logger.Debug().Int("aliases", doc.Len()).Msg("Config saved")
	return nil
}

// Add maps every name to url, replacing existing targets
func (s *Store) Add(names []string, url string) error {
	if len(names) == 0 {
		return errors.New(errors.ErrAliasInvalid, "No alias names given")
	}
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
	}

	doc, err := s.Load()
	if err != nil {
		return err
	}
	for _, name := range names {
		doc.Set(name, url)
	}
	return s.Save(doc)
}

// Remove deletes every name. If any name is unknown nothing is written.
func (s *Store) Remove(names []string) error {
	if len(names) == 0 {
		return errors.New(errors.ErrAliasInvalid, "No alias names given")
	}

	doc, err := s.Load()
	if err != nil {
		return err
	}
	for _, name := range names {
		if !doc.Delete(name) {
			return errors.Newf(errors.ErrAliasNotFound, "Alias '%s' not found", name).
				WithDetail("alias", name)
		}
	}
	return s.Save(doc)
}

// Resolve returns the URL an alias points to
func (s *Store) Resolve(name string) (string, error) {
	doc, err := s.Load()
	if err != nil {
		return "", err
	}
	url, ok := doc.Get(name)
	if !ok {
		return "", errors.Newf(errors.ErrAliasNotFound, "Alias '%s' not found", name).
			WithDetail("alias", name)
	}
	return url, nil
}

// List returns every alias in document order
func (s *Store) List() ([]Alias, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return doc.Entries(), nil
}
