package testutil

import (
	"testing"

	"github.com/arthur-debert/web/pkg/aliases"
)

// AssertAliases checks the alias table stored at path, in document order.
// Each expected entry is "name=url".
func AssertAliases(t *testing.T, path string, expected ...string) {
	t.Helper()

	entries, err := aliases.NewStore(path).List()
	if err != nil {
		t.Fatalf("Failed to load aliases from %s: %v", path, err)
	}

	got := make([]string, 0, len(entries))
	for _, entry := range entries {
		got = append(got, entry.Name+"="+entry.URL)
	}

	if len(got) != len(expected) {
		t.Errorf("Expected %d aliases %v, got %d %v", len(expected), expected, len(got), got)
		return
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Alias %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

// AssertNoAlias checks that name is not in the table stored at path
func AssertNoAlias(t *testing.T, path, name string) {
	t.Helper()

	if _, err := aliases.NewStore(path).Resolve(name); err == nil {
		t.Errorf("Expected alias '%s' to be absent", name)
	}
}
