// pkg/aliases/store_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp directories)
// PURPOSE: Test loading, saving, adding, removing and resolving aliases

package aliases

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/web/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "web", "config.toml")
	if content != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return NewStore(path)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t, "")

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestStore_LoadCorruptFile(t *testing.T) {
	store := newTestStore(t, "this is = = not toml")

	_, err := store.Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestStore_AddCreatesFileAndAppends(t *testing.T) {
	store := newTestStore(t, "")

	require.NoError(t, store.Add([]string{"gh"}, "https://github.com"))
	require.NoError(t, store.Add([]string{"claude", "c"}, "https://claude.ai"))

	entries, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []Alias{
		{Name: "gh", URL: "https://github.com"},
		{Name: "claude", URL: "https://claude.ai"},
		{Name: "c", URL: "https://claude.ai"},
	}, entries)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestStore_AddRejectsInvalidNames(t *testing.T) {
	store := newTestStore(t, "")

	err := store.Add([]string{"ok", "not ok"}, "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasInvalid))

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "nothing should be written")

	assert.Error(t, store.Add(nil, "https://example.com"))
}

func TestStore_AddKeepsSettings(t *testing.T) {
	store := newTestStore(t, "[settings]\nbrowser = \"brave\"\n\n[aliases]\ngh = \"https://github.com\"\n")

	require.NoError(t, store.Add([]string{"go"}, "https://go.dev"))

	doc, err := store.Load()
	require.NoError(t, err)
	settings, ok := doc.Extra("settings")
	require.True(t, ok)
	assert.Equal(t, "brave", settings.(map[string]interface{})["browser"])
	assert.Equal(t, []string{"gh", "go"}, doc.Names())
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t, "[aliases]\ngh = \"https://github.com\"\nclaude = \"https://claude.ai\"\nc = \"https://claude.ai\"\n")

	require.NoError(t, store.Remove([]string{"claude", "c"}))

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"gh"}, doc.Names())
}

func TestStore_RemoveUnknownWritesNothing(t *testing.T) {
	content := "[aliases]\ngh = \"https://github.com\"\n"
	store := newTestStore(t, content)

	err := store.Remove([]string{"gh", "nope"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasNotFound))
	assert.Equal(t, "Alias 'nope' not found", err.Error())

	data, readErr := os.ReadFile(store.Path())
	require.NoError(t, readErr)
	assert.Equal(t, content, string(data))
}

func TestStore_Resolve(t *testing.T) {
	store := newTestStore(t, "[aliases]\ngh = \"https://github.com\"\n")

	url, err := store.Resolve("gh")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com", url)

	_, err = store.Resolve("gl")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasNotFound))
}

// captureLogs routes the global logger into a buffer for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)
	return &buf
}

func TestStore_SaveIsTimed(t *testing.T) {
	logs := captureLogs(t)
	store := newTestStore(t, "")

	require.NoError(t, store.Add([]string{"gh"}, "https://github.com"))

	output := logs.String()
	assert.Contains(t, output, `"operation":"save"`)
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
