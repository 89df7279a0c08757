// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables only
// PURPOSE: Test config and state path resolution

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConfigFile(t *testing.T) {
	tests := []struct {
		name       string
		home       string
		xdgConfig  string
		webConfig  string
		wantConfig string
	}{
		{
			name:       "defaults to ~/.config/web",
			home:       "/home/alice",
			wantConfig: "/home/alice/.config/web/config.toml",
		},
		{
			name:       "respects XDG_CONFIG_HOME",
			home:       "/home/alice",
			xdgConfig:  "/xdg/config",
			wantConfig: "/xdg/config/web/config.toml",
		},
		{
			name:       "WEB_CONFIG wins",
			home:       "/home/alice",
			xdgConfig:  "/xdg/config",
			webConfig:  "/etc/web.toml",
			wantConfig: "/etc/web.toml",
		},
		{
			name:       "WEB_CONFIG expands home",
			home:       "/home/alice",
			webConfig:  "~/web.toml",
			wantConfig: "/home/alice/web.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvHome, tt.home)
			t.Setenv(EnvXDGConfigHome, tt.xdgConfig)
			t.Setenv(EnvConfigFile, tt.webConfig)

			p, err := New()
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.wantConfig), p.ConfigFile())
			assert.Equal(t, filepath.Dir(p.ConfigFile()), p.ConfigDir())
		})
	}
}

func TestNew_StateDir(t *testing.T) {
	t.Setenv(EnvHome, "/home/bob")

	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvXDGStateHome, "/custom/state")
		p, err := New()
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/custom/state/web"), p.StateDir())
		assert.Equal(t, filepath.FromSlash("/custom/state/web/web.log"), p.LogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvXDGStateHome, "")
		p, err := New()
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/home/bob/.local/state/web"), p.StateDir())
	})
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "", expandHome("", "/h"))
	assert.Equal(t, "/h", expandHome("~", "/h"))
	assert.Equal(t, filepath.Join("/h", "x"), expandHome("~/x", "/h"))
	assert.Equal(t, "~other/x", expandHome("~other/x", "/h"))
	assert.Equal(t, "/abs", expandHome("/abs", "/h"))
}
