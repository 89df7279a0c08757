package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/web/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigFile overrides the location of the config file
	EnvConfigFile = "WEB_CONFIG"

	// EnvXDGConfigHome is the XDG base config directory
	EnvXDGConfigHome = "XDG_CONFIG_HOME"

	// EnvXDGStateHome is the XDG base state directory
	EnvXDGStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for web-specific files
	AppDirName = "web"

	// ConfigFileName is the name of the config file holding aliases and settings
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "web.log"
)

// Paths provides centralized path management for web
type Paths interface {
	ConfigDir() string
	ConfigFile() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	configFile string
	stateDir   string
}

// New creates a new Paths instance from the current environment.
// It never touches the filesystem.
func New() (Paths, error) {
	home := homeDir()

	p := &paths{}

	if configFile := os.Getenv(EnvConfigFile); configFile != "" {
		p.configFile = expandHome(configFile, home)
	} else {
		configHome := os.Getenv(EnvXDGConfigHome)
		if configHome == "" {
			if home == "" {
				return nil, errors.New(errors.ErrConfigLoad, "Could not determine home directory")
			}
			configHome = filepath.Join(home, ".config")
		}
		p.configFile = filepath.Join(configHome, AppDirName, ConfigFileName)
	}

	if stateHome := os.Getenv(EnvXDGStateHome); stateHome != "" {
		p.stateDir = filepath.Join(stateHome, AppDirName)
	} else if home != "" {
		p.stateDir = filepath.Join(home, ".local", "state", AppDirName)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

// ConfigDir returns the directory holding the config file
func (p *paths) ConfigDir() string {
	return filepath.Dir(p.configFile)
}

// ConfigFile returns the path of the config file
func (p *paths) ConfigFile() string {
	return p.configFile
}

// StateDir returns the state directory for web
func (p *paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// homeDir prefers $HOME so tests can redirect it; xdg.Home is resolved once
// at package init and is the fallback.
func homeDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return xdg.Home
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path, home string) string {
	if path == "" || path[0] != '~' || home == "" {
		return path
	}

	if len(path) == 1 {
		return home
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}

	// ~something (not the user's home)
	return path
}
