// Package paths provides centralized path handling for web.
//
// It resolves where the alias/config file and the log file live, following
// the XDG Base Directory layout that the original tool used on every
// platform (~/.config rather than the macOS Application Support folder).
//
// # Environment Variables
//
//   - WEB_CONFIG: full path of the config file (default: $XDG_CONFIG_HOME/web/config.toml)
//   - XDG_CONFIG_HOME: base config directory (default: ~/.config)
//   - XDG_STATE_HOME: base state directory, used for the log file (default: ~/.local/state)
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    return err
//	}
//	cfg := p.ConfigFile() // /home/user/.config/web/config.toml
package paths
