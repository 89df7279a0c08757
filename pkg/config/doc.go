// Package config loads web's settings.
//
// Settings live in the [settings] table of the same TOML file that holds the
// alias table (see pkg/aliases). They are layered, later sources winning:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. the config file, when it exists
//  3. environment variables: WEB_BROWSER, WEB_COMPLETE_DESCRIPTIONS
//
// The alias table itself is not read through this package; its order matters
// and koanf flattens maps.
package config
