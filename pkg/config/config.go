package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/arthur-debert/web/pkg/browser"
	"github.com/arthur-debert/web/pkg/errors"
	"github.com/arthur-debert/web/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "WEB_"

// envKeys maps environment variables to settings keys. Other WEB_ variables
// (WEB_CONFIG, WEB_DEBUG) are not settings.
var envKeys = map[string]string{
	"WEB_BROWSER":               "settings.browser",
	"WEB_COMPLETE_DESCRIPTIONS": "settings.complete_descriptions",
}

// Settings is the [settings] table
type Settings struct {
	Browser              browser.Choice `koanf:"browser"`
	CompleteDescriptions bool           `koanf:"complete_descriptions"`
}

// Config is the loaded configuration
type Config struct {
	Settings Settings `koanf:"settings"`
	// Path is the config file the settings were read from
	Path string `koanf:"-"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load reads the settings for the config file at path. A missing file means
// defaults plus environment.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "Failed to load default settings")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "Failed to parse config file at %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "Failed to read config file at %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "Failed to read environment")
	}

	cfg := &Config{Path: path}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf(cfg)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "Invalid settings in %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("browser", cfg.Settings.Browser.String()).
		Bool("completeDescriptions", cfg.Settings.CompleteDescriptions).
		Msg("Settings loaded")
	return cfg, nil
}

// Default returns the built-in settings
func Default() *Config {
	k := koanf.New(".")
	cfg := &Config{}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return cfg
	}
	_ = k.UnmarshalWithConf("", cfg, unmarshalConf(cfg))
	return cfg
}

// FromMap builds settings from already parsed values, e.g. in tests
func FromMap(values map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "Failed to load default settings")
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Failed to load settings")
	}
	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf(cfg)); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Invalid settings")
	}
	return cfg, nil
}

// DescriptionsEnabled reports whether completion answers carry help text.
// Any failure reads as disabled, so it is safe on the completion path.
func DescriptionsEnabled(path string) bool {
	cfg, err := Load(path)
	if err != nil {
		return false
	}
	return cfg.Settings.CompleteDescriptions
}

func envKey(name string) string {
	if key, ok := envKeys[name]; ok {
		return key
	}
	return ""
}

func unmarshalConf(result interface{}) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           result,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimStringHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
}

// trimStringHookFunc strips surrounding blanks from string values, which
// environment variables tend to carry.
func trimStringHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if s, ok := data.(string); ok {
			return strings.TrimSpace(s), nil
		}
		return data, nil
	}
}
