package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

// EnvConfigFile points at a config file to use instead of the XDG one
const EnvConfigFile = "GESTURES_CONFIG"

// EnvPrefix prefixes every environment override
const EnvPrefix = "GESTURES_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Overrides holds dotted keys (library.codec) set from command line flags
type Overrides map[string]interface{}

// Load builds the effective configuration:
//
//  1. embedded defaults
//  2. the user config file, if present
//  3. GESTURES_<SECTION>_<KEY> environment variables
//
// An empty library.path is resolved to the XDG default location.
func Load(p paths.Paths) (*Config, error) {
	return LoadWithOverrides(p, nil)
}

// LoadWithOverrides is Load with overrides applied on top of the
// environment.
func LoadWithOverrides(p paths.Paths, overrides Overrides) (*Config, error) {
	k, err := load(p, overrides)
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if cfg.Library.Path == "" {
		cfg.Library.Path = p.LibraryPath()
	} else {
		normalized, err := p.NormalizePath(cfg.Library.Path)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid library.path")
		}
		cfg.Library.Path = normalized
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Render returns the effective configuration as TOML
func Render(p paths.Paths, overrides Overrides) ([]byte, error) {
	k, err := load(p, overrides)
	if err != nil {
		return nil, err
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to render configuration")
	}
	return out, nil
}

// Defaults returns the embedded default configuration file
func Defaults() []byte {
	return append([]byte(nil), defaultConfig...)
}

func load(p paths.Paths, overrides Overrides) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	userFile := userConfigPath(p)
	if _, err := os.Stat(userFile); err == nil {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userFile).
				WithDetail("path", userFile)
		}
		log.Debug().Str("path", userFile).Msg("Loaded user config")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return k, nil
}

func userConfigPath(p paths.Paths) string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return paths.ExpandHome(path)
	}
	return p.ConfigFilePath()
}

// envKey maps GESTURES_LIBRARY_DIR_MODE to library.dir_mode. Variables
// outside the config sections (GESTURES_DATA_DIR, GESTURES_CONFIG) map to
// "" and are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, ok := strings.Cut(key, "_")
	if !ok {
		return ""
	}
	switch section {
	case "library", "logging":
		return section + "." + name
	default:
		return ""
	}
}
