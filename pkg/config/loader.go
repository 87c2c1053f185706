package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/logging"
	"github.com/arthur-debert/nue/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. NUE_RUN_TFM
const EnvPrefix = "NUE_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set.
	// When empty the first existing paths.ConfigCandidates entry is used.
	ConfigFile string
	// PackagesConfig is an optional packages.config whose entries are
	// appended to the configured package list
	PackagesConfig string
	// Overrides are flag values keyed like "run.tfm"; they win over everything
	Overrides map[string]interface{}
}

// Load merges defaults, config file, environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file
	configPath, err := findConfigFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	}

	// 3. Environment, NUE_RUN_PACKAGES_PATH -> run.packages_path
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. packages.config import
	if opts.PackagesConfig != "" {
		imported, err := ImportPackagesConfig(opts.PackagesConfig)
		if err != nil {
			return nil, err
		}
		cfg.Packages = append(cfg.Packages, imported...)
	}

	postProcess(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("tfm", cfg.Run.TFM).
		Str("output", cfg.Run.Output).
		Int("packages", len(cfg.Packages)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		explicit = paths.ExpandHome(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicit)
		}
		return explicit, nil
	}
	for _, candidate := range paths.ConfigCandidates() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func postProcess(cfg *Config) {
	cfg.Run.Output = paths.ExpandHome(strings.TrimSpace(cfg.Run.Output))
	if cfg.Run.Output == "" {
		cfg.Run.Output = paths.DefaultOutputDir
	}
	cfg.Run.PackagesPath = paths.ExpandHome(strings.TrimSpace(cfg.Run.PackagesPath))
	if cfg.Run.PackagesPath == "" {
		cfg.Run.PackagesPath = paths.DefaultPackagesPath()
	}
	cfg.Run.NugetConfig = paths.ExpandHome(strings.TrimSpace(cfg.Run.NugetConfig))
	cfg.Run.Nuget = paths.ExpandHome(strings.TrimSpace(cfg.Run.Nuget))
}
