package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/logfields"
	"git.home.luguber.info/inful/lumberlib/internal/platform"
)

// PlatformEnv overrides the configured platform identifier when set.
const PlatformEnv = "LUMBERLIB_PLATFORM"

const defaultMetricsListen = ":9464"

// Config represents the application configuration.
type Config struct {
	// Platform is the runtime version identifier, e.g. "git-Paper-1_16_R3".
	// It is resolved with platform.Resolve, so anything containing a known
	// token works.
	Platform string        `yaml:"platform"`
	Logging  LoggingConfig `yaml:"logging"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// LoggingConfig controls the slog handler built by the CLI.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls the optional Prometheus endpoint used by watch.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Level resolves the configured platform identifier.
func (c *Config) Level() platform.Level {
	return platform.Resolve(c.Platform)
}

func (c *Config) applyDefaults() {
	if c.Platform == "" {
		c.Platform = platform.Lowest().Token()
	}
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
	if c.Metrics.Listen == "" {
		c.Metrics.Listen = defaultMetricsListen
	}
}

// Load loads configuration from the specified file.
//
// .env and .env.local are read first without overriding the process
// environment, ${VAR} references in the file are expanded, and PlatformEnv
// takes precedence over the file's platform value.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundError("configuration file not found").
				WithContext(logfields.KeyPath, configPath).
				Build()
		}
		return nil, errors.FileSystemError("failed to read config file").
			Wrap(err).
			WithContext(logfields.KeyPath, configPath).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(os.Getenv(PlatformEnv)); v != "" {
		cfg.Platform = v
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default with the
// environment override applied.
func LoadOrDefault(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if err == nil {
		return cfg, nil
	}
	if !errors.HasCategory(err, errors.CategoryNotFound) {
		return nil, err
	}
	cfg = Default()
	if v := strings.TrimSpace(os.Getenv(PlatformEnv)); v != "" {
		cfg.Platform = v
	}
	return cfg, nil
}

// Parse decodes YAML configuration and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError("failed to unmarshal config").Wrap(err).Build()
	}
	if err := cfg.Logging.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Metrics.Enabled && !strings.Contains(c.Metrics.Listen, ":") {
		return errors.ValidationError("metrics listen address must be host:port").
			WithContext("listen", c.Metrics.Listen).
			Build()
	}
	return nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext(logfields.KeyPath, configPath).
			Build()
	}

	example := Config{
		Platform: "git-Paper-" + platform.Highest().Token() + "_R1",
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  defaultMetricsListen,
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.InternalError("failed to marshal config").Wrap(err).Build()
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.FileSystemError("failed to write config file").
			Wrap(err).
			WithContext(logfields.KeyPath, configPath).
			Build()
	}
	return nil
}
