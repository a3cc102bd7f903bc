package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultBaseURL = "https://api.dexpaprika.com"

// Setting keys exposed at the hosting-runtime boundary and honored as
// environment variables.
const (
	KeyAPIURL   = "DEXPAPRIKA_API_URL"
	KeyAPIKey   = "DEXPAPRIKA_API_KEY"
	KeyTimeout  = "DEXPAPRIKA_TIMEOUT"
	KeyRetries  = "DEXPAPRIKA_RETRIES"
	KeyLogLevel = "DEXPAPRIKA_LOG_LEVEL"
)

type GlobalFlags struct {
	ConfigPath string
	BaseURL    string
	APIKey     string
	Timeout    string
	Retries    int
	LogLevel   string
}

type Settings struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	Retries  int
	LogLevel string
}

// SettingsProvider is how a hosting agent runtime hands settings to the
// plugin. Only KeyAPIURL and KeyAPIKey are required of a host; everything
// else has defaults.
type SettingsProvider interface {
	GetSetting(key string) string
}

// EnvProvider adapts process environment variables to SettingsProvider.
type EnvProvider struct{}

func (EnvProvider) GetSetting(key string) string { return os.Getenv(key) }

func Default() Settings {
	return Settings{
		BaseURL:  DefaultBaseURL,
		Timeout:  15 * time.Second,
		Retries:  1,
		LogLevel: "info",
	}
}

// Resolve builds Settings from a hosting runtime's settings provider,
// defaulting the base URL when the host supplies none. An empty API key
// means unauthenticated calls.
func Resolve(provider SettingsProvider) Settings {
	settings := Default()
	if provider == nil {
		return settings
	}
	if v := strings.TrimSpace(provider.GetSetting(KeyAPIURL)); v != "" {
		settings.BaseURL = v
	}
	if v := strings.TrimSpace(provider.GetSetting(KeyAPIKey)); v != "" {
		settings.APIKey = v
	}
	return settings
}

type fileConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	APIKeyEnv string `yaml:"api_key_env"`
	Timeout   string `yaml:"timeout"`
	Retries   *int   `yaml:"retries"`
	LogLevel  string `yaml:"log_level"`
}

// Load resolves CLI settings: defaults, then config file, then environment,
// then flags.
func Load(flags GlobalFlags) (Settings, error) {
	settings := Default()

	cfgPath, err := resolveConfigPath(flags.ConfigPath)
	if err != nil {
		return Settings{}, err
	}
	if err := applyFileConfig(cfgPath, &settings); err != nil {
		return Settings{}, err
	}

	applyEnv(&settings)

	if err := applyFlags(flags, &settings); err != nil {
		return Settings{}, err
	}

	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 15 * time.Second
	}
	if settings.Retries < 0 {
		settings.Retries = 0
	}
	return settings, nil
}

func resolveConfigPath(input string) (string, error) {
	if strings.TrimSpace(input) != "" {
		return input, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "dexpaprika", "config.yaml"), nil
}

func applyFileConfig(path string, settings *Settings) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	if cfg.BaseURL != "" {
		settings.BaseURL = cfg.BaseURL
	}
	if cfg.APIKey != "" {
		settings.APIKey = cfg.APIKey
	}
	if cfg.APIKeyEnv != "" {
		settings.APIKey = os.Getenv(cfg.APIKeyEnv)
	}
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("config timeout: %w", err)
		}
		settings.Timeout = d
	}
	if cfg.Retries != nil {
		settings.Retries = *cfg.Retries
	}
	if cfg.LogLevel != "" {
		settings.LogLevel = strings.ToLower(cfg.LogLevel)
	}
	return nil
}

func applyEnv(settings *Settings) {
	if v := os.Getenv(KeyAPIURL); v != "" {
		settings.BaseURL = v
	}
	if v := os.Getenv(KeyAPIKey); v != "" {
		settings.APIKey = v
	}
	if v := os.Getenv(KeyTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			settings.Timeout = d
		}
	}
	if v := os.Getenv(KeyRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.Retries = n
		}
	}
	if v := os.Getenv(KeyLogLevel); v != "" {
		settings.LogLevel = strings.ToLower(v)
	}
}

func applyFlags(flags GlobalFlags, settings *Settings) error {
	if strings.TrimSpace(flags.BaseURL) != "" {
		settings.BaseURL = strings.TrimSpace(flags.BaseURL)
	}
	if strings.TrimSpace(flags.APIKey) != "" {
		settings.APIKey = strings.TrimSpace(flags.APIKey)
	}
	if flags.Timeout != "" {
		d, err := time.ParseDuration(flags.Timeout)
		if err != nil {
			return fmt.Errorf("parse --timeout: %w", err)
		}
		settings.Timeout = d
	}
	if flags.Retries >= 0 {
		settings.Retries = flags.Retries
	}
	if flags.LogLevel != "" {
		settings.LogLevel = strings.ToLower(flags.LogLevel)
	}
	return nil
}
