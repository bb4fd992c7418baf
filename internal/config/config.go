package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "storefront", "config.yml")
}

// DefaultPrefsPath returns the default theme preference file path.
func DefaultPrefsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "storefront", "theme.yml")
}

// Load reads the config from disk (or env). A missing config file is fine;
// defaults cover every setting.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "https://fakestoreapi.com")
	v.SetDefault("api.products_path", "/products")
	v.SetDefault("ui.default_theme", "theme1")
	v.SetDefault("ui.prefs_path", DefaultPrefsPath())

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("STOREFRONT_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a real fault.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.UI.PrefsPath = ExpandHome(cfg.UI.PrefsPath)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
