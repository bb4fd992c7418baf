package config

// Config is the top-level storefront configuration.
type Config struct {
	API APIConfig `mapstructure:"api" yaml:"api"`
	UI  UIConfig  `mapstructure:"ui" yaml:"ui"`
}

// APIConfig holds product-source connection settings.
type APIConfig struct {
	BaseURL      string `mapstructure:"base_url" yaml:"base_url"`
	ProductsPath string `mapstructure:"products_path" yaml:"products_path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// DefaultTheme seeds the preference store when no preference file
	// exists yet. Clamped to a valid tag at load time.
	DefaultTheme string `mapstructure:"default_theme" yaml:"default_theme,omitempty"`
	// PrefsPath is the theme preference file. The selection is written
	// there on every change so it survives restarts.
	PrefsPath string `mapstructure:"prefs_path" yaml:"prefs_path,omitempty"`
}
