package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ThemeConfig holds the colors used for terminal output.
type ThemeConfig struct {
	Preset  string `mapstructure:"preset"`
	Primary string `mapstructure:"primary"`
	Accent  string `mapstructure:"accent"`
	Muted   string `mapstructure:"muted"`
}

// Config holds the application configuration.
type Config struct {
	Root          string      `mapstructure:"root"`
	ContentDir    string      `mapstructure:"content_dir"`
	Editor        string      `mapstructure:"editor"`
	Debug         bool        `mapstructure:"debug"`
	MarkdownStyle string      `mapstructure:"markdown_style"`
	Pager         bool        `mapstructure:"pager"`
	Theme         ThemeConfig `mapstructure:"theme"`
}

// DefaultRoot returns the default diary directory (~/.diary/).
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".diary")
	}
	return filepath.Join(home, ".diary")
}

// Load reads configuration from file, environment variables, and defaults.
// An explicitly given configPath must exist; the default locations are
// optional.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("root", DefaultRoot())
	v.SetDefault("content_dir", "")
	v.SetDefault("editor", "")
	v.SetDefault("debug", false)
	v.SetDefault("markdown_style", "auto")
	v.SetDefault("pager", true)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.primary", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.muted", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "diary"))
		}
		v.AddConfigPath(DefaultRoot())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// DIARY_CONTENT_DIR, DIARY_THEME_PRESET, ...
	v.SetEnvPrefix("DIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Root = expandHome(cfg.Root)
	if cfg.ContentDir == "" {
		cfg.ContentDir = filepath.Join(cfg.Root, "content")
	}
	cfg.ContentDir = expandHome(cfg.ContentDir)

	return cfg, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
