package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the web/CLI profile. DataPaths is a fallback chain: the loader
// tries each path in order and serves the first readable dataset.
type Config struct {
	Addr      string   `mapstructure:"addr"`
	DataPaths []string `mapstructure:"data_paths"`
	ExportDir string   `mapstructure:"export_dir"`
}

func Load(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)
	v.SetDefault("addr", "127.0.0.1:8050")
	v.SetDefault("export_dir", ".")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
