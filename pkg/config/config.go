// Package config loads the optional .sig.yaml tool configuration.
package config

import (
	"errors"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds the tunables that are not determined by file kind and
// content: discovery filters, taxonomy extensions and worker count.
type Config struct {
	Workers               int      `mapstructure:"workers"`
	SkipGlobs             []string `mapstructure:"skipGlobs"`
	ExtraBuiltinModules   []string `mapstructure:"extraBuiltinModules"`
	ExtraFrameworkModules []string `mapstructure:"extraFrameworkModules"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
	}
}

// Load reads .sig.yaml from the given search directories, first hit wins.
// A missing config file is not an error; defaults apply.
func Load(searchDirs ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".sig")
	v.SetConfigType("yaml")
	for _, dir := range searchDirs {
		if dir != "" {
			v.AddConfigPath(dir)
		}
	}
	v.SetDefault("workers", runtime.NumCPU())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}
