package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config represents the squish CLI configuration.
// Use mapstructure tags for Viper unmarshaling.
type Config struct {
	// Method is the default compression algorithm when -m is omitted.
	Method string `mapstructure:"method"`
	// ChunkSize is the streaming read size in bytes; 0 keeps the built-in
	// default.
	ChunkSize int `mapstructure:"chunk_size"`
	// Verbose enables debug logging and run summaries.
	Verbose bool `mapstructure:"verbose"`
	// MaxRatio caps the decompression expansion ratio; 0 disables the
	// guard.
	MaxRatio float64 `mapstructure:"max_ratio"`
}

// Load reads configuration from the XDG config file and SQUISH_* environment
// variables. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("SQUISH")
	v.AutomaticEnv()

	// Defaults register the keys so environment overrides bind.
	v.SetDefault("method", "")
	v.SetDefault("chunk_size", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("max_ratio", 0.0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
