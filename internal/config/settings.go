package config

import (
	"fmt"
	"strings"

	"github.com/fipath/fi-calculator/internal/logging"
	"github.com/spf13/viper"
)

const envPrefix = "FICALC"

// Settings are runtime options for the binaries, resolved from flags, env and an
// optional settings file, in that order of precedence.
type Settings struct {
	Log       logging.Config `mapstructure:"log"`
	Format    string         `mapstructure:"format"`
	OutputDir string         `mapstructure:"output_dir"`
	Addr      string         `mapstructure:"addr"`
	CacheSize int            `mapstructure:"cache_size"`
	Debug     bool           `mapstructure:"debug"`
}

// NewViper returns a viper instance with defaults and FICALC_* env binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("format", "console")
	v.SetDefault("output_dir", ".")
	v.SetDefault("addr", ":8080")
	v.SetDefault("cache_size", 32)
	v.SetDefault("debug", false)
	return v
}

// LoadSettings reads the optional settings file and unmarshals the result.
func LoadSettings(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.CacheSize < 0 {
		return nil, fmt.Errorf("cache_size cannot be negative")
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		return nil, err
	}
	return &s, nil
}
