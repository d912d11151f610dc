// Package config holds the process-wide modelkit settings.
//
// Settings come from defaults, an optional modelkit.toml in the working
// directory, and MODELKIT_* environment variables (highest precedence).
// Export behavior (null filtering, key casing) reads from here so hosts
// can change the defaults without touching every policy.
package config

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mu            sync.Mutex
	viperInstance *viper.Viper
)

// Config mirrors the settings tree for typed unmarshaling.
type Config struct {
	Export ExportConfig `mapstructure:"export"`
	Log    LogConfig    `mapstructure:"log"`
}

// ExportConfig controls map/JSON projection defaults.
type ExportConfig struct {
	FilterNulls    bool   `mapstructure:"filter_nulls"`
	KeyCase        string `mapstructure:"key_case"`
	SnakeDelimiter string `mapstructure:"snake_delimiter"`
}

// LogConfig controls logger initialization performed by the CLI.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// Load unmarshals the current settings into a Config.
func Load() (*Config, error) {
	var config Config
	if err := instance().Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// GetViper returns the underlying Viper instance for advanced access.
func GetViper() *viper.Viper {
	return instance()
}

// Reset clears the cached settings (useful for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	viperInstance = nil
}

// Set overrides a setting for the current process.
func Set(key string, value interface{}) {
	instance().Set(key, value)
}

// FilterNulls reports whether nil values are dropped from exports.
func FilterNulls() bool {
	return instance().GetBool("export.filter_nulls")
}

// KeyCase returns the default export key convention: "snake", "camel" or
// "studly".
func KeyCase() string {
	return instance().GetString("export.key_case")
}

// SnakeDelimiter returns the delimiter used for snake-cased export keys.
func SnakeDelimiter() string {
	return instance().GetString("export.snake_delimiter")
}

// LogJSON reports whether the CLI should log structured JSON.
func LogJSON() bool {
	return instance().GetBool("log.json")
}

func instance() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()

	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("MODELKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Optional project file; absence is not an error.
	v.SetConfigName("modelkit")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}
