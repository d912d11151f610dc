package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Export defaults
	v.SetDefault("export.filter_nulls", true)   // Drop nil values from ToMap/ToJSON
	v.SetDefault("export.key_case", "snake")    // snake | camel | studly
	v.SetDefault("export.snake_delimiter", "_") // Delimiter for snake-cased keys

	// Logging defaults
	v.SetDefault("log.json", false) // Human-readable console output
}
