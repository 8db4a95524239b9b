package util

import (
	"errors"

	"github.com/Drolfothesgnir/tagmark/tagmark"
	"github.com/spf13/viper"
)

type Config struct {
	Environment          string `mapstructure:"ENVIRONMENT"`
	LogLevel             string `mapstructure:"LOG_LEVEL"`
	StrictMode           bool   `mapstructure:"STRICT_MODE"`
	MaxPlaceholderPasses int    `mapstructure:"MAX_PLACEHOLDER_PASSES"`
	MaxNestingDepth      int    `mapstructure:"MAX_NESTING_DEPTH"`
	MaxWarnings          int    `mapstructure:"MAX_WARNINGS"`
	PlaceholdersFile     string `mapstructure:"PLACEHOLDERS_FILE"`
	ColorProfile         string `mapstructure:"COLOR_PROFILE"`
}

// LoadConfig reads app.env from path, environment variables take precedence.
// A missing app.env is not an error, the defaults and the environment are used then.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	// every key needs a default, otherwise AutomaticEnv does not see it during Unmarshal
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STRICT_MODE", false)
	v.SetDefault("MAX_PLACEHOLDER_PASSES", tagmark.DefaultMaxPlaceholderPasses)
	v.SetDefault("MAX_NESTING_DEPTH", tagmark.DefaultMaxDepth)
	v.SetDefault("MAX_WARNINGS", tagmark.DefaultMaxWarnings)
	v.SetDefault("PLACEHOLDERS_FILE", "")
	v.SetDefault("COLOR_PROFILE", "")

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}

// Limits converts the configured bounds for the parser.
func (config *Config) Limits() tagmark.Limits {
	return tagmark.Limits{
		MaxPlaceholderPasses: config.MaxPlaceholderPasses,
		MaxDepth:             config.MaxNestingDepth,
		MaxWarnings:          config.MaxWarnings,
	}
}
