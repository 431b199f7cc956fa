package config

import (
	"fmt"

	"github.com/Veraticus/hashid/internal/common"
	"github.com/spf13/viper"
)

// Config keys, shared by flags, environment variables and config files.
const (
	KeyOutputAll      = "output.all"
	KeyOutputHashcat  = "output.hashcat"
	KeyOutputJohn     = "output.john"
	KeyOutputColor    = "output.color"
	KeyOutputFile     = "output.file"
	KeyCatalogFile    = "catalog.file"
	KeyCatalogReplace = "catalog.replace"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
)

// Config is the resolved runtime configuration.
type Config struct {
	Catalog CatalogConfig
	Logging LoggingConfig
	Output  OutputConfig
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	File        string
	ShowAll     bool
	ShowHashcat bool
	ShowJohn    bool
	Color       bool
}

// CatalogConfig selects an optional YAML catalog.
type CatalogConfig struct {
	File    string
	Replace bool
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputAll, false)
	v.SetDefault(KeyOutputHashcat, false)
	v.SetDefault(KeyOutputJohn, false)
	v.SetDefault(KeyOutputColor, true)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Output: OutputConfig{
			ShowAll:     v.GetBool(KeyOutputAll),
			ShowHashcat: v.GetBool(KeyOutputHashcat),
			ShowJohn:    v.GetBool(KeyOutputJohn),
			Color:       v.GetBool(KeyOutputColor),
			File:        ExpandPath(v.GetString(KeyOutputFile)),
		},
		Catalog: CatalogConfig{
			File:    ExpandPath(v.GetString(KeyCatalogFile)),
			Replace: v.GetBool(KeyCatalogReplace),
		},
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks combinations that cannot be expressed by defaults alone.
func (c Config) Validate() error {
	if c.Catalog.Replace && c.Catalog.File == "" {
		return fmt.Errorf("%w: catalog.replace requires catalog.file", common.ErrInvalidConfig)
	}

	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}
