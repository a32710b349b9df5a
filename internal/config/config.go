package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Editor
		Logging
	}

	Database struct {
		Path     string
		SQLDebug bool // Log every SQL statement gorm executes
	}
	Editor struct {
		Command string // Program used to write sighting notes
	}
	Logging struct {
		Level  string // debug, info, warn, error
		Format string // console or json
	}
)

// dataHome returns $XDG_DATA_HOME, falling back to ~/.local/share.
func dataHome(v *viper.Viper) string {
	if dir := v.GetString("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(v.GetString("HOME"), ".local", "share")
}

// databasePath returns the explicit database path if one is set, otherwise
// the default location under the data home.
func databasePath(v *viper.Viper) string {
	if path := v.GetString("BIRDR_DATABASE_PATH"); path != "" {
		return path
	}
	return filepath.Join(dataHome(v), DefaultDatabaseSubpath)
}

// NewConfig reads the configuration from the environment.
func NewConfig() *Config {
	return FromViper(NewViper())
}

// NewViper returns a viper instance bound to the environment with defaults
// applied. Command-line flags can be bound onto it before calling FromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("editor", DefaultEditor)
	v.SetDefault("birdr_log_level", "warn")
	v.SetDefault("birdr_log_format", "console")
	v.SetDefault("birdr_sql_debug", false)
	return v
}

// FromViper builds a Config from an already prepared viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Database: Database{
			Path:     databasePath(v),
			SQLDebug: v.GetBool("BIRDR_SQL_DEBUG"),
		},
		Editor: Editor{
			Command: v.GetString("EDITOR"),
		},
		Logging: Logging{
			Level:  v.GetString("BIRDR_LOG_LEVEL"),
			Format: v.GetString("BIRDR_LOG_FORMAT"),
		},
	}
}
