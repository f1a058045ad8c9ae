package config

import (
	"time"

	"github.com/user/fieldeditor/internal/visibility"
)

// CurrentConfigVersion is written by config init
const CurrentConfigVersion = 1

// Default values
const (
	DefaultCopyIndicator = "2s"
	DefaultIndent        = 2
	DefaultLogDir        = ".fieldeditor/logs"
	DefaultFileLevel     = "info"
	DefaultConsoleLevel  = "warn"
)

// EditorConfig holds settings of the interactive editor
type EditorConfig struct {
	VisibleProperties []string `mapstructure:"visible_properties" yaml:"visible_properties"`
	CopyIndicator     string   `mapstructure:"copy_indicator" yaml:"copy_indicator"` // how long "Copied!" stays, e.g. 2s
	Indent            int      `mapstructure:"indent" yaml:"indent"`                 // spaces per level in exported JSON
	SchemaFile        string   `mapstructure:"schema_file" yaml:"schema_file,omitempty"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	LogDir       string `mapstructure:"log_dir" yaml:"log_dir"`
	FileLevel    string `mapstructure:"file_level" yaml:"file_level"`       // debug, info, warn, error
	ConsoleLevel string `mapstructure:"console_level" yaml:"console_level"` // debug, info, warn, error
}

// CheckConfig holds configuration for the check command
type CheckConfig struct {
	MaxWorkers int `mapstructure:"max_workers" yaml:"max_workers"` // 0 = number of CPUs
}

// Config holds top-level configuration from ~/.fieldeditor.yaml and
// .fieldeditor/config.yaml
type Config struct {
	Version int           `mapstructure:"version" yaml:"version"`
	Editor  EditorConfig  `mapstructure:"editor" yaml:"editor"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Check   CheckConfig   `mapstructure:"check" yaml:"check"`
}

// DefaultConfig returns the configuration used when no file or variable
// overrides anything
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Editor: EditorConfig{
			VisibleProperties: visibility.Default().Names(),
			CopyIndicator:     DefaultCopyIndicator,
			Indent:            DefaultIndent,
		},
		Logging: LoggingConfig{
			LogDir:       DefaultLogDir,
			FileLevel:    DefaultFileLevel,
			ConsoleLevel: DefaultConsoleLevel,
		},
	}
}

// GetCopyIndicator returns the indicator duration, 2s when unset or invalid
func (c *EditorConfig) GetCopyIndicator() time.Duration {
	d, err := time.ParseDuration(c.CopyIndicator)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Visibility returns the start-up visibility set
func (c *EditorConfig) Visibility() (visibility.Set, error) {
	return visibility.ParseNames(c.VisibleProperties)
}
