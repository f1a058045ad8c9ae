package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/visibility"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "FIELDEDITOR"

// GlobalConfigName is the user config file in the home directory
const GlobalConfigName = ".fieldeditor.yaml"

// ProjectConfigPath is the project config file relative to the project dir
var ProjectConfigPath = filepath.Join(".fieldeditor", "config.yaml")

// Loader handles loading configuration from multiple sources
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	return &Loader{v: v}
}

// Load merges every source into a validated Config.
// Precedence: CLI > .fieldeditor/config.yaml > ~/.fieldeditor.yaml > Environment > Defaults
func (l *Loader) Load(projectDir string, cliOverrides map[string]interface{}) (*Config, error) {
	// 1. Defaults, then environment on top of them so that config files
	// still win over variables
	l.setDefaults()
	l.applyEnv()

	// 2. ~/.fieldeditor.yaml
	if err := l.loadGlobalConfig(); err != nil {
		return nil, err
	}

	// 3. .fieldeditor/config.yaml
	if err := l.loadProjectConfig(projectDir); err != nil {
		return nil, err
	}

	// 4. CLI overrides
	l.applyCLIOverrides(cliOverrides)

	cfg := &Config{}
	// visible_properties may arrive as "id,label" from the environment
	hook := viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))
	if err := l.v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("failed to decode configuration: %v", err))
	}

	normalize(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) setDefaults() {
	d := DefaultConfig()
	l.v.SetDefault("version", d.Version)
	l.v.SetDefault("editor.visible_properties", d.Editor.VisibleProperties)
	l.v.SetDefault("editor.copy_indicator", d.Editor.CopyIndicator)
	l.v.SetDefault("editor.indent", d.Editor.Indent)
	l.v.SetDefault("editor.schema_file", d.Editor.SchemaFile)
	l.v.SetDefault("logging.log_dir", d.Logging.LogDir)
	l.v.SetDefault("logging.file_level", d.Logging.FileLevel)
	l.v.SetDefault("logging.console_level", d.Logging.ConsoleLevel)
	l.v.SetDefault("check.max_workers", d.Check.MaxWorkers)
}

// applyEnv replaces defaults with FIELDEDITOR_* variables. viper's own
// AutomaticEnv would rank the environment above config files.
func (l *Loader) applyEnv() {
	for _, key := range l.v.AllKeys() {
		if value, ok := os.LookupEnv(EnvVar(key)); ok && value != "" {
			l.v.SetDefault(key, value)
		}
	}
}

// EnvVar returns the environment variable read for a dotted key
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// loadGlobalConfig loads configuration from ~/.fieldeditor.yaml
func (l *Loader) loadGlobalConfig() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil // Not a fatal error
	}

	globalConfig := filepath.Join(homeDir, GlobalConfigName)
	if _, err := os.Stat(globalConfig); err != nil {
		return nil // File doesn't exist, skip
	}

	l.v.SetConfigFile(globalConfig)
	if err := l.v.MergeInConfig(); err != nil {
		return errors.NewConfigFileError(globalConfig, err)
	}

	return nil
}

// loadProjectConfig loads configuration from .fieldeditor/config.yaml
func (l *Loader) loadProjectConfig(projectDir string) error {
	if projectDir == "" {
		projectDir = "."
	}

	configPath := filepath.Join(projectDir, ProjectConfigPath)
	if _, err := os.Stat(configPath); err != nil {
		return nil // File doesn't exist, skip
	}

	l.v.SetConfigFile(configPath)
	if err := l.v.MergeInConfig(); err != nil {
		return errors.NewConfigFileError(configPath, err)
	}

	return nil
}

// applyCLIOverrides applies CLI flag overrides
func (l *Loader) applyCLIOverrides(overrides map[string]interface{}) {
	for key, value := range overrides {
		// Only set if value is not nil
		if value != nil {
			l.v.Set(key, value)
		}
	}
}

func normalize(cfg *Config) {
	names := make([]string, 0, len(cfg.Editor.VisibleProperties))
	for _, name := range cfg.Editor.VisibleProperties {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	cfg.Editor.VisibleProperties = names
	cfg.Logging.FileLevel = strings.ToLower(cfg.Logging.FileLevel)
	cfg.Logging.ConsoleLevel = strings.ToLower(cfg.Logging.ConsoleLevel)
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every value that the editor cannot fall back from
func Validate(cfg *Config) error {
	if _, err := visibility.ParseNames(cfg.Editor.VisibleProperties); err != nil {
		return err
	}

	if d, err := time.ParseDuration(cfg.Editor.CopyIndicator); err != nil || d <= 0 {
		return errors.NewInvalidConfigValueError("editor.copy_indicator", cfg.Editor.CopyIndicator, "Must be a positive duration such as 2s or 1500ms")
	}

	if cfg.Editor.Indent < 0 || cfg.Editor.Indent > 8 {
		return errors.NewInvalidConfigValueError("editor.indent", cfg.Editor.Indent, "Must be between 0 and 8")
	}

	if cfg.Check.MaxWorkers < 0 {
		return errors.NewInvalidConfigValueError("check.max_workers", cfg.Check.MaxWorkers, "Must be 0 (auto) or positive")
	}

	if !validLevels[cfg.Logging.FileLevel] {
		return errors.NewInvalidConfigValueError("logging.file_level", cfg.Logging.FileLevel, "Must be one of: debug, info, warn, error")
	}
	if !validLevels[cfg.Logging.ConsoleLevel] {
		return errors.NewInvalidConfigValueError("logging.console_level", cfg.Logging.ConsoleLevel, "Must be one of: debug, info, warn, error")
	}

	return nil
}
