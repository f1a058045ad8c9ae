package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/user/fieldeditor/internal/errors"
)

// Saver writes configuration files as YAML
type Saver struct{}

// NewSaver creates a new configuration saver
func NewSaver() *Saver {
	return &Saver{}
}

// SaveGlobalConfig writes cfg to ~/.fieldeditor.yaml with 0600 permissions
func (s *Saver) SaveGlobalConfig(cfg *Config) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	path := filepath.Join(homeDir, GlobalConfigName)
	return path, s.write(path, cfg, 0600)
}

// SaveProjectConfig writes cfg to <projectDir>/.fieldeditor/config.yaml,
// creating the directory when needed
func (s *Saver) SaveProjectConfig(projectDir string, cfg *Config) (string, error) {
	if projectDir == "" {
		projectDir = "."
	}

	path := filepath.Join(projectDir, ProjectConfigPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.NewFileWriteError(filepath.Dir(path), err)
	}
	return path, s.write(path, cfg, 0644)
}

func (s *Saver) write(path string, cfg *Config, perm os.FileMode) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return errors.NewFileWriteError(path, err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(path, perm); err != nil {
		return errors.NewFileWriteError(path, err)
	}
	return nil
}
