package errors

import (
	"fmt"
	"strings"
)

// ConfigurationError is raised when configuration is invalid or missing
type ConfigurationError struct {
	*EditorError
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{
		EditorError: &EditorError{
			Message:  message,
			Code:     CodeConfig,
			ExitCode: ExitConfigError,
		},
	}
}

// InvalidConfigValueError is raised when a configuration key has an invalid value
type InvalidConfigValueError struct {
	*EditorError
}

// NewInvalidConfigValueError creates a new invalid configuration value error
func NewInvalidConfigValueError(key string, value interface{}, reason string) *InvalidConfigValueError {
	return &InvalidConfigValueError{
		EditorError: &EditorError{
			Message: fmt.Sprintf("Configuration key '%s' has an invalid value", key),
			Code:    CodeConfig,
			Context: &ErrorContext{
				Operation: "Validating configuration",
				Component: "Config",
				Details: map[string]interface{}{
					"key":    key,
					"value":  value,
					"reason": reason,
				},
				Suggestions: []string{
					fmt.Sprintf("Set %s in .fieldeditor/config.yaml", key),
					fmt.Sprintf("Or export %s", envName(key)),
				},
			},
			ExitCode: ExitConfigError,
		},
	}
}

// UnknownPropertyError is raised when a property name is not in the catalog
type UnknownPropertyError struct {
	*EditorError
	Name string
}

// NewUnknownPropertyError creates a new unknown property error
func NewUnknownPropertyError(name string, known []string) *UnknownPropertyError {
	return &UnknownPropertyError{
		EditorError: &EditorError{
			Message: fmt.Sprintf("Unknown field property: %q", name),
			Code:    CodeUnknownProperty,
			Context: &ErrorContext{
				Operation: "Property Lookup",
				Component: "PropertyRegistry",
				Suggestions: []string{
					"Use one of: " + strings.Join(known, ", "),
				},
			},
			ExitCode: ExitConfigError,
		},
		Name: name,
	}
}

// ConfigFileError is raised when a configuration file cannot be read or parsed
type ConfigFileError struct {
	*EditorError
}

// NewConfigFileError creates a new config file error
func NewConfigFileError(filePath string, cause error) *ConfigFileError {
	return &ConfigFileError{
		EditorError: &EditorError{
			Message: fmt.Sprintf("Failed to load configuration file: %s", filePath),
			Code:    CodeConfig,
			Cause:   cause,
			Context: &ErrorContext{
				Operation: "Loading configuration",
				Component: "Config File",
				Details: map[string]interface{}{
					"file_path": filePath,
				},
				Suggestions: []string{
					"Check that the file exists and is readable",
					"Validate YAML syntax",
					"Check file permissions",
				},
			},
			ExitCode: ExitConfigError,
		},
	}
}

// envName converts a dotted configuration key to its environment variable
// Example: editor.copy_indicator -> FIELDEDITOR_EDITOR_COPY_INDICATOR
func envName(key string) string {
	return "FIELDEDITOR_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
