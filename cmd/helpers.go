package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/user/fieldeditor/internal/config"
	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/logging"
)

// InitLogger creates the logger for a command.
//
// The log directory from cfg is resolved against projectDir unless it is
// absolute. Console output is only enabled with verbose; debug adds caller
// information and lowers the file level to debug.
//
// The caller is responsible for calling logger.Sync() when done.
func InitLogger(projectDir string, cfg config.LoggingConfig, debug bool, verbose bool) (*logging.Logger, error) {
	logDir := cfg.LogDir
	if logDir == "" {
		logDir = config.DefaultLogDir
	}
	if !filepath.IsAbs(logDir) && projectDir != "" && projectDir != "." {
		logDir = filepath.Join(projectDir, logDir)
	}

	fileLevel := cfg.FileLevel
	if debug {
		fileLevel = "debug"
	}

	logCfg := &logging.Config{
		LogDir:         logDir,
		FileLevel:      logging.LevelFromString(fileLevel),
		ConsoleLevel:   logging.LevelFromString(cfg.ConsoleLevel),
		EnableCaller:   debug,
		ConsoleEnabled: verbose,
	}

	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// loadConfig loads the merged configuration for projectDir
func loadConfig(projectDir string, cliOverrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.NewLoader().Load(projectDir, cliOverrides)
	if err != nil {
		if _, ok := errors.AsEditorError(err); ok {
			return nil, err
		}
		return nil, errors.WrapError(err, "Failed to load configuration", errors.ExitConfigError)
	}
	return cfg, nil
}

// HandleCommandError logs err and returns it unchanged, so that commands can
// end with `return HandleCommandError(...)`. Execute prints the message.
func HandleCommandError(err error, logger *logging.Logger) error {
	if err == nil {
		return nil
	}
	if logger != nil {
		logger.Error("Command failed",
			logging.Error(err),
			logging.Int("exit_code", errors.ExitCodeOf(err).Int()))
	}
	return err
}

// userMessage is what Execute prints for err
func userMessage(err error) string {
	if e, ok := errors.AsEditorError(err); ok {
		return e.GetUserMessage()
	}
	return fmt.Sprintf("Error: %v", err)
}
