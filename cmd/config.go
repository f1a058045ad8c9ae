package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/user/fieldeditor/internal/config"
	"github.com/user/fieldeditor/internal/errors"
	"github.com/user/fieldeditor/internal/tui/wizard"
)

type configInitOptions struct {
	global      bool
	interactive bool
	force       bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fieldeditor configuration",
	Long: `Manage fieldeditor configuration files.

Configuration is read from, in increasing priority:
  - FIELDEDITOR_* environment variables (a .env file is loaded first)
  - Global: ~/.fieldeditor.yaml
  - Project: .fieldeditor/config.yaml
  - Command-line flags`,
}

func newConfigInitCmd() *cobra.Command {
	opts := &configInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file",
		Long: `Write a configuration file with the default settings, or with the
answers of the interactive wizard when --interactive is given.

The project file .fieldeditor/config.yaml is written unless --global is
set. An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.global, "global", "g", false, "Write ~/.fieldeditor.yaml instead of the project file")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Choose the settings in a wizard")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func init() {
	configCmd.AddCommand(newConfigInitCmd())
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, opts *configInitOptions) error {
	if opts.interactive {
		return runConfigWizard(cmd)
	}

	path, err := configTarget(".", opts.global)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !opts.force {
		return errors.NewError(fmt.Sprintf("%s already exists (use --force to overwrite)", path), errors.ExitConfigError)
	}

	saver := config.NewSaver()
	if opts.global {
		path, err = saver.SaveGlobalConfig(config.DefaultConfig())
	} else {
		path, err = saver.SaveProjectConfig(".", config.DefaultConfig())
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}

func runConfigWizard(cmd *cobra.Command) error {
	// start from what is configured today; a broken file falls back to defaults
	base, err := config.NewLoader().Load(".", nil)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Ignoring current configuration: %v\n", err)
		base = config.DefaultConfig()
	}

	p := tea.NewProgram(wizard.NewWizardModel(base, "."))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running config wizard: %w", err)
	}

	m, ok := finalModel.(wizard.Model)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if m.Err != nil {
		return m.Err
	}
	if m.SavedConfig {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", m.GetConfigPath())
	}
	return nil
}

// configTarget returns the file config init writes
func configTarget(projectDir string, global bool) (string, error) {
	if !global {
		return filepath.Join(projectDir, config.ProjectConfigPath), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, config.GlobalConfigName), nil
}
